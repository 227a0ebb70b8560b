package pic

// This file contains the image.Decode plumbing. Sheets hold many sprites;
// as with image/gif, the single-image entry points return the first one.

import (
	"image"
	"io"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/palette"
)

func init() {
	image.RegisterFormat("cgapic", string(CGAHeader[:]), Decode, DecodeConfig)
	image.RegisterFormat("egapic", string(EGAHeader[:]), Decode, DecodeConfig)
}

// Decode returns the first sprite of the sheet read from r.
func Decode(r io.Reader) (image.Image, error) {
	block := make([]byte, BlockSize)
	n, err := io.ReadFull(r, block)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, errs.IO("pic.Decode", err)
	}
	imgs, err := DecodeSheet(block[:n], nil)
	if err != nil {
		return nil, err
	}
	return imgs[0], nil
}

// DecodeConfig returns the dimensions and palette of the sprites in the
// sheet read from r.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var h [headerSize]byte
	if _, err := io.ReadFull(r, h[:]); err != nil {
		return image.Config{}, errs.IO("pic.DecodeConfig", err)
	}
	f, err := Detect(h[:])
	if err != nil {
		return image.Config{}, err
	}
	cfg := image.Config{Width: Dimension, Height: Dimension}
	switch f {
	case FormatCGA:
		cfg.ColorModel = palette.CGA.ColorModel()
	case FormatEGA:
		cfg.ColorModel = palette.EGA.ColorModel()
	}
	return cfg, nil
}
