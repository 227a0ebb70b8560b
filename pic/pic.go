// Package pic decodes the game's packed-pixel sprite sheets (.PIC), in both
// the 4-color CGA and the 16-color planar EGA encodings.
package pic

// This file contains the block framing and format dispatch shared by both
// encodings.

import (
	"bytes"
	"image"
	"os"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-dungeon/errs"
)

const (
	// Dimension is the width and height of every sprite.
	Dimension = 15

	// BlockSize is the stride between sprites in a sheet.
	BlockSize = 256

	headerSize = 4
)

var (
	CGAHeader = [headerSize]byte{0x0E, 0x00, 0x0E, 0x00}
	EGAHeader = [headerSize]byte{0x1D, 0x00, 0x0E, 0x00}
)

// Format identifies a sprite sheet encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatCGA
	FormatEGA
)

func (f Format) String() string {
	switch f {
	case FormatCGA:
		return "Format(CGA)"
	case FormatEGA:
		return "Format(EGA)"
	}
	return "Format(Unknown)"
}

// Options tune sheet decoding. A nil *Options is valid and means lenient,
// sequential decoding.
type Options struct {
	// Strict rejects sheets whose length is not a whole number of blocks and
	// blocks whose header differs from the sheet's format.
	Strict bool

	// Workers decodes up to this many blocks concurrently when above 1.
	Workers int
}

func (o *Options) strict() bool {
	return o != nil && o.Strict
}

func (o *Options) workers() int {
	if o == nil || o.Workers < 1 {
		return 1
	}
	return o.Workers
}

// codec describes one encoding's block contents.
type codec struct {
	name   string
	header [headerSize]byte
	// span is how many bytes of a block, header included, hold pixels.
	span   int
	decode func(block []byte) (*image.NRGBA, error)
}

func codecFor(f Format) *codec {
	switch f {
	case FormatCGA:
		return &cgaCodec
	case FormatEGA:
		return &egaCodec
	}
	return nil
}

// Detect identifies the encoding of a sheet from its first four bytes.
func Detect(buf []byte) (Format, error) {
	if len(buf) < headerSize {
		return FormatUnknown, errs.Malformed("pic.Detect", "%d bytes is too short for a %d-byte header", len(buf), headerSize)
	}
	var h [headerSize]byte
	copy(h[:], buf)
	switch h {
	case CGAHeader:
		return FormatCGA, nil
	case EGAHeader:
		return FormatEGA, nil
	}
	return FormatUnknown, errs.Format("pic.Detect", "no matching header: % X", h)
}

// DecodeSheet detects the encoding of buf and decodes every sprite in it.
func DecodeSheet(buf []byte, o *Options) ([]*image.NRGBA, error) {
	f, err := Detect(buf)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("pic: decoding %d bytes as %s", len(buf), f)
	return decodeBlocks(codecFor(f), buf, o)
}

// DecodeCGA decodes buf as a 4-color sheet without inspecting its header.
func DecodeCGA(buf []byte, o *Options) ([]*image.NRGBA, error) {
	return decodeBlocks(&cgaCodec, buf, o)
}

// DecodeEGA decodes buf as a 16-color sheet without inspecting its header.
func DecodeEGA(buf []byte, o *Options) ([]*image.NRGBA, error) {
	return decodeBlocks(&egaCodec, buf, o)
}

// LoadSpriteSheet reads the sheet at path once and decodes it with the
// encoding its header names.
func LoadSpriteSheet(path string) ([]*image.NRGBA, error) {
	return LoadSpriteSheetWithOptions(path, nil)
}

// LoadSpriteSheetWithOptions is LoadSpriteSheet with decoding options.
func LoadSpriteSheetWithOptions(path string, o *Options) ([]*image.NRGBA, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.IO("pic.LoadSpriteSheet", err)
	}
	imgs, err := DecodeSheet(buf, o)
	if err != nil {
		return nil, err
	}
	glog.Infof("pic: loaded %d sprites from %s", len(imgs), path)
	return imgs, nil
}

// blocks frames buf into per-sprite blocks.
//
// Whole blocks are always returned. A trailing short block is kept when it
// still holds the full pixel span, which is how the shipped sheets end; a
// remainder shorter than that is malformed. Strict mode rejects any
// remainder.
func blocks(c *codec, buf []byte, o *Options) ([][]byte, error) {
	op := "pic.Decode" + c.name
	rem := len(buf) % BlockSize
	if rem != 0 && o.strict() {
		return nil, errs.Malformed(op, "%d bytes is not a multiple of the %d-byte block size", len(buf), BlockSize)
	}
	if rem != 0 && rem < c.span {
		return nil, errs.Malformed(op, "trailing block of %d bytes is shorter than the %d bytes of sprite data", rem, c.span)
	}

	out := make([][]byte, 0, (len(buf)+BlockSize-1)/BlockSize)
	for off := 0; off < len(buf); off += BlockSize {
		end := off + BlockSize
		if end > len(buf) {
			end = len(buf)
		}
		block := buf[off:end:end]
		if !bytes.Equal(block[:headerSize], c.header[:]) {
			if o.strict() {
				return nil, errs.Malformed(op, "block %d has header % X; want % X", off/BlockSize, block[:headerSize], c.header)
			}
			glog.V(2).Infof("pic: block %d has header % X; want % X", off/BlockSize, block[:headerSize], c.header)
		}
		out = append(out, block)
	}
	return out, nil
}

func decodeBlocks(c *codec, buf []byte, o *Options) ([]*image.NRGBA, error) {
	blks, err := blocks(c, buf, o)
	if err != nil {
		return nil, err
	}

	imgs := make([]*image.NRGBA, len(blks))
	if o.workers() == 1 {
		for i, b := range blks {
			if imgs[i], err = c.decode(b); err != nil {
				return nil, err
			}
		}
		return imgs, nil
	}

	var g errgroup.Group
	g.SetLimit(o.workers())
	for i, b := range blks {
		i, b := i, b
		g.Go(func() error {
			img, err := c.decode(b)
			if err != nil {
				return err
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return imgs, nil
}

func newSprite() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, Dimension, Dimension))
}
