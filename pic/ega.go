package pic

import (
	"bytes"
	"image"

	"badc0de.net/pkg/go-dungeon/bits"
	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/palette"
)

const (
	egaChannelRowCrumbs = 16
	egaChannels         = 4
	egaRowCrumbs        = egaChannelRowCrumbs * egaChannels
	egaRowBytes         = egaRowCrumbs / bits.CrumbsPerByte
	egaImageBytes       = egaRowBytes * Dimension
	egaImageSize        = headerSize + egaImageBytes
)

var egaCodec = codec{
	name:   "EGA",
	header: EGAHeader,
	span:   egaImageSize,
	decode: decodeEGABlock,
}

// decodeEGABlock recombines the four 1-bit channel planes of each row into
// 4-bit palette indices. The first plane in a row is the most significant
// bit.
func decodeEGABlock(block []byte) (*image.NRGBA, error) {
	cr := bits.NewCrumbReader(bytes.NewReader(block[headerSize:egaImageSize]))

	var indices [Dimension * Dimension]uint8
	row := make([]byte, egaRowCrumbs)
	for y := 0; y < Dimension; y++ {
		if _, err := cr.Read(row); err != nil {
			return nil, errs.Malformed("pic.DecodeEGA", "reading row %d: %v", y, err)
		}
		for ch := 0; ch < egaChannels; ch++ {
			shift := uint(egaChannels - 1 - ch)
			plane := row[ch*egaChannelRowCrumbs : (ch+1)*egaChannelRowCrumbs]
			// plane[Dimension] is padding.
			for x := 0; x < Dimension; x++ {
				// Crumbs are 0b00 or 0b11 in practice; anything set is on.
				if plane[x] != 0 {
					indices[y*Dimension+x] |= 1 << shift
				}
			}
		}
	}

	img := newSprite()
	for i, v := range indices {
		img.SetNRGBA(i%Dimension, i/Dimension, palette.EGA.At(v))
	}
	return img, nil
}
