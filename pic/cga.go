package pic

import (
	"image"

	"badc0de.net/pkg/go-dungeon/bits"
	"badc0de.net/pkg/go-dungeon/palette"
)

const (
	cgaRowCrumbs = 16
	cgaRowBytes  = cgaRowCrumbs / bits.CrumbsPerByte
	// cgaImageSize covers the header and the pixel rows. Why the data only
	// fills a quarter of the block is unknown.
	cgaImageSize = headerSize + cgaRowBytes*Dimension
)

var cgaCodec = codec{
	name:   "CGA",
	header: CGAHeader,
	span:   cgaImageSize,
	decode: decodeCGABlock,
}

func decodeCGABlock(block []byte) (*image.NRGBA, error) {
	img := newSprite()
	for i, b := range block[headerSize:cgaImageSize] {
		for j, c := range bits.Crumbs(b) {
			n := i*bits.CrumbsPerByte + j
			// The last crumb of each row is padding.
			x, y := n%cgaRowCrumbs, n/cgaRowCrumbs
			if x >= Dimension {
				continue
			}
			img.SetNRGBA(x, y, palette.CGA.At(c))
		}
	}
	return img, nil
}
