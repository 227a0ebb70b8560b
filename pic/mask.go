package pic

import (
	"image"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/palette"
)

// ApplyMask clears the alpha of every pixel of img whose counterpart in mask
// is palette.Transparent. Other pixels, and the color channels of cleared
// ones, are left as they are. Both images must have the same size.
func ApplyMask(img, mask *image.NRGBA) error {
	ib, mb := img.Bounds(), mask.Bounds()
	if ib.Dx() != mb.Dx() || ib.Dy() != mb.Dy() {
		return errs.Bounds("pic.ApplyMask", "mask is %dx%d; image is %dx%d", mb.Dx(), mb.Dy(), ib.Dx(), ib.Dy())
	}
	for y := 0; y < ib.Dy(); y++ {
		for x := 0; x < ib.Dx(); x++ {
			if mask.NRGBAAt(mb.Min.X+x, mb.Min.Y+y) != palette.Transparent {
				continue
			}
			i := img.PixOffset(ib.Min.X+x, ib.Min.Y+y)
			img.Pix[i+3] = 0
		}
	}
	return nil
}

// MaskSheet applies masks[i] to imgs[i] for every sprite of a sheet.
func MaskSheet(imgs, masks []*image.NRGBA) error {
	if len(imgs) != len(masks) {
		return errs.Bounds("pic.MaskSheet", "%d masks for %d sprites", len(masks), len(imgs))
	}
	for i := range imgs {
		if err := ApplyMask(imgs[i], masks[i]); err != nil {
			return err
		}
	}
	return nil
}
