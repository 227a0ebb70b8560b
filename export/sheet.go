// Package export writes decoded sprites and rooms out as PNG and GIF files.
package export

import (
	"image"

	"golang.org/x/image/draw"
)

// ContactSheet lays imgs out in a grid of cols columns, gap pixels apart.
// All images are assumed to be the size of the first.
func ContactSheet(imgs []*image.NRGBA, cols, gap int) *image.NRGBA {
	if len(imgs) == 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	if cols < 1 {
		cols = 1
	}
	if cols > len(imgs) {
		cols = len(imgs)
	}
	rows := (len(imgs) + cols - 1) / cols
	cell := imgs[0].Bounds().Size()

	sheet := image.NewNRGBA(image.Rect(0, 0, cols*cell.X+(cols-1)*gap, rows*cell.Y+(rows-1)*gap))
	for i, img := range imgs {
		at := image.Pt((i%cols)*(cell.X+gap), (i/cols)*(cell.Y+gap))
		draw.Draw(sheet, image.Rectangle{Min: at, Max: at.Add(cell)}, img, img.Bounds().Min, draw.Src)
	}
	return sheet
}

// Scale enlarges img by an integer factor without smoothing. Factors below 2
// return img unchanged.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
