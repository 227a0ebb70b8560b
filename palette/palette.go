// Package palette holds the fixed display adapter palettes the sprite sheets
// are indexed against.
package palette

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// CGA is the 4-color mode palette 1 (high intensity): black, cyan, magenta,
// white.
var CGA = mustPalette(
	"#000000",
	"#00FFFF",
	"#FF00FF",
	"#FFFFFF",
)

// EGA is the default 16-color adapter palette.
var EGA = mustPalette(
	"#000000", // black
	"#0000AA", // blue
	"#00AA00", // green
	"#00AAAA", // cyan
	"#AA0000", // red
	"#AA00AA", // magenta
	"#AA5500", // brown
	"#AAAAAA", // light gray

	"#555555", // dark gray
	"#5555FF", // light blue
	"#55FF55", // light green
	"#55FFFF", // light cyan
	"#FF5555", // light red
	"#FF55FF", // light magenta
	"#FFFF55", // yellow
	"#FFFFFF", // white
)

// Transparent is the color the mask sheets use to mark see-through pixels.
var Transparent = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Palette is a fixed table of opaque colors.
type Palette []color.NRGBA

// At returns the color for index i. Indices outside the table panic; pixel
// decoders only produce indices the bit width allows.
func (p Palette) At(i uint8) color.NRGBA {
	return p[i]
}

// ColorModel returns p as a color.Palette, e.g. for image.Config.
func (p Palette) ColorModel() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

// Hex returns the "#rrggbb" form of entry i.
func (p Palette) Hex(i uint8) string {
	c, _ := colorful.MakeColor(p[i])
	return c.Hex()
}

// Nearest returns the index of the entry closest to c in CIE L*a*b* space.
// Alpha is ignored.
func (p Palette) Nearest(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	want := colorful.Color{R: float64(r>>8) / 255, G: float64(g>>8) / 255, B: float64(b>>8) / 255}

	best, bestDist := 0, -1.0
	for i, e := range p {
		ec, _ := colorful.MakeColor(e)
		if d := want.DistanceLab(ec); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

func mustPalette(hexes ...string) Palette {
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("palette: bad entry %d %q: %v", i, h, err))
		}
		r, g, b := c.RGB255()
		p[i] = color.NRGBA{R: r, G: g, B: b, A: 0xFF}
	}
	return p
}
