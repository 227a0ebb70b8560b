package main

import (
	"image"
	"os"

	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-dungeon/export"
	"badc0de.net/pkg/go-dungeon/imageprint"
)

// graphical reports whether out will send a real image rather than
// character cells.
func graphical() bool {
	return *rasterm || *iterm
}

func out(img *image.NRGBA) {
	var m image.Image = img
	if graphical() && *scale > 1 {
		m = export.Scale(img, *scale)
	}

	if *downsize {
		if ts, err := GetTermSize(); err == nil {
			if ts.XPixel != 0 && ts.YPixel != 0 && graphical() {
				m = resize.Thumbnail(ts.XPixel/2, ts.YPixel/2, m, resize.NearestNeighbor)
			} else if !graphical() && ts.Cols > 1 && ts.Rows > 1 {
				// Two characters per pixel, one line per row.
				m = resize.Thumbnail(ts.Cols/2, ts.Rows-1, m, resize.NearestNeighbor)
			}
		}
	}

	switch {
	case *rasterm:
		if imageprint.PrintRasTerm(os.Stdout, m) {
			return
		}
		imageprint.Print24bit(os.Stdout, m, *blanks)
	case !*col:
		imageprint.PrintNoColor(os.Stdout, m, *blanks)
	case *iterm:
		imageprint.PrintITerm(os.Stdout, m, "sprite.png")
	case *col256:
		imageprint.Print256Color(os.Stdout, m, *blanks)
	default:
		imageprint.Print24bit(os.Stdout, m, *blanks)
	}
}
