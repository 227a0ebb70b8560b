package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"golang.org/x/image/draw"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/palette"
	"badc0de.net/pkg/go-dungeon/world"
)

// WritePNG encodes img, scaled by scale, to w.
func WritePNG(w io.Writer, img *image.NRGBA, scale int) error {
	if err := png.Encode(w, Scale(img, scale)); err != nil {
		return errs.IO("export.WritePNG", err)
	}
	return nil
}

// WriteIndexedPNG encodes img, scaled by scale, as a paletted PNG indexed
// against pal. Transparent pixels map to an extra entry after pal.
func WriteIndexedPNG(w io.Writer, img *image.NRGBA, pal palette.Palette, scale int) error {
	if err := png.Encode(w, Indexed(Scale(img, scale), pal)); err != nil {
		return errs.IO("export.WriteIndexedPNG", err)
	}
	return nil
}

// Indexed maps every pixel of m to its nearest entry of pal.
func Indexed(m *image.NRGBA, pal palette.Palette) *image.Paletted {
	b := m.Bounds()
	transparent := uint8(len(pal))
	pm := image.NewPaletted(b, append(pal.ColorModel(), color.Transparent))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.NRGBAAt(x, y)
			if c.A == 0 {
				pm.SetColorIndex(x, y, transparent)
				continue
			}
			pm.SetColorIndex(x, y, pal.Nearest(c))
		}
	}
	return pm
}

// WriteGIF encodes imgs as frames of an animated GIF, delay hundredths of a
// second apart. Transparent pixels stay transparent.
func WriteGIF(w io.Writer, imgs []*image.NRGBA, scale, delay int) error {
	anim := &gif.GIF{}
	for _, img := range imgs {
		anim.Image = append(anim.Image, paletted(Scale(img, scale)))
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return errs.IO("export.WriteGIF", err)
	}
	return nil
}

// paletted reduces m to at most 255 colors plus a transparent entry at
// index 0.
func paletted(m *image.NRGBA) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	p := append(color.Palette{color.Transparent}, q.Quantize(make(color.Palette, 0, 255), m)...)
	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.IO("export.writeFile", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errs.IO("export.writeFile", err)
	}
	glog.V(2).Infof("export: wrote %s", path)
	return nil
}

// Sprites writes every image as <prefix>_NNN.png in dir, numbered from 1 to
// match the sprite ids used by rooms and monsters.
func Sprites(dir, prefix string, imgs []*image.NRGBA, scale int) error {
	for i, img := range imgs {
		path := filepath.Join(dir, fmt.Sprintf("%s_%03d.png", prefix, i+1))
		if err := writeFile(path, func(w io.Writer) error { return WritePNG(w, img, scale) }); err != nil {
			return err
		}
	}
	glog.Infof("export: wrote %d %s sprites to %s", len(imgs), prefix, dir)
	return nil
}

// SheetPNG writes imgs as a single contact sheet.
func SheetPNG(path string, imgs []*image.NRGBA, cols, scale int) error {
	return writeFile(path, func(w io.Writer) error {
		return WritePNG(w, ContactSheet(imgs, cols, 1), scale)
	})
}

// SheetGIF writes imgs as an animated GIF.
func SheetGIF(path string, imgs []*image.NRGBA, scale, delay int) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteGIF(w, imgs, scale, delay)
	})
}

// Rooms writes a preview of every room in a as room_NNN.png in dir.
func Rooms(dir string, a *world.Assets, scale int) error {
	for i, r := range a.Rooms() {
		img := a.CompositeRoom(r)
		path := filepath.Join(dir, fmt.Sprintf("room_%03d.png", i+1))
		if err := writeFile(path, func(w io.Writer) error { return WritePNG(w, img, scale) }); err != nil {
			return err
		}
	}
	glog.Infof("export: wrote %d room previews to %s", len(a.Rooms()), dir)
	return nil
}
