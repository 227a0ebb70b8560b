// Package imageprint prints sprites and rooms on a terminal. UNSUPPORTED
// debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"

	"github.com/gookit/color"
)

type dumper interface {
	Sprintf(s string, arg ...interface{}) string
}
type fmtDumperT struct{}

func (fmtDumperT) Sprintf(s string, arg ...interface{}) string {
	return fmt.Sprintf(s, arg...)
}

var fmtDumper fmtDumperT

// Mode selects how pixels are written out.
type Mode int

const (
	Mode24bit Mode = iota
	Mode256Color
	ModeNoColor
)

func shade(w io.Writer, col ic.Color, mode Mode, blanks bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		fmt.Fprintf(w, "\x1b[0m  ")
		return
	}
	r, g, b := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)

	var d dumper
	switch mode {
	case ModeNoColor:
		d = fmtDumper
	case Mode24bit:
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm", r, g, b)
		d = fmtDumper
	default:
		d = color.RGB(r, g, b, true)
	}

	if blanks {
		fmt.Fprint(w, d.Sprintf("  "))
	} else {
		a := (int(r) + int(g) + int(b)) / 3
		switch {
		case a < 32:
			fmt.Fprint(w, d.Sprintf(".."))
		case a < 64:
			fmt.Fprint(w, d.Sprintf("--"))
		case a < 128:
			fmt.Fprint(w, d.Sprintf("=="))
		default:
			fmt.Fprint(w, d.Sprintf("##"))
		}
	}

	if mode == Mode24bit {
		fmt.Fprintf(w, "\x1b[0m")
	}
}

// Print draws an image with two characters per pixel. Transparent pixels are
// left blank.
func Print(w io.Writer, i image.Image, mode Mode, blanks bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(w, i.At(x, y), mode, blanks)
		}
		if mode != ModeNoColor {
			fmt.Fprintf(w, "\x1b[0m")
		}
		fmt.Fprintf(w, "\n")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(w io.Writer, i image.Image, blanks bool) {
	Print(w, i, Mode256Color, blanks)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image, blanks bool) {
	Print(w, i, Mode24bit, blanks)
}

// PrintNoColor draws an image without using color escape sequences. Only makes sense with blanks=false.
func PrintNoColor(w io.Writer, i image.Image, blanks bool) {
	Print(w, i, ModeNoColor, blanks)
}

// PrintITerm draws an image using iTerm2's escape sequences, when the
// terminal is known to understand them.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) {
	if !isTermItermWez() {
		return
	}
	writeITerm(w, i, fn)
}

func writeITerm(w io.Writer, i image.Image, fn string) {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	png.Encode(bEnc, i)
	bEnc.Close()
	fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
}
