package palette

import (
	"image/color"
	"testing"
)

func TestCGA(t *testing.T) {
	want := []color.NRGBA{
		{0x00, 0x00, 0x00, 0xFF},
		{0x00, 0xFF, 0xFF, 0xFF},
		{0xFF, 0x00, 0xFF, 0xFF},
		{0xFF, 0xFF, 0xFF, 0xFF},
	}
	if len(CGA) != len(want) {
		t.Fatalf("got %d entries; want %d", len(CGA), len(want))
	}
	for i, c := range want {
		if CGA[i] != c {
			t.Errorf("CGA[%d]: got %v; want %v", i, CGA[i], c)
		}
	}
}

func TestEGA(t *testing.T) {
	if len(EGA) != 16 {
		t.Fatalf("got %d entries; want 16", len(EGA))
	}
	for _, tc := range []struct {
		idx  uint8
		want color.NRGBA
	}{
		{0, color.NRGBA{0x00, 0x00, 0x00, 0xFF}},
		{6, color.NRGBA{0xAA, 0x55, 0x00, 0xFF}},
		{8, color.NRGBA{0x55, 0x55, 0x55, 0xFF}},
		{14, color.NRGBA{0xFF, 0xFF, 0x55, 0xFF}},
		{15, color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}},
	} {
		if got := EGA.At(tc.idx); got != tc.want {
			t.Errorf("EGA[%d]: got %v; want %v", tc.idx, got, tc.want)
		}
	}
	if got, want := EGA.Hex(9), "#5555ff"; got != want {
		t.Errorf("EGA.Hex(9): got %q; want %q", got, want)
	}
}

func TestTransparentIsWhite(t *testing.T) {
	if Transparent != EGA[15] || Transparent != CGA[3] {
		t.Errorf("transparency key %v is not the palettes' white", Transparent)
	}
}

func TestColorModel(t *testing.T) {
	cm := EGA.ColorModel()
	if got := cm.Index(color.NRGBA{0xAA, 0x00, 0xAA, 0xFF}); got != 5 {
		t.Errorf("Index(magenta): got %d; want 5", got)
	}
}

func TestNearest(t *testing.T) {
	for i, c := range EGA {
		if got := EGA.Nearest(c); int(got) != i {
			t.Errorf("EGA.Nearest(EGA[%d]): got %d", i, got)
		}
	}
	for _, tc := range []struct {
		c    color.NRGBA
		want uint8
	}{
		{color.NRGBA{0x10, 0x08, 0x00, 0xFF}, 0},
		{color.NRGBA{0xF0, 0xF0, 0xF0, 0xFF}, 15},
		{color.NRGBA{0xB0, 0x58, 0x08, 0xFF}, 6},
	} {
		if got := EGA.Nearest(tc.c); got != tc.want {
			t.Errorf("EGA.Nearest(%v): got %d; want %d", tc.c, got, tc.want)
		}
	}
	if got := CGA.Nearest(color.NRGBA{0x00, 0xE0, 0xE0, 0xFF}); got != 1 {
		t.Errorf("CGA.Nearest(cyan-ish): got %d; want 1", got)
	}
}
