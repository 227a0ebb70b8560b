// Package ttesting holds small assertion helpers shared by the package tests.
package ttesting

import (
	"image"
	"image/color"
	"testing"

	"badc0de.net/pkg/go-dungeon/errs"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualUint8(t *testing.T, name string, got, want uint8) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualColor(t *testing.T, name string, got, want color.NRGBA) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

// AssertErrorKind checks that err is non-nil and classified as want.
func AssertErrorKind(t *testing.T, name string, err error, want errs.Kind) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if err == nil {
			t.Fatalf("got nil error; want %s", want)
		}
		if got := errs.KindOf(err); got != want {
			t.Errorf("got %s (%v); want %s", got, err, want)
		}
	})
}

// AssertSize checks the dimensions of img.
func AssertSize(t *testing.T, name string, img image.Image, w, h int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if img == nil {
			t.Fatalf("got nil image; want %dx%d", w, h)
		}
		if sz := img.Bounds().Size(); sz.X != w || sz.Y != h {
			t.Errorf("got %dx%d; want %dx%d", sz.X, sz.Y, w, h)
		}
	})
}
