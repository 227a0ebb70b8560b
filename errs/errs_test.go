package errs

import (
	"os"
	"testing"

	"github.com/pkg/errors"
)

func TestKindOf(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		want Kind
	}{
		{"io", IO("read", os.ErrNotExist), KindIO},
		{"format", Format("dispatch", "bad header %x", []byte{1, 2, 3, 4}), KindFormat},
		{"malformed", Malformed("decode", "short by %d", 3), KindMalformed},
		{"bounds", Bounds("tile", "x=%d", 40), KindBounds},
		{"wrapped", errors.Wrap(Bounds("tile", "x=%d", 40), "drawing room"), KindBounds},
		{"plain", errors.New("boom"), KindUnknown},
		{"nil", nil, KindUnknown},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Errorf("got %s; want %s", got, tc.want)
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	err := errors.Wrap(Malformed("rms.Decode", "length %d", 7), "loading rooms")
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("errors.Is(%v, ErrMalformed) = false; want true", err)
	}
	if errors.Is(err, ErrIO) {
		t.Errorf("errors.Is(%v, ErrIO) = true; want false", err)
	}

	ioErr := IO("pic.LoadSpriteSheet", os.ErrNotExist)
	if !errors.Is(ioErr, os.ErrNotExist) {
		t.Errorf("io failure lost its cause: %v", ioErr)
	}
}

func TestErrorString(t *testing.T) {
	err := Bounds("rms.Tile", "(%d,%d) outside 20x8", 20, 0)
	if got, want := err.Error(), "rms.Tile: (20,0) outside 20x8"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}
