// Package errs defines the failure kinds reported by the asset decoders.
//
// Every error returned by the decoding packages can be classified with KindOf
// or matched with errors.Is against one of the sentinels (ErrIO, ErrFormat,
// ErrMalformed, ErrBounds). Callers decide whether a failure aborts a load or
// merely skips a record.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnknown   Kind = iota
	KindIO             // reading a source file failed
	KindFormat         // unrecognized format header
	KindMalformed      // truncated or misaligned record or block
	KindBounds         // coordinate or index outside of a grid or collection
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "Kind(IO)"
	case KindFormat:
		return "Kind(Format)"
	case KindMalformed:
		return "Kind(Malformed)"
	case KindBounds:
		return "Kind(Bounds)"
	}
	return "Kind(Unknown)"
}

// Error is a classified failure. Op names the operation that failed, e.g.
// "rms.Decode" or "pic.LoadSpriteSheet".
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrIO        = &Error{Kind: KindIO}
	ErrFormat    = &Error{Kind: KindFormat}
	ErrMalformed = &Error{Kind: KindMalformed}
	ErrBounds    = &Error{Kind: KindBounds}
)

// IO wraps err, which came from the filesystem, as a KindIO failure.
func IO(op string, err error) error {
	return &Error{Kind: KindIO, Op: op, Err: errors.WithStack(err)}
}

// Format returns a KindFormat failure.
func Format(op string, format string, args ...interface{}) error {
	return &Error{Kind: KindFormat, Op: op, Err: errors.Errorf(format, args...)}
}

// Malformed returns a KindMalformed failure.
func Malformed(op string, format string, args ...interface{}) error {
	return &Error{Kind: KindMalformed, Op: op, Err: errors.Errorf(format, args...)}
}

// Bounds returns a KindBounds failure.
func Bounds(op string, format string, args ...interface{}) error {
	return &Error{Kind: KindBounds, Op: op, Err: errors.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
