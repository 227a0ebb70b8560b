//go:build windows
// +build windows

package imageprint

import (
	"flag"
	"image"
	"io"
)

var (
	forceITerm = flag.Bool("force_iterm", false, "value to force iterm detection to take (implementation variant: no rasterm)")
)

func isTermItermWez() bool {
	return *forceITerm
}

// PrintRasTerm is unsupported on windows; it prints iTerm2 escapes when
// --force_iterm is set.
func PrintRasTerm(w io.Writer, i image.Image) bool {
	if !*forceITerm {
		return false
	}
	writeITerm(w, i, "image.png")
	return true
}
