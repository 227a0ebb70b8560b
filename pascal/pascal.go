// Package pascal decodes and encodes length-prefixed ("pascal") strings.
//
// Only one-byte lengths are supported, so strings hold at most 255
// characters. Text is stored in the DOS code page 437.
//
// https://en.wikipedia.org/wiki/String_(computer_science)#Length-prefixed
package pascal

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"badc0de.net/pkg/go-dungeon/errs"
)

// MaxLength is the longest string a one-byte length prefix can describe.
const MaxLength = 255

var codePage = charmap.CodePage437

// Decode returns the string stored at the start of buf. Bytes after the
// string are ignored.
func Decode(buf []byte) (string, error) {
	if len(buf) == 0 {
		return "", errs.Malformed("pascal.Decode", "empty buffer; want at least a length byte")
	}
	n := int(buf[0])
	if 1+n > len(buf) {
		return "", errs.Malformed("pascal.Decode", "length prefix %d exceeds the %d bytes available", n, len(buf)-1)
	}
	s, err := codePage.NewDecoder().Bytes(buf[1 : 1+n])
	if err != nil {
		return "", errs.Malformed("pascal.Decode", "undecodable text: %v", err)
	}
	return string(s), nil
}

// Encode returns text as a pascal string fitting a field of maxLength bytes,
// length byte included. Text that does not fit is cut; empty text or a
// non-positive maxLength produce a single zero byte.
//
// Runes missing from the code page are replaced with its substitute byte.
func Encode(text string, maxLength int) []byte {
	if text == "" || maxLength <= 0 {
		return []byte{0}
	}
	raw, err := encoding.ReplaceUnsupported(codePage.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return []byte{0}
	}
	n := len(raw)
	if n > MaxLength {
		n = MaxLength
	}
	if n > maxLength-1 {
		n = maxLength - 1
	}
	out := make([]byte, 1+n)
	out[0] = byte(n)
	copy(out[1:], raw[:n])
	return out
}
