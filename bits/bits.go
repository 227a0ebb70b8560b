// Package bits extracts 2-bit fields ("crumbs") from bytes.
//
// Crumbs are numbered from the least significant pair: for 0b11_10_01_00,
// crumb 0 is 0b00 and crumb 3 is 0b11. Pixel data is stored most significant
// crumb first, so the unpacking helpers return crumbs in order 3, 2, 1, 0.
package bits

import (
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
)

const (
	CrumbBits     = 2
	CrumbMask     = 0x3
	CrumbsPerByte = 4
)

// Crumb returns the 2-bit field of val at bit position 2*part.
//
// part must be in [0, 4); any other value is a programming error and panics.
func Crumb(val byte, part uint) byte {
	if part >= CrumbsPerByte {
		panic(fmt.Sprintf("bits: crumb part %d out of range [0,%d)", part, CrumbsPerByte))
	}
	return (val >> (CrumbBits * part)) & CrumbMask
}

// Crumbs returns all four crumbs of val, most significant first.
func Crumbs(val byte) [CrumbsPerByte]byte {
	return [CrumbsPerByte]byte{
		Crumb(val, 3),
		Crumb(val, 2),
		Crumb(val, 1),
		Crumb(val, 0),
	}
}

// CrumbReader streams crumbs out of a byte stream, most significant first.
type CrumbReader struct {
	br bitreader.BitReader
}

// NewCrumbReader returns a CrumbReader reading from r.
func NewCrumbReader(r io.Reader) *CrumbReader {
	return &CrumbReader{br: bitreader.NewReader(r)}
}

// ReadCrumb returns the next crumb.
func (cr *CrumbReader) ReadCrumb() (byte, error) {
	return cr.br.Read8(CrumbBits)
}

// Read fills dst with the next len(dst) crumbs.
func (cr *CrumbReader) Read(dst []byte) (int, error) {
	for i := range dst {
		c, err := cr.ReadCrumb()
		if err != nil {
			return i, err
		}
		dst[i] = c
	}
	return len(dst), nil
}
