package pic

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/palette"
	"badc0de.net/pkg/go-dungeon/ttesting"
)

func block(h [headerSize]byte) []byte {
	b := make([]byte, BlockSize)
	copy(b, h[:])
	return b
}

func sheet(blocks ...[]byte) []byte {
	return bytes.Join(blocks, nil)
}

func cgaTestBlock() []byte {
	b := block(CGAHeader)
	b[4] = 0x1B // 00 01 10 11
	b[7] = 0x0F // x=14 is white, x=15 is padding
	b[8] = 0x40 // (0,1) is cyan
	return b
}

func egaTestBlock() []byte {
	b := block(EGAHeader)
	// Row 0: planes at 4, 8, 12, 16.
	b[4] = 0xC0  // (0,0) bit 3
	b[16] = 0xC0 // (0,0) bit 0
	b[15] = 0x0C // (14,0) bit 1
	b[11] = 0x03 // padding in plane 1
	// Row 1 starts at 20.
	b[20] = 0x40 // (0,1) bit 3, set by a 0b01 crumb
	return b
}

func TestDetect(t *testing.T) {
	f, err := Detect(cgaTestBlock())
	require.NoError(t, err)
	assert.Equal(t, FormatCGA, f)

	f, err = Detect(egaTestBlock())
	require.NoError(t, err)
	assert.Equal(t, FormatEGA, f)

	_, err = Detect([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00})
	ttesting.AssertErrorKind(t, "unknown header", err, errs.KindFormat)
	assert.Contains(t, err.Error(), "DE AD BE EF")

	_, err = Detect([]byte{0x0E, 0x00})
	ttesting.AssertErrorKind(t, "short", err, errs.KindMalformed)
}

func TestDecodeCGA(t *testing.T) {
	imgs, err := DecodeSheet(sheet(cgaTestBlock(), block(CGAHeader)), nil)
	require.NoError(t, err)
	require.Len(t, imgs, 2)

	img := imgs[0]
	ttesting.AssertSize(t, "size", img, Dimension, Dimension)
	ttesting.AssertEqualColor(t, "(0,0)", img.NRGBAAt(0, 0), palette.CGA[0])
	ttesting.AssertEqualColor(t, "(1,0)", img.NRGBAAt(1, 0), palette.CGA[1])
	ttesting.AssertEqualColor(t, "(2,0)", img.NRGBAAt(2, 0), palette.CGA[2])
	ttesting.AssertEqualColor(t, "(3,0)", img.NRGBAAt(3, 0), palette.CGA[3])
	ttesting.AssertEqualColor(t, "(13,0)", img.NRGBAAt(13, 0), palette.CGA[0])
	ttesting.AssertEqualColor(t, "(14,0)", img.NRGBAAt(14, 0), palette.CGA[3])
	ttesting.AssertEqualColor(t, "(0,1)", img.NRGBAAt(0, 1), palette.CGA[1])
	ttesting.AssertEqualColor(t, "(14,14)", img.NRGBAAt(14, 14), palette.CGA[0])

	// Every pixel of the blank block is black and opaque.
	for y := 0; y < Dimension; y++ {
		for x := 0; x < Dimension; x++ {
			if c := imgs[1].NRGBAAt(x, y); c != palette.CGA[0] {
				t.Fatalf("blank sprite (%d,%d) = %v", x, y, c)
			}
		}
	}
}

func TestDecodeEGA(t *testing.T) {
	imgs, err := DecodeSheet(egaTestBlock(), nil)
	require.NoError(t, err)
	require.Len(t, imgs, 1)

	img := imgs[0]
	ttesting.AssertSize(t, "size", img, Dimension, Dimension)
	ttesting.AssertEqualColor(t, "(0,0)", img.NRGBAAt(0, 0), palette.EGA[9])
	ttesting.AssertEqualColor(t, "(1,0)", img.NRGBAAt(1, 0), palette.EGA[0])
	ttesting.AssertEqualColor(t, "(14,0)", img.NRGBAAt(14, 0), palette.EGA[2])
	ttesting.AssertEqualColor(t, "(0,1)", img.NRGBAAt(0, 1), palette.EGA[8])
}

func TestDecodeForced(t *testing.T) {
	// An EGA-headed sheet forced through the CGA decoder still decodes
	// leniently; the header only matters to Detect and strict mode.
	imgs, err := DecodeCGA(egaTestBlock(), nil)
	require.NoError(t, err)
	require.Len(t, imgs, 1)

	_, err = DecodeCGA(egaTestBlock(), &Options{Strict: true})
	ttesting.AssertErrorKind(t, "strict header", err, errs.KindMalformed)

	imgs, err = DecodeEGA(egaTestBlock(), nil)
	require.NoError(t, err)
	ttesting.AssertEqualColor(t, "(0,0)", imgs[0].NRGBAAt(0, 0), palette.EGA[9])
}

func TestTrailingBlock(t *testing.T) {
	full := cgaTestBlock()

	imgs, err := DecodeSheet(sheet(full, full[:cgaImageSize]), nil)
	require.NoError(t, err)
	assert.Len(t, imgs, 2)
	assert.Equal(t, imgs[0].Pix, imgs[1].Pix)

	_, err = DecodeSheet(sheet(full, full[:cgaImageSize-1]), nil)
	ttesting.AssertErrorKind(t, "short trailing", err, errs.KindMalformed)

	_, err = DecodeSheet(sheet(full, full[:cgaImageSize]), &Options{Strict: true})
	ttesting.AssertErrorKind(t, "strict trailing", err, errs.KindMalformed)

	ega := egaTestBlock()
	_, err = DecodeSheet(sheet(ega, ega[:cgaImageSize]), nil)
	ttesting.AssertErrorKind(t, "ega short trailing", err, errs.KindMalformed)

	imgs, err = DecodeSheet(sheet(ega, ega[:egaImageSize]), nil)
	require.NoError(t, err)
	assert.Len(t, imgs, 2)
}

func TestParallelMatchesSequential(t *testing.T) {
	var blocks [][]byte
	for i := 0; i < 40; i++ {
		b := block(EGAHeader)
		for j := headerSize; j < BlockSize; j++ {
			b[j] = byte(i*31 + j*7)
		}
		blocks = append(blocks, b)
	}
	buf := sheet(blocks...)

	seq, err := DecodeSheet(buf, nil)
	require.NoError(t, err)
	par, err := DecodeSheet(buf, &Options{Workers: 8})
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		assert.Equal(t, seq[i].Pix, par[i].Pix, "sprite %d", i)
	}
}

func TestImageDecode(t *testing.T) {
	img, name, err := image.Decode(bytes.NewReader(sheet(egaTestBlock(), block(EGAHeader))))
	require.NoError(t, err)
	assert.Equal(t, "egapic", name)
	ttesting.AssertSize(t, "size", img, Dimension, Dimension)

	cfg, name, err := image.DecodeConfig(bytes.NewReader(cgaTestBlock()))
	require.NoError(t, err)
	assert.Equal(t, "cgapic", name)
	assert.Equal(t, Dimension, cfg.Width)
	assert.Equal(t, Dimension, cfg.Height)
	assert.Len(t, cfg.ColorModel, len(palette.CGA))
}
