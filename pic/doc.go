// Package pic decodes the game's .PIC sprite sheets.
//
// A sheet is a concatenation of 256-byte blocks, one 15x15 sprite per block.
// The first four bytes of every block are a header identifying the encoding:
//
//	0E 00 0E 00  4-color (CGA) packed pixels, 2 bits per pixel
//	1D 00 0E 00  16-color (EGA) bit planes, 4 planes per row
//
// Only a fraction of each block carries pixels; the remainder is padding.
// CGA sprites occupy block bytes [4,64) as 15 rows of 4 bytes. EGA sprites
// occupy block bytes [4,244) as 15 rows of 16 bytes, each row being four
// 4-byte channel planes laid side by side. In both encodings every row
// carries 16 pixels of which the last is padding.
//
// Decoded sprites are *image.NRGBA values so that ApplyMask can cut them out
// by clearing alpha without touching color.
//
// Both encodings are registered with the image package as "cgapic" and
// "egapic"; image.Decode returns the first sprite of a sheet.
package pic
