// Package record describes fixed-size binary records as explicit layout
// tables and reads their fields with bounds checks.
//
// Legacy data files in this game are flat concatenations of equally sized
// records with fields at fixed byte offsets. A Layout names those fields; a
// Reader hands out field bytes for one record, failing with a malformed-input
// error instead of reading out of range.
package record

import (
	"badc0de.net/pkg/go-dungeon/errs"
)

// ToEnd as a Field's Size extends the field to the end of the record.
const ToEnd = -1

// Field is a named byte range within a record.
type Field struct {
	Name   string
	Offset int
	Size   int
}

// Layout is the table of fields of one record type.
type Layout struct {
	Name   string
	Size   int
	Fields []Field
}

func (l *Layout) field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			if f.Size == ToEnd {
				f.Size = l.Size - f.Offset
			}
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks that every field lies within the record and that no two
// fields overlap.
func (l *Layout) Validate() error {
	op := l.Name + ".Validate"
	if l.Size <= 0 {
		return errs.Malformed(op, "record size %d", l.Size)
	}
	used := make([]string, l.Size)
	for _, f := range l.Fields {
		size := f.Size
		if size == ToEnd {
			size = l.Size - f.Offset
		}
		if f.Offset < 0 || size <= 0 || f.Offset+size > l.Size {
			return errs.Malformed(op, "field %q [%#x,+%d) outside %#x-byte record", f.Name, f.Offset, size, l.Size)
		}
		for i := f.Offset; i < f.Offset+size; i++ {
			if used[i] != "" {
				return errs.Malformed(op, "field %q overlaps %q at %#x", f.Name, used[i], i)
			}
			used[i] = f.Name
		}
	}
	return nil
}

// Split cuts buf into records. A buffer whose length is not a whole number of
// records is malformed; nothing is returned for it.
func (l *Layout) Split(buf []byte) ([][]byte, error) {
	if len(buf)%l.Size != 0 {
		return nil, errs.Malformed(l.Name+".Split", "%d bytes is not a multiple of the %#x-byte record size (%d trailing)", len(buf), l.Size, len(buf)%l.Size)
	}
	recs := make([][]byte, 0, len(buf)/l.Size)
	for off := 0; off < len(buf); off += l.Size {
		recs = append(recs, buf[off:off+l.Size:off+l.Size])
	}
	return recs, nil
}

// Reader reads the fields of a single record.
type Reader struct {
	layout *Layout
	rec    []byte
}

// NewReader returns a Reader over rec, which must be exactly one record long.
func (l *Layout) NewReader(rec []byte) (*Reader, error) {
	if len(rec) != l.Size {
		return nil, errs.Malformed(l.Name+".NewReader", "record is %d bytes; want %d", len(rec), l.Size)
	}
	return &Reader{layout: l, rec: rec}, nil
}

// Field returns the bytes of the named field. The slice aliases the record.
func (r *Reader) Field(name string) ([]byte, error) {
	f, ok := r.layout.field(name)
	if !ok {
		return nil, errs.Malformed(r.layout.Name+".Field", "no field %q", name)
	}
	if f.Offset < 0 || f.Size < 0 || f.Offset+f.Size > len(r.rec) {
		return nil, errs.Malformed(r.layout.Name+".Field", "field %q [%#x,+%d) outside %d-byte record", name, f.Offset, f.Size, len(r.rec))
	}
	return r.rec[f.Offset : f.Offset+f.Size], nil
}

// Byte returns the named single-byte field.
func (r *Reader) Byte(name string) (uint8, error) {
	b, err := r.Field(name)
	if err != nil {
		return 0, err
	}
	if len(b) != 1 {
		return 0, errs.Malformed(r.layout.Name+".Byte", "field %q is %d bytes wide", name, len(b))
	}
	return b[0], nil
}

// Copy copies the named field into dst, which must be exactly as wide.
func (r *Reader) Copy(name string, dst []byte) error {
	b, err := r.Field(name)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return errs.Malformed(r.layout.Name+".Copy", "field %q is %d bytes; destination holds %d", name, len(b), len(dst))
	}
	copy(dst, b)
	return nil
}
