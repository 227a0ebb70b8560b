package rms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/ttesting"
)

// testRecord builds a room record with a few recognizable values.
func testRecord(id uint8, name string) []byte {
	rec := make([]byte, RecordSize)
	rec[0x000] = 0xAA
	rec[0x001] = 5              // tile (0,0)
	rec[0x001+Width+1] = 84     // tile (1,1)
	rec[0x001+Width+2] = 85     // tile (2,1), a trap
	rec[0x001+Area-1] = 'z'     // tile (19,7), a trap
	rec[0x0A1+3] = 'a'          // object (3,0)
	rec[0x0A1+4] = 'c'          // object (4,0)
	rec[0x0A1+5] = 'd'          // object (5,0)
	rec[0x0A1+6] = 'j'          // object (6,0)
	rec[0x0A1+Width*7+19] = 'v' // object (19,7)
	rec[0x141] = 3
	rec[0x142] = 2
	copy(rec[0x143:], []byte{2, 0, 0, 0, 0, 1})
	rec[0x149] = id
	copy(rec[0x14A:], []byte{1, 2, 3})
	rec[0x14D] = byte(len(name))
	copy(rec[0x14E:], name)
	return rec
}

func TestLayout(t *testing.T) {
	require.NoError(t, Layout.Validate())
	ttesting.AssertEqualInt(t, "name field", nameFieldSize, 27)
}

func TestDecode(t *testing.T) {
	buf := append(testRecord(1, "Entrance"), testRecord(2, "Hall")...)
	rooms, err := Decode(buf)
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	r := rooms[0]
	ttesting.AssertEqualUint8(t, "id", r.ID, 1)
	ttesting.AssertEqualUint8(t, "monster id", r.MonsterID, 3)
	ttesting.AssertEqualUint8(t, "monster count", r.MonsterCount, 2)
	ttesting.AssertEqualUint8(t, "reserved0", r.Reserved0, 0xAA)
	assert.Equal(t, [3]uint8{1, 2, 3}, r.Reserved1)
	assert.Equal(t, [NumDirections]uint8{2, 0, 0, 0, 0, 1}, r.Exits)
	assert.Equal(t, "Entrance", r.Name)
	assert.Equal(t, "Hall", rooms[1].Name)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(make([]byte, RecordSize+1))
	ttesting.AssertErrorKind(t, "partial record", err, errs.KindMalformed)

	rec := testRecord(1, "x")
	rec[0x14D] = nameFieldSize
	_, err = Decode(rec)
	ttesting.AssertErrorKind(t, "name past record end", err, errs.KindMalformed)

	rooms, err := Decode(nil)
	require.NoError(t, err)
	assert.Len(t, rooms, 0)
}

func TestTile(t *testing.T) {
	r, err := DecodeRoom(testRecord(1, ""))
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		x, y int
		want uint8
		raw  uint8
	}{
		{"plain", 0, 0, 5, 5},
		{"empty", 1, 0, 0, 0},
		{"max tile", 1, 1, 84, 84},
		{"trap", 2, 1, TrapTile, 85},
		{"trap glyph", 19, 7, TrapTile, 'z'},
	} {
		got, err := r.Tile(tc.x, tc.y)
		require.NoError(t, err, tc.name)
		ttesting.AssertEqualUint8(t, tc.name, got, tc.want)
		raw, err := r.RawTile(tc.x, tc.y)
		require.NoError(t, err, tc.name)
		ttesting.AssertEqualUint8(t, tc.name+" raw", raw, tc.raw)
	}

	for v := 0; v < 256; v++ {
		require.NoError(t, r.SetTile(7, 3, uint8(v)))
		got, err := r.Tile(7, 3)
		require.NoError(t, err)
		if v > MaxTile {
			assert.Equal(t, uint8(TrapTile), got, "value %d", v)
		} else {
			assert.Equal(t, uint8(v), got, "value %d", v)
		}
	}
}

func TestBounds(t *testing.T) {
	r := &Room{}
	for _, p := range [][2]int{{Width, 0}, {0, Height}, {-1, 0}, {0, -1}} {
		_, err := r.Tile(p[0], p[1])
		ttesting.AssertErrorKind(t, "Tile", err, errs.KindBounds)
		_, err = r.RawTile(p[0], p[1])
		ttesting.AssertErrorKind(t, "RawTile", err, errs.KindBounds)
		ttesting.AssertErrorKind(t, "SetTile", r.SetTile(p[0], p[1], 1), errs.KindBounds)
		_, err = r.ObjectType(p[0], p[1])
		ttesting.AssertErrorKind(t, "ObjectType", err, errs.KindBounds)
		_, err = r.Object(p[0], p[1])
		ttesting.AssertErrorKind(t, "Object", err, errs.KindBounds)
		_, err = r.ObjectSprite(p[0], p[1])
		ttesting.AssertErrorKind(t, "ObjectSprite", err, errs.KindBounds)
		ttesting.AssertErrorKind(t, "SetObject", r.SetObject(p[0], p[1], 'd'), errs.KindBounds)
	}
	_, err := r.Tile(Width, 0)
	assert.EqualError(t, err, "rms.Tile: (20,0) outside 20x8")
	_, err = r.RawTile(0, Height)
	assert.EqualError(t, err, "rms.RawTile: (0,8) outside 20x8")
	_, err = r.RawObject(-1, 0)
	assert.EqualError(t, err, "rms.RawObject: (-1,0) outside 20x8")
	assert.EqualError(t, r.SetObject(Width, 0, 'd'), "rms.SetObject: (20,0) outside 20x8")
}

func TestLoadRooms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DUNGEON.RMS")
	require.NoError(t, os.WriteFile(path, append(testRecord(1, "One"), testRecord(2, "Two")...), 0644))

	loaded, err := LoadRooms(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Two", loaded[1].Name)
	tile, err := loaded[1].Tile(0, 0)
	require.NoError(t, err)
	ttesting.AssertEqualUint8(t, "tile", tile, 5)

	_, err = LoadRooms(filepath.Join(t.TempDir(), "missing.rms"))
	ttesting.AssertErrorKind(t, "missing file", err, errs.KindIO)
}
