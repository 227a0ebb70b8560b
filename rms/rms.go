// Package rms decodes the game's room map files (DUNGEON.RMS).
//
// A map file is a flat sequence of 0x168-byte room records. Each room holds
// a 20x8 grid of floor tiles, a same-shaped grid of object codes, the
// monster that lives there, six exits and a name.
package rms

import (
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/pascal"
	"badc0de.net/pkg/go-dungeon/record"
)

const (
	Width  = 20
	Height = 8
	Area   = Width * Height

	RecordSize = 0x168

	// MaxTile is the highest tile value that names a sprite. Traps are stored
	// as ASCII glyphs above it and are all drawn as TrapTile.
	MaxTile  = 84
	TrapTile = 21
)

// Layout is the room record layout.
var Layout = record.Layout{
	Name: "rms",
	Size: RecordSize,
	Fields: []record.Field{
		{Name: "reserved0", Offset: 0x000, Size: 1},
		{Name: "tiles", Offset: 0x001, Size: Area},
		{Name: "objects", Offset: 0x0A1, Size: Area},
		{Name: "monster_id", Offset: 0x141, Size: 1},
		{Name: "monster_count", Offset: 0x142, Size: 1},
		{Name: "exits", Offset: 0x143, Size: NumDirections},
		{Name: "id", Offset: 0x149, Size: 1},
		{Name: "reserved1", Offset: 0x14A, Size: 3},
		{Name: "name", Offset: 0x14D, Size: record.ToEnd},
	},
}

// nameFieldSize is the width of the name field, length byte included.
const nameFieldSize = RecordSize - 0x14D

// Room is one decoded room record.
type Room struct {
	tiles   [Area]uint8
	objects [Area]uint8

	// MonsterID is the 1-based monster record living in this room, or 0.
	MonsterID    uint8
	MonsterCount uint8

	// Exits holds the 1-based index of the neighboring room in each
	// Direction, or 0 where there is no exit. See Exit.
	Exits [NumDirections]uint8

	ID   uint8
	Name string

	// Reserved bytes of unknown purpose.
	Reserved0 uint8
	Reserved1 [3]uint8
}

// Rooms is the decoded contents of a map file, in file order.
type Rooms []*Room

// LoadRooms reads and decodes the map file at path.
func LoadRooms(path string) (Rooms, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.IO("rms.LoadRooms", err)
	}
	rooms, err := Decode(buf)
	if err != nil {
		return nil, err
	}
	glog.Infof("rms: loaded %d rooms from %s", len(rooms), path)
	return rooms, nil
}

// Decode decodes every record in buf. buf must hold a whole number of
// records.
func Decode(buf []byte) (Rooms, error) {
	recs, err := Layout.Split(buf)
	if err != nil {
		return nil, err
	}
	rooms := make(Rooms, 0, len(recs))
	for i, rec := range recs {
		r, err := DecodeRoom(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "room %d", i)
		}
		glog.V(3).Infof("rms: room %d id=%d %q monster=%d exits=%v", i, r.ID, r.Name, r.MonsterID, r.Exits)
		rooms = append(rooms, r)
	}
	return rooms, nil
}

// DecodeRoom decodes a single record.
func DecodeRoom(rec []byte) (*Room, error) {
	rd, err := Layout.NewReader(rec)
	if err != nil {
		return nil, err
	}

	r := &Room{}
	if err := rd.Copy("tiles", r.tiles[:]); err != nil {
		return nil, err
	}
	if err := rd.Copy("objects", r.objects[:]); err != nil {
		return nil, err
	}
	if err := rd.Copy("exits", r.Exits[:]); err != nil {
		return nil, err
	}
	if err := rd.Copy("reserved1", r.Reserved1[:]); err != nil {
		return nil, err
	}
	if r.Reserved0, err = rd.Byte("reserved0"); err != nil {
		return nil, err
	}
	if r.MonsterID, err = rd.Byte("monster_id"); err != nil {
		return nil, err
	}
	if r.MonsterCount, err = rd.Byte("monster_count"); err != nil {
		return nil, err
	}
	if r.ID, err = rd.Byte("id"); err != nil {
		return nil, err
	}

	name, err := rd.Field("name")
	if err != nil {
		return nil, err
	}
	if r.Name, err = pascal.Decode(name); err != nil {
		return nil, err
	}
	return r, nil
}

func index(op string, x, y int) (int, error) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, errs.Bounds(op, "(%d,%d) outside %dx%d", x, y, Width, Height)
	}
	return y*Width + x, nil
}

// Tile returns the tile at (x,y). 0 means no tile; otherwise the value is a
// 1-based index into the tile sheet. Trap glyphs are reported as TrapTile.
func (r *Room) Tile(x, y int) (uint8, error) {
	i, err := index("rms.Tile", x, y)
	if err != nil {
		return 0, err
	}
	if t := r.tiles[i]; t <= MaxTile {
		return t, nil
	}
	return TrapTile, nil
}

// RawTile returns the stored byte at (x,y) without trap normalization.
func (r *Room) RawTile(x, y int) (uint8, error) {
	i, err := index("rms.RawTile", x, y)
	if err != nil {
		return 0, err
	}
	return r.tiles[i], nil
}

// SetTile overwrites the stored byte at (x,y). Rooms are not safe for
// concurrent mutation.
func (r *Room) SetTile(x, y int, v uint8) error {
	i, err := index("rms.SetTile", x, y)
	if err != nil {
		return err
	}
	r.tiles[i] = v
	return nil
}

// RawObject returns the stored object code at (x,y).
func (r *Room) RawObject(x, y int) (uint8, error) {
	i, err := index("rms.RawObject", x, y)
	if err != nil {
		return 0, err
	}
	return r.objects[i], nil
}

// SetObject overwrites the object code at (x,y).
func (r *Room) SetObject(x, y int, code uint8) error {
	i, err := index("rms.SetObject", x, y)
	if err != nil {
		return err
	}
	r.objects[i] = code
	return nil
}

// Tiles returns a copy of the raw tile grid, row-major.
func (r *Room) Tiles() [Area]uint8 { return r.tiles }

// Objects returns a copy of the raw object grid, row-major.
func (r *Room) Objects() [Area]uint8 { return r.objects }
