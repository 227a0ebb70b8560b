// Package world ties decoded sprite sheets, rooms and monsters together so
// that rooms can be drawn.
package world

import (
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/monster"
	"badc0de.net/pkg/go-dungeon/pic"
	"badc0de.net/pkg/go-dungeon/rms"
)

// Assets is a registry of everything a room needs to be drawn. Any part may
// be missing; lookups into a missing part fail with a bounds error.
type Assets struct {
	tiles    []*image.NRGBA
	monPics  []*image.NRGBA
	rooms    rms.Rooms
	monsters []monster.Monster
}

func New() *Assets {
	return &Assets{}
}

// AddTileSheet registers the sheet that room tiles and objects index into.
func (a *Assets) AddTileSheet(imgs []*image.NRGBA) error {
	a.tiles = imgs
	return nil
}

// AddMonsterSheet registers the monster sprites, cutting them out with masks
// when masks is not nil.
func (a *Assets) AddMonsterSheet(imgs, masks []*image.NRGBA) error {
	if masks != nil {
		if err := pic.MaskSheet(imgs, masks); err != nil {
			return err
		}
	}
	a.monPics = imgs
	return nil
}

func (a *Assets) AddRooms(rooms rms.Rooms) error {
	a.rooms = rooms
	return nil
}

func (a *Assets) AddMonsters(ms []monster.Monster) error {
	a.monsters = ms
	return nil
}

func (a *Assets) Rooms() rms.Rooms { return a.rooms }

func (a *Assets) Monsters() []monster.Monster { return a.monsters }

func (a *Assets) TileSheet() []*image.NRGBA { return a.tiles }

func (a *Assets) MonsterSheet() []*image.NRGBA { return a.monPics }

// Room returns the room at 0-based index i.
func (a *Assets) Room(i int) (*rms.Room, error) {
	if i < 0 || i >= len(a.rooms) {
		return nil, errs.Bounds("world.Room", "room %d outside %d rooms", i, len(a.rooms))
	}
	return a.rooms[i], nil
}

// TileImage returns the tile sheet sprite for a 1-based tile or object
// sprite number. 0 means nothing is drawn and yields nil.
func (a *Assets) TileImage(n uint8) (*image.NRGBA, error) {
	if n == 0 {
		return nil, nil
	}
	if int(n) > len(a.tiles) {
		return nil, errs.Bounds("world.TileImage", "tile %d outside %d tiles", n, len(a.tiles))
	}
	return a.tiles[n-1], nil
}

// Monster returns the record for a 1-based monster id.
func (a *Assets) Monster(id uint8) (monster.Monster, error) {
	if id == 0 || int(id) > len(a.monsters) {
		return monster.Monster{}, errs.Bounds("world.Monster", "monster %d outside %d monsters", id, len(a.monsters))
	}
	return a.monsters[id-1], nil
}

// MonsterImage returns the sprite of m.
func (a *Assets) MonsterImage(m monster.Monster) (*image.NRGBA, error) {
	i, ok := m.Sprite()
	if !ok {
		return nil, nil
	}
	if i >= len(a.monPics) {
		return nil, errs.Bounds("world.MonsterImage", "monster sprite %d outside %d sprites", i+1, len(a.monPics))
	}
	return a.monPics[i], nil
}

// RoomMonster returns the sprite of the monster living in r, or nil when the
// room has none.
func (a *Assets) RoomMonster(r *rms.Room) (*image.NRGBA, error) {
	if r.MonsterID == 0 {
		return nil, nil
	}
	m, err := a.Monster(r.MonsterID)
	if err != nil {
		return nil, err
	}
	img, err := a.MonsterImage(m)
	if err != nil {
		return nil, err
	}
	glog.V(3).Infof("world: room %d monster %d gfx %d", r.ID, r.MonsterID, m.GfxID)
	return img, nil
}
