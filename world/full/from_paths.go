// Package full populates world.Assets from data files on disk.
package full

import (
	"image"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-dungeon/monster"
	"badc0de.net/pkg/go-dungeon/pic"
	"badc0de.net/pkg/go-dungeon/rms"
	"badc0de.net/pkg/go-dungeon/world"
)

// Paths names the data files to load. Any path left empty is skipped.
type Paths struct {
	Tiles       string
	MonsterPics string
	MonsterMask string
	Rooms       string
	Monsters    string
}

// FromPaths loads every file named in p concurrently and registers the
// results in a new world.Assets.
func FromPaths(p Paths) (*world.Assets, error) {
	var (
		g        errgroup.Group
		tiles    []*image.NRGBA
		monPics  []*image.NRGBA
		monMask  []*image.NRGBA
		rooms    rms.Rooms
		monsters []monster.Monster
	)

	sheet := func(path, what string, dst *[]*image.NRGBA) {
		if path == "" {
			return
		}
		g.Go(func() error {
			glog.Infof("full.FromPaths(): opening %s: %q", what, path)
			imgs, err := pic.LoadSpriteSheet(path)
			if err != nil {
				return errors.Wrapf(err, "loading %s", what)
			}
			*dst = imgs
			return nil
		})
	}
	sheet(p.Tiles, "tile sheet", &tiles)
	sheet(p.MonsterPics, "monster sheet", &monPics)
	sheet(p.MonsterMask, "monster mask sheet", &monMask)

	if p.Rooms != "" {
		g.Go(func() error {
			glog.Infof("full.FromPaths(): opening rooms: %q", p.Rooms)
			var err error
			if rooms, err = rms.LoadRooms(p.Rooms); err != nil {
				return errors.Wrap(err, "loading rooms")
			}
			if err := rooms.Validate(); err != nil {
				glog.Warningf("full.FromPaths(): %v", err)
			}
			return nil
		})
	}
	if p.Monsters != "" {
		g.Go(func() error {
			glog.Infof("full.FromPaths(): opening monsters: %q", p.Monsters)
			var err error
			if monsters, err = monster.LoadMonsters(p.Monsters); err != nil {
				return errors.Wrap(err, "loading monsters")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	a := world.New()
	if err := a.AddTileSheet(tiles); err != nil {
		return nil, errors.Wrap(err, "adding tile sheet")
	}
	if err := a.AddMonsterSheet(monPics, monMask); err != nil {
		return nil, errors.Wrap(err, "adding monster sheet")
	}
	if err := a.AddRooms(rooms); err != nil {
		return nil, errors.Wrap(err, "adding rooms")
	}
	if err := a.AddMonsters(monsters); err != nil {
		return nil, errors.Wrap(err, "adding monsters")
	}
	return a, nil
}
