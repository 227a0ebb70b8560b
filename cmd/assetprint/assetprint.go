// Command assetprint prints sprites and rooms on the terminal.
package main

import (
	"flag"
	"image"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-dungeon/export"
	"badc0de.net/pkg/go-dungeon/pic"
	"badc0de.net/pkg/go-dungeon/world"
	"badc0de.net/pkg/go-dungeon/world/full"
)

var (
	tileID    = flag.Int("tile", 0, "1-based tile sheet sprite to print")
	monsterID = flag.Int("monster", 0, "1-based monster id whose sprite to print")
	roomID    = flag.Int("room", 0, "1-based room to print")
	sheet     = flag.String("sheet", "", "print a whole sheet: tiles or monsters")
	picFile   = flag.String("pic", "", "sprite sheet file to print instead of the tile sheet; used with -tile")

	col      = flag.Bool("col", true, "whether to use color at all")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with kitty, iterm or sixel graphics where supported")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", false, "whether to shrink images to fit the terminal")
	scale    = flag.Int("scale", 4, "upscaling factor for graphical output")
)

func tileHandler(a *world.Assets, idx int) {
	if idx < 0 || idx > 255 {
		glog.Errorf("tile %d out of range", idx)
		return
	}
	img, err := a.TileImage(uint8(idx))
	if err != nil {
		glog.Errorf("error getting tile: %v", err)
		return
	}
	out(img)
}

func picHandler(path string, idx int) {
	imgs, err := pic.LoadSpriteSheet(path)
	if err != nil {
		glog.Errorf("error decoding %s: %v", path, err)
		return
	}
	if idx < 1 || idx > len(imgs) {
		glog.Errorf("sprite %d outside %d sprites in %s", idx, len(imgs), path)
		return
	}
	out(imgs[idx-1])
}

func monsterHandler(a *world.Assets, id int) {
	if id < 1 || id > 255 {
		glog.Errorf("monster %d out of range", id)
		return
	}
	m, err := a.Monster(uint8(id))
	if err != nil {
		glog.Errorf("error getting monster: %v", err)
		return
	}
	img, err := a.MonsterImage(m)
	if err != nil {
		glog.Errorf("error getting monster sprite: %v", err)
		return
	}
	if img == nil {
		glog.Infof("monster %d has no sprite", id)
		return
	}
	out(img)
}

func roomHandler(a *world.Assets, idx int) {
	r, err := a.Room(idx - 1)
	if err != nil {
		glog.Errorf("error getting room: %v", err)
		return
	}
	glog.Infof("room %d: %q (id %d)", idx, r.Name, r.ID)
	out(a.CompositeRoom(r))
}

func sheetHandler(a *world.Assets, name string) {
	var imgs []*image.NRGBA
	switch name {
	case "tiles":
		imgs = a.TileSheet()
	case "monsters":
		imgs = a.MonsterSheet()
	default:
		glog.Errorf("unknown sheet %q", name)
		return
	}
	if len(imgs) == 0 {
		glog.Errorf("sheet %q is empty", name)
		return
	}
	out(export.ContactSheet(imgs, 16, 1))
}

func main() {
	full.SetupFilePathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *picFile != "" {
		picHandler(*picFile, *tileID)
		return
	}

	a, err := full.FromFilePathFlags()
	if err != nil {
		glog.Exitf("error loading assets: %v", err)
	}

	if *tileID != 0 {
		tileHandler(a, *tileID)
	}
	if *monsterID != 0 {
		monsterHandler(a, *monsterID)
	}
	if *roomID != 0 {
		roomHandler(a, *roomID)
	}
	if *sheet != "" {
		sheetHandler(a, *sheet)
	}
}
