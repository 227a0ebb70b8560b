package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/urfave/cli/v2"

	"badc0de.net/pkg/go-dungeon/catalog"
	"badc0de.net/pkg/go-dungeon/export"
	"badc0de.net/pkg/go-dungeon/palette"
	"badc0de.net/pkg/go-dungeon/rms"
	"badc0de.net/pkg/go-dungeon/world"
)

var (
	outFlag = &cli.StringFlag{
		Name:  "out",
		Value: ".",
		Usage: "output directory",
	}
	scaleFlag = &cli.IntFlag{
		Name:  "scale",
		Value: 1,
		Usage: "integer upscaling factor",
	}
)

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "info",
			Usage:  "Summarize the data files",
			Action: withAssets(info),
		},
		{
			Name:  "sprites",
			Usage: "Write the sprites of a sheet as PNG files",
			Flags: []cli.Flag{
				outFlag,
				scaleFlag,
				&cli.StringFlag{Name: "sheet", Value: catalog.SheetTiles, Usage: "tiles or monsters"},
				&cli.BoolFlag{Name: "contact", Usage: "write one contact sheet instead of one file per sprite"},
				&cli.BoolFlag{Name: "gif", Usage: "write the sheet as an animated GIF"},
				&cli.BoolFlag{Name: "indexed", Usage: "write paletted PNGs indexed against the EGA palette"},
			},
			Action: withAssets(sprites),
		},
		{
			Name:      "rooms",
			Usage:     "List rooms",
			ArgsUsage: "[INDEX...]",
			Action:    withAssets(rooms),
		},
		{
			Name:   "monsters",
			Usage:  "List monsters",
			Action: withAssets(monsters),
		},
		{
			Name:   "validate",
			Usage:  "Check that every room exit leads to a room",
			Action: withAssets(validate),
		},
		{
			Name:   "export",
			Usage:  "Write both sheets and every room preview as PNG files",
			Flags:  []cli.Flag{outFlag, scaleFlag},
			Action: withAssets(exportAll),
		},
		{
			Name:   "import",
			Usage:  "Import the data files into the catalog",
			Action: withAssets(importCatalog),
		},
		{
			Name:      "find",
			Usage:     "Search the catalog for rooms",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "monster", Usage: "find rooms with this 1-based monster id instead"},
			},
			Action: find,
		},
	}
}

func withAssets(fn func(*cli.Context, *world.Assets) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		a, err := loadAssets(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if err := fn(c, a); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}
}

func info(c *cli.Context, a *world.Assets) error {
	figure.NewFigure(c.App.Name, "", true).Print()
	fmt.Println()
	fmt.Printf("tiles:          %d\n", len(a.TileSheet()))
	fmt.Printf("monster sprites: %d\n", len(a.MonsterSheet()))
	fmt.Printf("rooms:          %d\n", len(a.Rooms()))
	fmt.Printf("monsters:       %d\n", len(a.Monsters()))
	fmt.Println()
	fmt.Println(paletteLine("CGA", palette.CGA))
	fmt.Println(paletteLine("EGA", palette.EGA))
	return nil
}

// paletteLine lists the entries of p as hex colors.
func paletteLine(name string, p palette.Palette) string {
	hexes := make([]string, len(p))
	for i := range p {
		hexes[i] = p.Hex(uint8(i))
	}
	return fmt.Sprintf("%s palette: %s", name, strings.Join(hexes, " "))
}

func sheetByName(a *world.Assets, name string) ([]*image.NRGBA, error) {
	switch name {
	case catalog.SheetTiles:
		return a.TileSheet(), nil
	case catalog.SheetMonsters:
		return a.MonsterSheet(), nil
	}
	return nil, fmt.Errorf("unknown sheet %q", name)
}

func sprites(c *cli.Context, a *world.Assets) error {
	name := c.String("sheet")
	imgs, err := sheetByName(a, name)
	if err != nil {
		return err
	}
	if len(imgs) == 0 {
		return fmt.Errorf("sheet %q is empty", name)
	}
	if err := os.MkdirAll(c.String("out"), 0755); err != nil {
		return err
	}

	switch {
	case c.Bool("gif"):
		return export.SheetGIF(filepath.Join(c.String("out"), name+".gif"), imgs, c.Int("scale"), 50)
	case c.Bool("indexed"):
		return indexedSprites(c.String("out"), name, imgs, c.Int("scale"))
	case c.Bool("contact"):
		return export.SheetPNG(filepath.Join(c.String("out"), name+".png"), imgs, 16, c.Int("scale"))
	default:
		return export.Sprites(c.String("out"), name, imgs, c.Int("scale"))
	}
}

func indexedSprites(dir, prefix string, imgs []*image.NRGBA, scale int) error {
	for i, img := range imgs {
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%s_%03d.png", prefix, i+1)))
		if err != nil {
			return err
		}
		err = export.WriteIndexedPNG(f, img, palette.EGA, scale)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func exits(r *rms.Room) string {
	var s []string
	for _, d := range rms.Directions {
		if j, ok := r.Exit(d); ok {
			s = append(s, fmt.Sprintf("%s=%d", d, j+1))
		}
	}
	return strings.Join(s, ",")
}

func printRoom(i int, r *rms.Room) {
	fmt.Printf("%4d  id=%-3d monster=%-3d x%-2d %-26q %s\n", i+1, r.ID, r.MonsterID, r.MonsterCount, r.Name, exits(r))
}

func rooms(c *cli.Context, a *world.Assets) error {
	if c.NArg() == 0 {
		for i, r := range a.Rooms() {
			printRoom(i, r)
		}
		return nil
	}
	for _, arg := range c.Args().Slice() {
		idx, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("bad room index %q", arg)
		}
		r, err := a.Room(idx - 1)
		if err != nil {
			return err
		}
		printRoom(idx-1, r)
		for y := 0; y < rms.Height; y++ {
			for x := 0; x < rms.Width; x++ {
				t, _ := r.Tile(x, y)
				code, _ := r.RawObject(x, y)
				if code == 0 {
					code = ' '
				}
				fmt.Printf("%02d%c ", t, code)
			}
			fmt.Println()
		}
	}
	return nil
}

func monsters(c *cli.Context, a *world.Assets) error {
	for i, m := range a.Monsters() {
		fmt.Printf("%4d  gfx=%d\n", i+1, m.GfxID)
	}
	return nil
}

func validate(c *cli.Context, a *world.Assets) error {
	if err := a.Rooms().Validate(); err != nil {
		return err
	}
	fmt.Printf("%d rooms ok\n", len(a.Rooms()))
	return nil
}

func exportAll(c *cli.Context, a *world.Assets) error {
	dir := c.String("out")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	scale := c.Int("scale")
	if tiles := a.TileSheet(); len(tiles) > 0 {
		if err := export.SheetPNG(filepath.Join(dir, "tiles.png"), tiles, 16, scale); err != nil {
			return err
		}
	}
	if mons := a.MonsterSheet(); len(mons) > 0 {
		if err := export.SheetPNG(filepath.Join(dir, "monsters.png"), mons, 16, scale); err != nil {
			return err
		}
	}
	return export.Rooms(dir, a, scale)
}

func importCatalog(c *cli.Context, a *world.Assets) error {
	db, err := catalog.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Import(a)
}

func find(c *cli.Context) error {
	db, err := catalog.Open(c.String("db"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	var found []catalog.RoomInfo
	if m := c.Int("monster"); m != 0 {
		found, err = db.FindRoomsByMonster(m)
	} else {
		if c.NArg() < 1 {
			cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
		}
		found, err = db.FindRoomsByName(c.Args().First())
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	for _, ri := range found {
		ex, err := db.Exits(ri.Index)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		var s []string
		for _, d := range rms.Directions {
			if t, ok := ex[d]; ok {
				s = append(s, fmt.Sprintf("%s=%d", d, t))
			}
		}
		fmt.Printf("%4d  id=%-3d monster=%-3d %-26q %s\n", ri.Index, ri.RoomID, ri.MonsterID, ri.Name, strings.Join(s, ","))
	}
	return nil
}
