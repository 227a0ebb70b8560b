// Command assetdump lists, exports and catalogs the decoded data files.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/urfave/cli/v2"

	"badc0de.net/pkg/go-dungeon/world"
	"badc0de.net/pkg/go-dungeon/world/full"
)

const defaultCatalog = "dungeon.db"

func pathFlag(name, env, value, usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    name,
		EnvVars: []string{env},
		Value:   value,
		Usage:   usage,
	}
}

// loadAssets loads the data files named by the global flags.
func loadAssets(c *cli.Context) (*world.Assets, error) {
	return full.FromPaths(full.Paths{
		Tiles:       c.String("tiles"),
		MonsterPics: c.String("monster-pics"),
		MonsterMask: c.String("monster-mask"),
		Rooms:       c.String("rooms"),
		Monsters:    c.String("monsters"),
	})
}

func main() {
	// glog registers its flags on the standard flag set, which urfave/cli
	// does not parse.
	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse(nil)

	app := cli.NewApp()

	app.Name = "assetdump"
	app.Usage = "dungeon data file dumper"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		glog.Exit(err)
	}
	def := full.DefaultPaths()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"DUNGEON_CATALOG"},
			Value:   filepath.Join(cwd, defaultCatalog),
			Usage:   "path to catalog database",
		},
		pathFlag("tiles", "DUNGEON_TILES", def.Tiles, "path to the tile sprite sheet"),
		pathFlag("monster-pics", "DUNGEON_MONSTER_PICS", def.MonsterPics, "path to the monster sprite sheet"),
		pathFlag("monster-mask", "DUNGEON_MONSTER_MASK", def.MonsterMask, "path to the monster mask sheet"),
		pathFlag("rooms", "DUNGEON_ROOMS", def.Rooms, "path to the room map file"),
		pathFlag("monsters", "DUNGEON_MONSTERS", def.Monsters, "path to the monster data file"),
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			flag.Set("v", "2")
		}
		return nil
	}

	app.Commands = commands()

	if err := app.Run(os.Args); err != nil {
		glog.Exit(err)
	}
	glog.Flush()
}
