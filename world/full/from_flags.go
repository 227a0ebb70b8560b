package full

import (
	"badc0de.net/pkg/go-dungeon/paths"
	"badc0de.net/pkg/go-dungeon/world"
)

var flagPaths Paths

type PathFlag string

const (
	FlagTilesPath       = PathFlag("tiles_path")
	FlagMonsterPicsPath = PathFlag("monster_pics_path")
	FlagMonsterMaskPath = PathFlag("monster_mask_path")
	FlagRoomsPath       = PathFlag("rooms_path")
	FlagMonstersPath    = PathFlag("monsters_path")
)

// SetupFilePathFlags registers flags to manually define paths to the data
// files: --tiles_path, --monster_pics_path, --monster_mask_path,
// --rooms_path and --monsters_path.
//
// These paths will then be referred to in the FromFilePathFlags function.
func SetupFilePathFlags() {
	paths.SetupFilePathFlag(paths.EGAPics, string(FlagTilesPath), &flagPaths.Tiles)
	paths.SetupFilePathFlag(paths.MonsterPics, string(FlagMonsterPicsPath), &flagPaths.MonsterPics)
	paths.SetupFilePathFlag(paths.MonsterMask, string(FlagMonsterMaskPath), &flagPaths.MonsterMask)
	paths.SetupFilePathFlag(paths.Rooms, string(FlagRoomsPath), &flagPaths.Rooms)
	paths.SetupFilePathFlag(paths.Monsters, string(FlagMonstersPath), &flagPaths.Monsters)
}

// FromFilePathFlags loads the files named by the flags registered with
// SetupFilePathFlags. The flags need to be parsed by the time this function
// is invoked.
func FromFilePathFlags() (*world.Assets, error) {
	return FromPaths(flagPaths)
}

// PathFlagValue returns the value for the passed flag.
func PathFlagValue(key PathFlag) string {
	switch key {
	case FlagTilesPath:
		return flagPaths.Tiles
	case FlagMonsterPicsPath:
		return flagPaths.MonsterPics
	case FlagMonsterMaskPath:
		return flagPaths.MonsterMask
	case FlagRoomsPath:
		return flagPaths.Rooms
	case FlagMonstersPath:
		return flagPaths.Monsters
	default:
		return ""
	}
}
