package full

import (
	"badc0de.net/pkg/go-dungeon/paths"
)

// DefaultPaths returns the data file locations found by the paths package.
// Files that cannot be found are left empty.
func DefaultPaths() Paths {
	return Paths{
		Tiles:       paths.Find(paths.EGAPics),
		MonsterPics: paths.Find(paths.MonsterPics),
		MonsterMask: paths.Find(paths.MonsterMask),
		Rooms:       paths.Find(paths.Rooms),
		Monsters:    paths.Find(paths.Monsters),
	}
}
