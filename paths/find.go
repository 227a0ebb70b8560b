// Package paths locates the game's data files.
//
// Data files are looked up by their DOS name (e.g. "EGAPICS.PIC") in the
// working directory, a datafiles/ directory next to it, and the same two
// places relative to the running binary. Names are matched as given, then
// upper-cased, then lower-cased.
package paths

import (
	"io"
	"os"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-dungeon/errs"
)

// Well-known data file names.
const (
	EGAPics     = "EGAPICS.PIC"
	CGAPics     = "CGAPICS.PIC"
	MonsterPics = "MONPICS.PIC"
	MonsterMask = "MONMASK.PIC"
	Rooms       = "DUNGEON.RMS"
	Monsters    = "MONSTER.DAT"
)

// Find locates the passed data file name and returns an absolute or
// relative path to find it at, or "" when it is nowhere to be found.
func Find(fileName string) string {
	for _, path := range getPossiblePathsFSImp(fileName) {
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			glog.V(2).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	glog.V(2).Infof("paths.Find(%q): not found", fileName)
	return ""
}

// Open locates the passed file in the same locations that Find would look,
// and opens it. If Find returns an empty string, an error is returned.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errs.IO("paths.Open", &os.PathError{Op: "find", Path: fileName, Err: os.ErrNotExist})
	}
	return NoFindOpen(path)
}

// NoFindOpen opens fileName as given.
func NoFindOpen(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errs.IO("paths.NoFindOpen", err)
	}
	return f, nil
}
