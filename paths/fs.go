package paths

import (
	"os"
	"path/filepath"
	"strings"
)

func getPossiblePathDirsFSImp() []string {
	dirs := []string{".", "datafiles"}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		dirs = append(dirs, dir, filepath.Join(dir, "datafiles"))
	}
	return dirs
}

func getPossiblePathsFSImp(fileName string) []string {
	names := []string{fileName}
	for _, n := range []string{strings.ToUpper(fileName), strings.ToLower(fileName)} {
		if n != names[len(names)-1] && n != names[0] {
			names = append(names, n)
		}
	}
	if filepath.IsAbs(fileName) {
		return names
	}

	var paths []string
	for _, dir := range getPossiblePathDirsFSImp() {
		for _, n := range names {
			paths = append(paths, filepath.Join(dir, n))
		}
	}
	return paths
}
