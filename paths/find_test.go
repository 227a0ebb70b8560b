package paths

import (
	"os"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/ttesting"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %s", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %s", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.Mkdir("datafiles", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("datafiles", "dungeon.rms"), []byte{1, 2, 3}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(MonsterPics, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if got, want := Find(Rooms), filepath.Join("datafiles", "dungeon.rms"); got != want {
		t.Errorf("Find(%q) = %q; want %q", Rooms, got, want)
	}
	if got, want := Find("monpics.pic"), filepath.Join(".", MonsterPics); got != want {
		t.Errorf("Find(monpics.pic) = %q; want %q", got, want)
	}
	if got := Find(Monsters); got != "" {
		t.Errorf("Find(%q) = %q; want nothing", Monsters, got)
	}

	f, err := Open(Rooms)
	if err != nil {
		t.Fatalf("failed to open: %s", err)
	}
	var b [3]byte
	n, _ := f.Read(b[:])
	f.Close()
	ttesting.AssertEqualInt(t, "read", n, 3)

	_, err = Open(Monsters)
	ttesting.AssertErrorKind(t, "missing", err, errs.KindIO)
}
