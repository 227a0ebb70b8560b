package monster

import (
	"os"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/ttesting"
)

func testRecords(gfx ...uint8) []byte {
	buf := make([]byte, 0, len(gfx)*RecordSize)
	for i, g := range gfx {
		rec := make([]byte, RecordSize)
		rec[0] = byte(i)
		rec[0x16] = g
		buf = append(buf, rec...)
	}
	return buf
}

func TestLayout(t *testing.T) {
	if err := Layout.Validate(); err != nil {
		t.Fatalf("invalid layout: %s", err)
	}
}

func TestDecode(t *testing.T) {
	ms, err := Decode(testRecords(4, 0, 17))
	if err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	ttesting.AssertEqualInt(t, "count", len(ms), 3)
	ttesting.AssertEqualUint8(t, "gfx 0", ms[0].GfxID, 4)
	ttesting.AssertEqualUint8(t, "gfx 1", ms[1].GfxID, 0)
	ttesting.AssertEqualUint8(t, "gfx 2", ms[2].GfxID, 17)
	ttesting.AssertEqualUint8(t, "record kept", ms[2].Record[0], 2)

	idx, ok := ms[0].Sprite()
	if !ok || idx != 3 {
		t.Errorf("sprite: got %d %v; want 3 true", idx, ok)
	}
	if _, ok := ms[1].Sprite(); ok {
		t.Errorf("monster with gfx 0 reports a sprite")
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(make([]byte, RecordSize*2-1))
	ttesting.AssertErrorKind(t, "partial record", err, errs.KindMalformed)
}

func TestLoadMonsters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "MONSTER.DAT")
	if err := os.WriteFile(path, testRecords(1, 2), 0644); err != nil {
		t.Fatalf("failed to write fixture: %s", err)
	}
	ms, err := LoadMonsters(path)
	if err != nil {
		t.Fatalf("failed to load: %s", err)
	}
	ttesting.AssertEqualInt(t, "count", len(ms), 2)

	_, err = LoadMonsters(path + ".missing")
	ttesting.AssertErrorKind(t, "missing file", err, errs.KindIO)
}
