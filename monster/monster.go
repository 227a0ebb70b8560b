// Package monster decodes the game's monster data file (MONSTER.DAT).
package monster

import (
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/record"
)

const RecordSize = 0x1F

// Layout is the monster record layout. Only the graphics id is understood.
var Layout = record.Layout{
	Name: "monster",
	Size: RecordSize,
	Fields: []record.Field{
		{Name: "gfx_id", Offset: 0x16, Size: 1},
	},
}

// Monster is one decoded monster record.
type Monster struct {
	// GfxID is the 1-based index of the monster's sprite in the monster sheet.
	GfxID uint8

	// Record is the undecoded record.
	Record [RecordSize]byte
}

// LoadMonsters reads and decodes the monster file at path.
func LoadMonsters(path string) ([]Monster, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.IO("monster.LoadMonsters", err)
	}
	ms, err := Decode(buf)
	if err != nil {
		return nil, err
	}
	glog.Infof("monster: loaded %d monsters from %s", len(ms), path)
	return ms, nil
}

// Decode decodes every record in buf, which must hold a whole number of
// records.
func Decode(buf []byte) ([]Monster, error) {
	recs, err := Layout.Split(buf)
	if err != nil {
		return nil, err
	}
	ms := make([]Monster, len(recs))
	for i, rec := range recs {
		rd, err := Layout.NewReader(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "monster %d", i)
		}
		if ms[i].GfxID, err = rd.Byte("gfx_id"); err != nil {
			return nil, errors.Wrapf(err, "monster %d", i)
		}
		copy(ms[i].Record[:], rec)
		glog.V(3).Infof("monster: %d gfx=%d", i, ms[i].GfxID)
	}
	return ms, nil
}

// Sprite returns the 0-based monster sheet index of m's sprite, or false if
// m has none.
func (m Monster) Sprite() (int, bool) {
	if m.GfxID == 0 {
		return 0, false
	}
	return int(m.GfxID) - 1, true
}
