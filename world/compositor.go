package world

import (
	"image"
	"image/draw"

	"github.com/bradfitz/iter"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-dungeon/pic"
	"badc0de.net/pkg/go-dungeon/rms"
)

const (
	RoomPixelWidth  = rms.Width * pic.Dimension
	RoomPixelHeight = rms.Height * pic.Dimension
)

// CompositeRoom paints r: floor tiles first, then objects, then the room's
// monster in every monster slot. Cells whose sprites cannot be resolved are
// logged and left out.
func (a *Assets) CompositeRoom(r *rms.Room) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, RoomPixelWidth, RoomPixelHeight))

	mon, err := a.RoomMonster(r)
	if err != nil {
		glog.Warningf("world: room %d (%q): %v", r.ID, r.Name, err)
	}

	for y := range iter.N(rms.Height) {
		for x := range iter.N(rms.Width) {
			dst := image.Rect(x*pic.Dimension, y*pic.Dimension, (x+1)*pic.Dimension, (y+1)*pic.Dimension)
			a.compositeCell(img, dst, r, x, y, mon)
		}
	}
	return img
}

func (a *Assets) compositeCell(img *image.NRGBA, dst image.Rectangle, r *rms.Room, x, y int, mon *image.NRGBA) {
	tile, err := r.Tile(x, y)
	if err != nil {
		glog.Errorf("world: %v", err)
		return
	}
	if src, err := a.TileImage(tile); err != nil {
		glog.Warningf("world: room %d (%d,%d): %v", r.ID, x, y, err)
	} else if src != nil {
		draw.Draw(img, dst, src, image.Point{}, draw.Over)
	}

	ref, err := r.ObjectSprite(x, y)
	if err != nil {
		glog.Errorf("world: %v", err)
		return
	}
	var src *image.NRGBA
	switch ref.Status {
	case rms.StatusResolved:
		if src, err = a.TileImage(ref.Sprite); err != nil {
			glog.Warningf("world: room %d (%d,%d) object %q: %v", r.ID, x, y, ref.Code, err)
		}
	case rms.StatusMonsterSlot:
		src = mon
	case rms.StatusUnimplemented, rms.StatusUnknown:
		glog.V(2).Infof("world: room %d (%d,%d): no sprite for object %q (%s)", r.ID, x, y, ref.Code, rms.ObjectName(ref.Code))
	}
	if src != nil {
		draw.Draw(img, dst, src, image.Point{}, draw.Over)
	}
}
