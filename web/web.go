// Package web serves decoded sprites and rooms over HTTP.
//
// Routes, with every index 1-based as in the data files:
//
//	GET  /sprite/{tiles|monsters}/{idx}  sprite as PNG
//	GET  /sprite/{tiles|monsters}.gif    whole sheet as an animated GIF
//	GET  /room/{idx}                     room as JSON, with a preview data URL
//	GET  /room/{idx}.png                 room preview as PNG, optionally cropped
//	POST /room/{idx}/tile                set tile x,y to v (form values)
//	GET  /monster/{idx}                  monster as JSON
package web

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"sync"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/rms"
	"badc0de.net/pkg/go-dungeon/world"
)

// Handler serves one world.Assets. Tile edits are serialized with reads of
// the same rooms.
type Handler struct {
	assets *world.Assets
	mu     sync.RWMutex
	router *mux.Router

	// edits counts tile edits; it is part of every room ETag.
	edits int
}

func New(a *world.Assets) *Handler {
	h := &Handler{assets: a, router: mux.NewRouter()}
	h.RegisterRoutes(h.router)
	return h
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/sprite/{sheet:tiles|monsters}/{idx:[0-9]+}", h.spriteHandler).Methods("GET")
	r.HandleFunc("/sprite/{sheet:tiles|monsters}.gif", h.sheetGIFHandler).Methods("GET")
	r.HandleFunc("/room/{idx:[0-9]+}.png", h.roomPNGHandler).Methods("GET")
	r.HandleFunc("/room/{idx:[0-9]+}", h.roomHandler).Methods("GET")
	r.HandleFunc("/room/{idx:[0-9]+}/tile", h.setTileHandler).Methods("POST")
	r.HandleFunc("/monster/{idx:[0-9]+}", h.monsterHandler).Methods("GET")
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func index(r *http.Request) int {
	// The route pattern only admits digits.
	idx, _ := strconv.Atoi(mux.Vars(r)["idx"])
	return idx
}

func httpError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch errs.KindOf(err) {
	case errs.KindBounds:
		code = http.StatusNotFound
	case errs.KindMalformed, errs.KindFormat:
		code = http.StatusBadRequest
	}
	if code == http.StatusInternalServerError {
		glog.Errorf("web: %v", err)
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		httpError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func pngDataURL(img image.Image) (string, error) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return "", err
	}
	b, err := dataurl.New(buf.Bytes(), "image/png").MarshalText()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *Handler) room(r *http.Request) (*rms.Room, error) {
	return h.assets.Room(index(r) - 1)
}

type objectJSON struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Code   string `json:"code"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status"`
	Sprite int    `json:"sprite,omitempty"`
}

type roomJSON struct {
	Index        int            `json:"index"`
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	MonsterID    int            `json:"monster_id"`
	MonsterCount int            `json:"monster_count"`
	Exits        map[string]int `json:"exits"`
	Tiles        [][]int        `json:"tiles"`
	Objects      []objectJSON   `json:"objects"`
	Preview      string         `json:"preview"`
}

func (h *Handler) roomHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room, err := h.room(r)
	if err != nil {
		httpError(w, err)
		return
	}

	out := roomJSON{
		Index:        index(r),
		ID:           int(room.ID),
		Name:         room.Name,
		MonsterID:    int(room.MonsterID),
		MonsterCount: int(room.MonsterCount),
		Exits:        map[string]int{},
		Tiles:        make([][]int, rms.Height),
	}
	for _, d := range rms.Directions {
		if j, ok := room.Exit(d); ok {
			out.Exits[d.String()] = j + 1
		}
	}
	for y := 0; y < rms.Height; y++ {
		out.Tiles[y] = make([]int, rms.Width)
		for x := 0; x < rms.Width; x++ {
			t, _ := room.Tile(x, y)
			out.Tiles[y][x] = int(t)

			ref, _ := room.ObjectSprite(x, y)
			if ref.Status == rms.StatusNone {
				continue
			}
			out.Objects = append(out.Objects, objectJSON{
				X:      x,
				Y:      y,
				Code:   string(rune(ref.Code)),
				Name:   rms.ObjectName(ref.Code),
				Status: ref.Status.String(),
				Sprite: int(ref.Sprite),
			})
		}
	}
	if out.Preview, err = pngDataURL(h.assets.CompositeRoom(room)); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, out)
}

func formInt(r *http.Request, key string, max int) (int, error) {
	v, err := strconv.Atoi(r.FormValue(key))
	if err != nil {
		return 0, errs.Malformed("web.setTile", "%s: %v", key, err)
	}
	if v < 0 || v > max {
		return 0, errs.Malformed("web.setTile", "%s=%d outside [0,%d]", key, v, max)
	}
	return v, nil
}

func (h *Handler) setTileHandler(w http.ResponseWriter, r *http.Request) {
	x, err := formInt(r, "x", 255)
	if err != nil {
		httpError(w, err)
		return
	}
	y, err := formInt(r, "y", 255)
	if err != nil {
		httpError(w, err)
		return
	}
	v, err := formInt(r, "v", 255)
	if err != nil {
		httpError(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	room, err := h.room(r)
	if err != nil {
		httpError(w, err)
		return
	}
	if err := room.SetTile(x, y, uint8(v)); err != nil {
		// An out-of-grid coordinate is the client's mistake, not a missing room.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.edits++
	glog.Infof("web: room %d tile (%d,%d) set to %d", index(r), x, y, v)
	w.WriteHeader(http.StatusNoContent)
}

type monsterJSON struct {
	Index  int    `json:"index"`
	GfxID  int    `json:"gfx_id"`
	Sprite string `json:"sprite,omitempty"`
}

func (h *Handler) monsterHandler(w http.ResponseWriter, r *http.Request) {
	idx := index(r)
	if idx > 255 {
		httpError(w, errs.Bounds("web.monster", "monster %d outside %d monsters", idx, len(h.assets.Monsters())))
		return
	}
	m, err := h.assets.Monster(uint8(idx))
	if err != nil {
		httpError(w, err)
		return
	}
	out := monsterJSON{Index: idx, GfxID: int(m.GfxID)}
	img, err := h.assets.MonsterImage(m)
	if err != nil {
		glog.Warningf("web: monster %d: %v", idx, err)
	} else if img != nil {
		if out.Sprite, err = pngDataURL(img); err != nil {
			httpError(w, err)
			return
		}
	}
	writeJSON(w, out)
}
