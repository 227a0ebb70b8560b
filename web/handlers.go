package web

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"badc0de.net/pkg/go-dungeon/errs"
	"badc0de.net/pkg/go-dungeon/export"
	"badc0de.net/pkg/go-dungeon/world"
)

const generation = 1 // bump if the way we generate images changes

// notModified answers a conditional request whose ETag still matches.
func notModified(w http.ResponseWriter, r *http.Request, etag string) bool {
	if r.Header.Get("If-None-Match") != etag {
		return false
	}
	w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
	return true
}

func writeImage(w http.ResponseWriter, mime, etag string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func writePNG(w http.ResponseWriter, etag string, img image.Image) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		httpError(w, err)
		return
	}
	writeImage(w, "image/png", etag, buf)
}

func scaleParam(r *http.Request) int {
	scale := 1
	if s := r.URL.Query().Get("scale"); s != "" {
		scale, _ = strconv.Atoi(s)
		// ignore invalid scale
	}
	if scale < 1 || scale > 16 {
		scale = 1
	}
	return scale
}

func (h *Handler) sheet(r *http.Request) (string, []*image.NRGBA) {
	name := mux.Vars(r)["sheet"]
	if name == "monsters" {
		return name, h.assets.MonsterSheet()
	}
	return name, h.assets.TileSheet()
}

func (h *Handler) spriteHandler(w http.ResponseWriter, r *http.Request) {
	name, sheet := h.sheet(r)
	idx := index(r)
	if idx < 1 || idx > len(sheet) {
		httpError(w, errs.Bounds("web.sprite", "sprite %d outside %d sprites", idx, len(sheet)))
		return
	}
	scale := scaleParam(r)

	etag := fmt.Sprintf(`W/"sprite:%d:%s:%d:%d:image/png"`, generation, name, idx, scale)
	if notModified(w, r, etag) {
		return
	}

	buf := &bytes.Buffer{}
	if err := export.WritePNG(buf, sheet[idx-1], scale); err != nil {
		httpError(w, err)
		return
	}
	writeImage(w, "image/png", etag, buf)
}

func (h *Handler) sheetGIFHandler(w http.ResponseWriter, r *http.Request) {
	name, sheet := h.sheet(r)
	if len(sheet) == 0 {
		httpError(w, errs.Bounds("web.sheetGIF", "sheet %q is empty", name))
		return
	}
	scale := scaleParam(r)

	etag := fmt.Sprintf(`W/"sheet:%d:%s:%d:%d:image/gif"`, generation, name, len(sheet), scale)
	if notModified(w, r, etag) {
		return
	}

	buf := &bytes.Buffer{}
	if err := export.WriteGIF(buf, sheet, scale, 50); err != nil {
		httpError(w, err)
		return
	}
	writeImage(w, "image/gif", etag, buf)
}

// cropParam reads a non-negative crop coordinate, clamped to max.
func cropParam(r *http.Request, key string, max int) (int, bool) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		// ignore invalid values
		return 0, false
	}
	if v > max {
		v = max
	}
	return v, true
}

// roomPNGHandler renders a room. Query values x, y, w and h crop the preview
// to a pixel rectangle, clamped to the preview. A crop entirely outside the
// preview is a bad request.
func (h *Handler) roomPNGHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room, err := h.room(r)
	if err != nil {
		httpError(w, err)
		return
	}

	bounds := image.Rect(0, 0, world.RoomPixelWidth, world.RoomPixelHeight)
	var src image.Rectangle
	x, _ := cropParam(r, "x", bounds.Dx())
	y, _ := cropParam(r, "y", bounds.Dy())
	cw, okW := cropParam(r, "w", bounds.Dx())
	ch, okH := cropParam(r, "h", bounds.Dy())
	crop := okW && okH && cw > 0 && ch > 0
	if crop {
		src = image.Rect(x, y, x+cw, y+ch).Intersect(bounds)
		if src.Empty() {
			httpError(w, errs.Malformed("web.roomPNG", "crop %dx%d at (%d,%d) outside the %dx%d preview", cw, ch, x, y, bounds.Dx(), bounds.Dy()))
			return
		}
	}

	etag := fmt.Sprintf(`W/"room:%d:%d:%d:%d.%d.%d.%d:image/png"`, generation, h.edits, index(r), src.Min.X, src.Min.Y, src.Max.X, src.Max.Y)
	if notModified(w, r, etag) {
		return
	}

	img := h.assets.CompositeRoom(room)
	if crop {
		dst := image.Rect(0, 0, src.Dx(), src.Dy())
		cropped := image.NewNRGBA(dst)
		draw.Draw(cropped, dst, img, src.Min, draw.Src)
		img = cropped
	}
	writePNG(w, etag, img)
}
