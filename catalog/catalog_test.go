package catalog

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badc0de.net/pkg/go-dungeon/monster"
	"badc0de.net/pkg/go-dungeon/rms"
	"badc0de.net/pkg/go-dungeon/world"
)

func testAssets(t *testing.T) *world.Assets {
	a := world.New()
	tiles := []*image.NRGBA{
		image.NewNRGBA(image.Rect(0, 0, 15, 15)),
		image.NewNRGBA(image.Rect(0, 0, 15, 15)),
	}
	require.NoError(t, a.AddTileSheet(tiles))
	require.NoError(t, a.AddMonsterSheet([]*image.NRGBA{image.NewNRGBA(image.Rect(0, 0, 15, 15))}, nil))
	require.NoError(t, a.AddMonsters([]monster.Monster{{GfxID: 1}, {GfxID: 1}}))
	require.NoError(t, a.AddRooms(rms.Rooms{
		{ID: 10, Name: "Entrance Hall", MonsterID: 2, Exits: [rms.NumDirections]uint8{rms.North: 2}},
		{ID: 11, Name: "Crypt", Exits: [rms.NumDirections]uint8{rms.South: 1, rms.Down: 9}},
		{ID: 12, Name: "Great hall", MonsterID: 2},
	}))
	return a
}

func openTest(t *testing.T) *DB {
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestImport(t *testing.T) {
	db := openTest(t)
	require.NoError(t, db.Import(testAssets(t)))
	// Importing again replaces the previous contents.
	require.NoError(t, db.Import(testAssets(t)))

	rooms, err := db.FindRoomsByName("hall")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, RoomInfo{Index: 1, RoomID: 10, Name: "Entrance Hall", MonsterID: 2}, rooms[0])
	assert.Equal(t, "Great hall", rooms[1].Name)

	rooms, err = db.FindRoomsByMonster(2)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	rooms, err = db.FindRoomsByName("nowhere")
	require.NoError(t, err)
	assert.Empty(t, rooms)

	exits, err := db.Exits(2)
	require.NoError(t, err)
	assert.Equal(t, map[rms.Direction]int{rms.South: 1, rms.Down: 9}, exits)
}

func TestSpritePNG(t *testing.T) {
	db := openTest(t)
	require.NoError(t, db.Import(testAssets(t)))

	b, err := db.SpritePNG(SheetTiles, 2)
	require.NoError(t, err)
	require.NotNil(t, b)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 15, img.Bounds().Dx())

	b, err = db.SpritePNG(SheetMonsters, 1)
	require.NoError(t, err)
	assert.NotNil(t, b)

	b, err = db.SpritePNG(SheetTiles, 3)
	require.NoError(t, err)
	assert.Nil(t, b)
}
