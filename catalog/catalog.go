// Package catalog indexes decoded rooms, monsters and sprites in a sqlite
// database so they can be searched without decoding the data files again.
package catalog

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"fmt"
	"image"
	"image/png"

	"github.com/golang/glog"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-dungeon/rms"
	"badc0de.net/pkg/go-dungeon/world"
)

// Sheet names used for the sprite table.
const (
	SheetTiles    = "tiles"
	SheetMonsters = "monsters"
)

type DB struct {
	db *sql.DB
}

// Open opens or creates the catalog at file.
func Open(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, errors.Wrap(err, "opening catalog")
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"CREATE TABLE IF NOT EXISTS sprite (id INTEGER PRIMARY KEY NOT NULL, sheet TEXT NOT NULL, idx INTEGER NOT NULL, sha1 TEXT NOT NULL, png BLOB NOT NULL, UNIQUE(sheet, idx))",
		"CREATE TABLE IF NOT EXISTS monster (id INTEGER PRIMARY KEY NOT NULL, gfx_id INTEGER NOT NULL, record BLOB NOT NULL)",
		"CREATE TABLE IF NOT EXISTS room (id INTEGER PRIMARY KEY NOT NULL, room_id INTEGER NOT NULL, name TEXT NOT NULL, monster_id INTEGER, monster_count INTEGER NOT NULL, tiles BLOB NOT NULL, objects BLOB NOT NULL)",
		"CREATE TABLE IF NOT EXISTS exit (room INTEGER NOT NULL, dir TEXT NOT NULL, target INTEGER NOT NULL, PRIMARY KEY(room, dir), FOREIGN KEY(room) REFERENCES room(id))",
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "creating catalog schema")
		}
	}

	return &DB{db: db}, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

// Import replaces the catalog contents with everything registered in a.
// Rooms and monsters are stored under their 1-based ids.
func (db *DB) Import(a *world.Assets) error {
	tx, err := db.db.Begin()
	if err != nil {
		return errors.Wrap(err, "starting import")
	}
	if err := importAssets(tx, a); err != nil {
		tx.Rollback()
		return err
	}
	return errors.Wrap(tx.Commit(), "committing import")
}

func importAssets(tx *sql.Tx, a *world.Assets) error {
	for _, table := range []string{"exit", "room", "monster", "sprite"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return errors.Wrapf(err, "clearing %s", table)
		}
	}

	for sheet, imgs := range map[string][]*image.NRGBA{
		SheetTiles:    a.TileSheet(),
		SheetMonsters: a.MonsterSheet(),
	} {
		for i, img := range imgs {
			if err := addSprite(tx, sheet, i+1, img); err != nil {
				return errors.Wrapf(err, "adding %s sprite %d", sheet, i+1)
			}
		}
	}

	for i, m := range a.Monsters() {
		if _, err := tx.Exec("INSERT INTO monster (id, gfx_id, record) VALUES (?, ?, ?)", i+1, m.GfxID, m.Record[:]); err != nil {
			return errors.Wrapf(err, "adding monster %d", i+1)
		}
	}

	for i, r := range a.Rooms() {
		if err := addRoom(tx, i+1, r); err != nil {
			return errors.Wrapf(err, "adding room %d", i+1)
		}
	}

	glog.Infof("catalog: imported %d rooms, %d monsters, %d+%d sprites", len(a.Rooms()), len(a.Monsters()), len(a.TileSheet()), len(a.MonsterSheet()))
	return nil
}

func addSprite(tx *sql.Tx, sheet string, idx int, img *image.NRGBA) error {
	b := new(bytes.Buffer)
	if err := png.Encode(b, img); err != nil {
		return err
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b.Bytes()))
	_, err := tx.Exec("INSERT INTO sprite (sheet, idx, sha1, png) VALUES (?, ?, ?, ?)", sheet, idx, sha, b.Bytes())
	return err
}

func addRoom(tx *sql.Tx, id int, r *rms.Room) error {
	var monster sql.NullInt64
	if r.MonsterID != 0 {
		monster.Int64 = int64(r.MonsterID)
		monster.Valid = true
	}
	tiles, objects := r.Tiles(), r.Objects()
	if _, err := tx.Exec("INSERT INTO room (id, room_id, name, monster_id, monster_count, tiles, objects) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, r.ID, r.Name, monster, r.MonsterCount, tiles[:], objects[:]); err != nil {
		return err
	}
	for _, d := range rms.Directions {
		if r.Exits[d] == 0 {
			continue
		}
		if _, err := tx.Exec("INSERT INTO exit (room, dir, target) VALUES (?, ?, ?)", id, d.String(), r.Exits[d]); err != nil {
			return err
		}
	}
	return nil
}

// RoomInfo is a catalog room row.
type RoomInfo struct {
	// Index is the 1-based position of the room in the map file.
	Index     int
	RoomID    int
	Name      string
	MonsterID int
}

func (db *DB) queryRooms(query string, args ...interface{}) ([]RoomInfo, error) {
	rows, err := db.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []RoomInfo
	for rows.Next() {
		var ri RoomInfo
		var monster sql.NullInt64
		if err := rows.Scan(&ri.Index, &ri.RoomID, &ri.Name, &monster); err != nil {
			return nil, err
		}
		ri.MonsterID = int(monster.Int64)
		rooms = append(rooms, ri)
	}
	return rooms, rows.Err()
}

// FindRoomsByName returns the rooms whose name contains s, ignoring case.
func (db *DB) FindRoomsByName(s string) ([]RoomInfo, error) {
	rooms, err := db.queryRooms("SELECT id, room_id, name, monster_id FROM room WHERE name LIKE '%' || ? || '%' ORDER BY id", s)
	return rooms, errors.Wrapf(err, "finding rooms named %q", s)
}

// FindRoomsByMonster returns the rooms the 1-based monster lives in.
func (db *DB) FindRoomsByMonster(monster int) ([]RoomInfo, error) {
	rooms, err := db.queryRooms("SELECT id, room_id, name, monster_id FROM room WHERE monster_id = ? ORDER BY id", monster)
	return rooms, errors.Wrapf(err, "finding rooms with monster %d", monster)
}

// Exits returns the exits of the room at 1-based index.
func (db *DB) Exits(room int) (map[rms.Direction]int, error) {
	rows, err := db.db.Query("SELECT dir, target FROM exit WHERE room = ?", room)
	if err != nil {
		return nil, errors.Wrapf(err, "finding exits of room %d", room)
	}
	defer rows.Close()

	exits := make(map[rms.Direction]int)
	for rows.Next() {
		var dir string
		var target int
		if err := rows.Scan(&dir, &target); err != nil {
			return nil, err
		}
		d, ok := rms.ParseDirection(dir)
		if !ok {
			return nil, errors.Errorf("room %d has unknown exit direction %q", room, dir)
		}
		exits[d] = target
	}
	return exits, rows.Err()
}

// SpritePNG returns the stored PNG of a 1-based sprite, or nil when there is
// none.
func (db *DB) SpritePNG(sheet string, idx int) ([]byte, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT png FROM sprite WHERE sheet = ? AND idx = ?", sheet, idx).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return b, nil
	default:
		return nil, errors.Wrapf(err, "finding %s sprite %d", sheet, idx)
	}
}
