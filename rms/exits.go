package rms

import (
	"fmt"
	"strings"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-dungeon/errs"
)

// Direction indexes Room.Exits.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	Up
	Down

	NumDirections = 6
)

// Directions lists every direction in record order.
var Directions = [NumDirections]Direction{North, East, South, West, Up, Down}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts a direction name or its first letter.
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(s)
	for _, d := range Directions {
		if n := d.String(); s == n || s == n[:1] {
			return d, true
		}
	}
	return 0, false
}

// Exit returns the 0-based index of the room reached by going d, or false
// when there is no exit that way.
func (r *Room) Exit(d Direction) (int, bool) {
	if d < 0 || d >= NumDirections || r.Exits[d] == 0 {
		return 0, false
	}
	return int(r.Exits[d]) - 1, true
}

// Neighbor returns the room reached from room i by going d. It returns nil
// and no error when there is no exit that way.
func (rs Rooms) Neighbor(i int, d Direction) (*Room, error) {
	if i < 0 || i >= len(rs) {
		return nil, errs.Bounds("rms.Neighbor", "room %d outside %d rooms", i, len(rs))
	}
	j, ok := rs[i].Exit(d)
	if !ok {
		return nil, nil
	}
	if j >= len(rs) {
		return nil, errs.Bounds("rms.Neighbor", "room %d %s leads to room %d of %d", i, d, j+1, len(rs))
	}
	return rs[j], nil
}

// Validate checks that every exit leads to a room in rs. All bad exits are
// listed in the returned error.
func (rs Rooms) Validate() error {
	var bad []string
	for i, r := range rs {
		for _, d := range Directions {
			if j, ok := r.Exit(d); ok && j >= len(rs) {
				glog.Warningf("rms: room %d (%q) %s leads to missing room %d", i, r.Name, d, j+1)
				bad = append(bad, fmt.Sprintf("room %d %s -> %d", i, d, j+1))
			}
		}
	}
	if len(bad) > 0 {
		return errs.Bounds("rms.Validate", "%d exits outside %d rooms: %s", len(bad), len(rs), strings.Join(bad, "; "))
	}
	return nil
}
