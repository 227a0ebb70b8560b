package rms

import "fmt"

// ObjectType classifies an object grid cell.
type ObjectType int

const (
	ObjectNone ObjectType = iota
	// ObjectMonster cells mark where the room's monster may appear.
	ObjectMonster
	ObjectThing
)

func (t ObjectType) String() string {
	switch t {
	case ObjectNone:
		return "ObjectType(None)"
	case ObjectMonster:
		return "ObjectType(Monster)"
	case ObjectThing:
		return "ObjectType(Thing)"
	}
	return fmt.Sprintf("ObjectType(%d)", int(t))
}

// MonsterSlotMax is the highest object code that marks a monster slot.
const MonsterSlotMax = 'c'

// ClassifyObject classifies a raw object code.
func ClassifyObject(code uint8) ObjectType {
	switch {
	case code == 0:
		return ObjectNone
	case code <= MonsterSlotMax:
		return ObjectMonster
	}
	return ObjectThing
}

// ObjectStatus says how an object code resolved to a sprite.
type ObjectStatus int

const (
	StatusNone ObjectStatus = iota
	StatusMonsterSlot
	StatusResolved
	// StatusUnimplemented codes are known objects with no sprite assigned.
	StatusUnimplemented
	// StatusUnknown codes are outside the object table.
	StatusUnknown
)

func (s ObjectStatus) String() string {
	switch s {
	case StatusNone:
		return "ObjectStatus(None)"
	case StatusMonsterSlot:
		return "ObjectStatus(MonsterSlot)"
	case StatusResolved:
		return "ObjectStatus(Resolved)"
	case StatusUnimplemented:
		return "ObjectStatus(Unimplemented)"
	case StatusUnknown:
		return "ObjectStatus(Unknown)"
	}
	return fmt.Sprintf("ObjectStatus(%d)", int(s))
}

// ObjectRef is an object code together with what it resolves to. Sprite is
// a 1-based tile sheet index and is only meaningful when Status is
// StatusResolved.
type ObjectRef struct {
	Code   uint8
	Sprite uint8
	Status ObjectStatus
}

type objectInfo struct {
	sprite uint8
	name   string
}

var objects = map[uint8]objectInfo{
	'd': {47, "Magical darkness"},
	'e': {21, "Treasure chest"},
	'f': {46, "Smoke"},
	'g': {29, "Movable block"},
	'h': {37, "Door (vertical)"},
	'i': {36, "Door (horizontal)"},
	'j': {0, "Funny looking chest"},
	'k': {0, "Soft section of wall"},
	'l': {42, "Soft piece of wall"},
	'm': {18, "Soft pile of rubble"},
	'n': {22, "Old body"},
	'o': {17, "Old bones"},
	'p': {49, "Old stone coffin"},
	'q': {54, "Old grave"},
	'r': {0, "Movable glass block"},
	's': {0, "Old skeleton"},
	't': {0, "Old skeleton"},
	'u': {0, "Hollow obelisk"},
	'v': {82, "Just some blood"},
	'w': {0, "Stone marker"},
}

// ResolveObject maps a raw object code to its sprite.
func ResolveObject(code uint8) ObjectRef {
	ref := ObjectRef{Code: code}
	switch ClassifyObject(code) {
	case ObjectNone:
		ref.Status = StatusNone
	case ObjectMonster:
		ref.Status = StatusMonsterSlot
	default:
		info, ok := objects[code]
		switch {
		case !ok:
			ref.Status = StatusUnknown
		case info.sprite == 0:
			ref.Status = StatusUnimplemented
		default:
			ref.Status = StatusResolved
			ref.Sprite = info.sprite
		}
	}
	return ref
}

// ObjectName returns the in-game description of an object code, or "" for
// codes that are not objects.
func ObjectName(code uint8) string {
	return objects[code].name
}

// ObjectType classifies the object at (x,y).
func (r *Room) ObjectType(x, y int) (ObjectType, error) {
	code, err := r.RawObject(x, y)
	if err != nil {
		return ObjectNone, err
	}
	return ClassifyObject(code), nil
}

// Object returns the 1-based tile sheet sprite of the object at (x,y), or 0.
//
// 0 covers empty cells, monster slots and objects that have no sprite. Use
// ObjectSprite to tell those apart.
func (r *Room) Object(x, y int) (uint8, error) {
	code, err := r.RawObject(x, y)
	if err != nil {
		return 0, err
	}
	return objects[code].sprite, nil
}

// ObjectSprite resolves the object at (x,y).
func (r *Room) ObjectSprite(x, y int) (ObjectRef, error) {
	code, err := r.RawObject(x, y)
	if err != nil {
		return ObjectRef{}, err
	}
	return ResolveObject(code), nil
}
