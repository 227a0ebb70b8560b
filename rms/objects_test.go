package rms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badc0de.net/pkg/go-dungeon/ttesting"
)

func TestClassifyObject(t *testing.T) {
	for v := 0; v < 256; v++ {
		got := ClassifyObject(uint8(v))
		switch {
		case v == 0:
			assert.Equal(t, ObjectNone, got, "code %d", v)
		case v <= 'c':
			assert.Equal(t, ObjectMonster, got, "code %d", v)
		default:
			assert.Equal(t, ObjectThing, got, "code %d", v)
		}
	}
}

func TestRoomObjects(t *testing.T) {
	r, err := DecodeRoom(testRecord(1, ""))
	require.NoError(t, err)

	for _, tc := range []struct {
		name   string
		x, y   int
		typ    ObjectType
		sprite uint8
		status ObjectStatus
	}{
		{"empty", 0, 0, ObjectNone, 0, StatusNone},
		{"slot a", 3, 0, ObjectMonster, 0, StatusMonsterSlot},
		{"slot c", 4, 0, ObjectMonster, 0, StatusMonsterSlot},
		{"darkness", 5, 0, ObjectThing, 47, StatusResolved},
		{"funny chest", 6, 0, ObjectThing, 0, StatusUnimplemented},
		{"blood", 19, 7, ObjectThing, 82, StatusResolved},
	} {
		typ, err := r.ObjectType(tc.x, tc.y)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.typ, typ, tc.name)

		sprite, err := r.Object(tc.x, tc.y)
		require.NoError(t, err, tc.name)
		ttesting.AssertEqualUint8(t, tc.name, sprite, tc.sprite)

		ref, err := r.ObjectSprite(tc.x, tc.y)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.status, ref.Status, tc.name)
		assert.Equal(t, tc.sprite, ref.Sprite, tc.name)
	}
}

func TestObjectTable(t *testing.T) {
	want := map[uint8]uint8{
		'd': 47, 'e': 21, 'f': 46, 'g': 29, 'h': 37, 'i': 36, 'j': 0,
		'k': 0, 'l': 42, 'm': 18, 'n': 22, 'o': 17, 'p': 49, 'q': 54,
		'r': 0, 's': 0, 't': 0, 'u': 0, 'v': 82, 'w': 0,
	}
	for code, sprite := range want {
		ref := ResolveObject(code)
		assert.Equal(t, sprite, ref.Sprite, "code %c", code)
		if sprite == 0 {
			assert.Equal(t, StatusUnimplemented, ref.Status, "code %c", code)
		} else {
			assert.Equal(t, StatusResolved, ref.Status, "code %c", code)
		}
		assert.NotEmpty(t, ObjectName(code), "code %c", code)
	}

	ref := ResolveObject('x')
	assert.Equal(t, StatusUnknown, ref.Status)
	assert.Equal(t, uint8(0), ref.Sprite)
	assert.Equal(t, "", ObjectName('x'))
	assert.Equal(t, "Hollow obelisk", ObjectName('u'))
}

func TestSetObject(t *testing.T) {
	r := &Room{}
	require.NoError(t, r.SetObject(2, 2, 'e'))
	sprite, err := r.Object(2, 2)
	require.NoError(t, err)
	ttesting.AssertEqualUint8(t, "chest", sprite, 21)
}
