package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeymap(t *testing.T) {
	lanes := map[KeyCode]int{KeyA: 0, KeyS: 1, KeyD: 2, KeyF: 3, KeyG: 4}
	for code, expected := range lanes {
		lane, ok := DefaultKeymap.Lane(code)
		assert.True(t, ok, code)
		assert.Equal(t, expected, lane, code)
	}

	for _, code := range []KeyCode{0, -1, 2, 32, 215} {
		lane, ok := DefaultKeymap.Lane(code)
		assert.False(t, ok, code)
		assert.Equal(t, -1, lane, code)
	}
}

func TestKeymapUnassignedLane(t *testing.T) {
	k := Keymap{KeyA, 0, KeyD}
	_, ok := k.Lane(0)
	assert.False(t, ok)

	lane, ok := k.Lane(KeyD)
	assert.True(t, ok)
	assert.Equal(t, 2, lane)
}
