package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputEdgeDetection(t *testing.T) {
	in := &Input{}

	in.Set(KeyP, true)
	assert.True(t, in.Pressed[KeyP])
	assert.True(t, in.JustPressed[KeyP])
	assert.False(t, in.JustReleased[KeyP])

	// holding: pressed stays, the edge flag drops
	in.Set(KeyP, true)
	assert.True(t, in.Pressed[KeyP])
	assert.False(t, in.JustPressed[KeyP])

	in.Set(KeyP, false)
	assert.False(t, in.Pressed[KeyP])
	assert.True(t, in.JustReleased[KeyP])

	in.Set(KeyP, false)
	assert.False(t, in.JustReleased[KeyP])
}

func TestInputKeysIndependent(t *testing.T) {
	in := &Input{}

	in.Set(KeyW, true)
	in.Set(KeyO, true)

	assert.True(t, in.Pressed[KeyW])
	assert.True(t, in.Pressed[KeyO])
	assert.False(t, in.Pressed[KeyP])
	assert.False(t, in.JustPressed[KeyEscape])
}
