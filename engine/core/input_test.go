package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputTracksKeysAndMouse(t *testing.T) {
	in := NewInput()
	in.Handle(EventKeyPressed{Key: KeyW})
	in.Handle(EventMouseMoved{X: 12, Y: 34})

	assert.True(t, in.IsKeyDown(KeyW))
	assert.False(t, in.IsKeyDown(KeyA))
	x, y := in.Mouse()
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 34.0, y)

	in.Handle(EventKeyReleased{Key: KeyW})
	assert.False(t, in.IsKeyDown(KeyW))
}

func TestInputClearsKeysOnFocusLoss(t *testing.T) {
	in := NewInput()
	in.Handle(EventKeyPressed{Key: KeyLeftCtrl})
	in.Handle(EventKeyPressed{Key: KeyC})
	in.Handle(EventFocusLost{})

	assert.False(t, in.IsKeyDown(KeyLeftCtrl))
	assert.False(t, in.IsKeyDown(KeyC))
}
