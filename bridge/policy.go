package bridge

import (
	"github.com/briarhart/trellis/engine/core"
	"github.com/briarhart/trellis/gui"
)

// ShouldSuppress reports whether the GUI consumed a host event this tick, in
// which case it must not be forwarded to game logic. The verdict is only
// meaningful after the tick's EndFrame: the GUI cannot know whether it wants
// an event until its layout pass has run.
//
// Keyboard events belong to the GUI while it wants keyboard focus; pointer
// button, move, and scroll events belong to it while it is using the
// pointer. Everything else (text input, window events) always passes
// through.
func ShouldSuppress(ctx gui.Context, ev core.Event) bool {
	switch ev.(type) {
	case core.EventKeyPressed, core.EventKeyReleased:
		return ctx.WantsKeyboardInput()
	case core.EventMouseButtonPressed, core.EventMouseButtonReleased,
		core.EventMouseMoved, core.EventMouseWheel:
		return ctx.IsUsingPointer()
	default:
		return false
	}
}
