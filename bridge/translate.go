package bridge

import (
	"errors"
	"math"

	"github.com/briarhart/trellis/engine/core"
	"github.com/briarhart/trellis/gui"
)

const (
	// scrollSensitivity converts wheel ticks to scroll points.
	scrollSensitivity = 48.0
	// zoomSensitivity is the scale factor applied per wheel tick while the
	// zoom modifier (ctrl) is held.
	zoomSensitivity = 1.25
)

var (
	errNoClipboard = errors.New("no clipboard available")
	errNoOpener    = errors.New("no URL opener available")
)

// Translator converts host input events into GUI raw-input events and keeps
// the running modifier state. Modifier state persists across frames: keys
// can stay physically held across frame boundaries.
type Translator struct {
	mods gui.Modifiers
}

// Modifiers returns the currently tracked modifier state.
func (t *Translator) Modifiers() gui.Modifiers { return t.mods }

// Translate appends the GUI events for one host event to raw. Pointer
// button events take the current cursor position from e.Input rather than
// the event itself. Ctrl+V reads the host clipboard synchronously and fails
// with a ClipboardError if it is unavailable.
func (t *Translator) Translate(e *core.Engine, ev core.Event, raw *gui.RawInput) error {
	switch ev := ev.(type) {
	case core.EventKeyPressed:
		// A modifier key's own contribution lands before its key event is
		// translated, so downstream sees the post-press modifier state.
		t.applyModifier(ev.Key, true)
		raw.Modifiers = t.mods

		if t.mods.Ctrl {
			switch ev.Key {
			case core.KeyC:
				raw.Push(gui.CopyEvent{})
			case core.KeyX:
				raw.Push(gui.CutEvent{})
			case core.KeyV:
				if e.Clipboard == nil {
					return &ClipboardError{Err: errNoClipboard}
				}
				text, err := e.Clipboard.GetText()
				if err != nil {
					return &ClipboardError{Err: err}
				}
				raw.Push(gui.TextEvent{Text: text})
			}
		}

		if k, ok := guiKey(ev.Key); ok {
			raw.Push(gui.KeyEvent{Key: k, Pressed: true, Modifiers: t.mods})
		}

	case core.EventKeyReleased:
		t.applyModifier(ev.Key, false)
		raw.Modifiers = t.mods
		if k, ok := guiKey(ev.Key); ok {
			raw.Push(gui.KeyEvent{Key: k, Pressed: false, Modifiers: t.mods})
		}

	case core.EventMouseButtonPressed:
		if b, ok := guiPointerButton(ev.Button); ok {
			raw.Push(gui.PointerButtonEvent{
				Pos:       cursorPos(e),
				Button:    b,
				Pressed:   true,
				Modifiers: t.mods,
			})
		}

	case core.EventMouseButtonReleased:
		if b, ok := guiPointerButton(ev.Button); ok {
			raw.Push(gui.PointerButtonEvent{
				Pos:       cursorPos(e),
				Button:    b,
				Pressed:   false,
				Modifiers: t.mods,
			})
		}

	case core.EventMouseMoved:
		raw.Push(gui.PointerMovedEvent{Pos: gui.Vec2{float32(ev.X), float32(ev.Y)}})

	case core.EventMouseWheel:
		// Zoom and scroll are mutually exclusive per event.
		if t.mods.Ctrl {
			raw.Push(gui.ZoomEvent{Factor: float32(math.Pow(zoomSensitivity, ev.Y))})
		} else {
			raw.Push(gui.ScrollEvent{Delta: gui.Vec2{
				float32(ev.X) * scrollSensitivity,
				float32(ev.Y) * scrollSensitivity,
			}})
		}

	case core.EventTextInput:
		raw.Push(gui.TextEvent{Text: ev.Text})
	}
	return nil
}

func (t *Translator) applyModifier(k core.Key, down bool) {
	switch k {
	case core.KeyLeftCtrl, core.KeyRightCtrl:
		t.mods.Ctrl = down
		t.mods.Command = down
	case core.KeyLeftShift, core.KeyRightShift:
		t.mods.Shift = down
	case core.KeyLeftAlt, core.KeyRightAlt:
		t.mods.Alt = down
	}
}

func cursorPos(e *core.Engine) gui.Vec2 {
	x, y := e.Input.Mouse()
	return gui.Vec2{float32(x), float32(y)}
}
