package bridge

import (
	"github.com/briarhart/trellis/engine/core"
	"github.com/briarhart/trellis/gui"
)

// guiKey converts a host key to a GUI key if the GUI has an equivalent.
// The GUI event model does not care about every keyboard key, so this is a
// partial mapping; unmapped keys report ok=false and produce no event.
func guiKey(k core.Key) (gui.Key, bool) {
	switch {
	case k >= core.KeyA && k <= core.KeyZ:
		return gui.KeyA + gui.Key(k-core.KeyA), true
	case k >= core.KeyNum0 && k <= core.KeyNum9:
		return gui.KeyNum0 + gui.Key(k-core.KeyNum0), true
	case k >= core.KeyNumPad0 && k <= core.KeyNumPad9:
		return gui.KeyNum0 + gui.Key(k-core.KeyNumPad0), true
	}
	switch k {
	case core.KeyNumPadEnter:
		return gui.KeyEnter, true
	case core.KeyUp:
		return gui.KeyArrowUp, true
	case core.KeyDown:
		return gui.KeyArrowDown, true
	case core.KeyLeft:
		return gui.KeyArrowLeft, true
	case core.KeyRight:
		return gui.KeyArrowRight, true
	case core.KeyBackspace:
		return gui.KeyBackspace, true
	case core.KeyDelete:
		return gui.KeyDelete, true
	case core.KeyEnd:
		return gui.KeyEnd, true
	case core.KeyEnter:
		return gui.KeyEnter, true
	case core.KeyEscape:
		return gui.KeyEscape, true
	case core.KeyHome:
		return gui.KeyHome, true
	case core.KeyInsert:
		return gui.KeyInsert, true
	case core.KeyPageDown:
		return gui.KeyPageDown, true
	case core.KeyPageUp:
		return gui.KeyPageUp, true
	case core.KeySpace:
		return gui.KeySpace, true
	case core.KeyTab:
		return gui.KeyTab, true
	default:
		return 0, false
	}
}

// guiPointerButton converts a host mouse button to a GUI pointer button.
// The GUI only understands left, middle, and right.
func guiPointerButton(b core.MouseButton) (gui.PointerButton, bool) {
	switch b {
	case core.MouseButtonLeft:
		return gui.PointerPrimary, true
	case core.MouseButtonRight:
		return gui.PointerSecondary, true
	case core.MouseButtonMiddle:
		return gui.PointerMiddle, true
	default:
		return 0, false
	}
}
