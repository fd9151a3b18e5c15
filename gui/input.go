package gui

import "golang.org/x/image/math/f32"

// Vec2 is a 2D point or delta in screen coordinates.
type Vec2 = f32.Vec2

// Rect is an axis-aligned rectangle with float coordinates.
type Rect struct {
	Min Vec2
	Max Vec2
}

func (r Rect) Width() float32  { return r.Max[0] - r.Min[0] }
func (r Rect) Height() float32 { return r.Max[1] - r.Min[1] }

// Modifiers is the set of currently held modifier keys. It persists across
// frames: physical keys can stay held across frame boundaries, so it is
// mutated incrementally by key events and never reset wholesale.
type Modifiers struct {
	Ctrl    bool
	Shift   bool
	Alt     bool
	Command bool
}

// RawInput accumulates semantic input for the next GUI frame. It has a
// single owner and is taken exactly once per frame.
type RawInput struct {
	// ScreenRect is the current viewport in points.
	ScreenRect Rect

	// PredictedDT is the expected frame duration in seconds.
	PredictedDT float32

	// Modifiers is the modifier state as of the latest translated event.
	Modifiers Modifiers

	// Events are the semantic events queued since the last Take, oldest
	// first.
	Events []Event
}

// Push appends an event to the accumulator.
func (r *RawInput) Push(ev Event) { r.Events = append(r.Events, ev) }

// Take returns the accumulated input and resets the per-frame parts.
// Modifiers and ScreenRect carry over; Events and PredictedDT do not.
// Events appended between two consecutive Takes belong to exactly one frame.
func (r *RawInput) Take() RawInput {
	taken := *r
	r.Events = nil
	r.PredictedDT = 0
	return taken
}

// Event is a semantic GUI input event.
type Event interface{ isEvent() }

// KeyEvent is a key press or release of a key the GUI cares about.
type KeyEvent struct {
	Key       Key
	Pressed   bool
	Modifiers Modifiers
}

func (KeyEvent) isEvent() {}

// PointerButtonEvent is a pointer button press or release at a position.
type PointerButtonEvent struct {
	Pos       Vec2
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

func (PointerButtonEvent) isEvent() {}

// PointerMovedEvent reports the pointer's new position.
type PointerMovedEvent struct{ Pos Vec2 }

func (PointerMovedEvent) isEvent() {}

// ScrollEvent is a linear scroll, already scaled to points.
type ScrollEvent struct{ Delta Vec2 }

func (ScrollEvent) isEvent() {}

// ZoomEvent is an exponential zoom factor (1.0 means no change).
type ZoomEvent struct{ Factor float32 }

func (ZoomEvent) isEvent() {}

// TextEvent is committed text input (including pasted clipboard text).
type TextEvent struct{ Text string }

func (TextEvent) isEvent() {}

// CopyEvent asks the GUI to copy its current selection.
type CopyEvent struct{}

func (CopyEvent) isEvent() {}

// CutEvent asks the GUI to cut its current selection.
type CutEvent struct{}

func (CutEvent) isEvent() {}

// Key identifies the keys the GUI event model understands. GUI libraries do
// not care about every keyboard key, so this listing is intentionally
// smaller than a host framework's.
type Key int

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEscape
	KeyHome
	KeyInsert
	KeyPageDown
	KeyPageUp
	KeySpace
	KeyTab
)

// PointerButton identifies the pointer buttons the GUI understands.
type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
)
