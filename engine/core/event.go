package core

// Event model (can expand over time).
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventFocusGained struct{}

func (EventFocusGained) isEvent() {}

type EventFocusLost struct{}

func (EventFocusLost) isEvent() {}

type EventKeyPressed struct{ Key Key }

func (EventKeyPressed) isEvent() {}

type EventKeyReleased struct{ Key Key }

func (EventKeyReleased) isEvent() {}

type EventMouseButtonPressed struct{ Button MouseButton }

func (EventMouseButtonPressed) isEvent() {}

type EventMouseButtonReleased struct{ Button MouseButton }

func (EventMouseButtonReleased) isEvent() {}

// EventMouseMoved carries the new cursor position in window coordinates.
type EventMouseMoved struct{ X, Y float64 }

func (EventMouseMoved) isEvent() {}

// EventMouseWheel carries scroll offsets in ticks (positive Y is up).
type EventMouseWheel struct{ X, Y float64 }

func (EventMouseWheel) isEvent() {}

// EventTextInput carries committed text from the OS input method.
type EventTextInput struct{ Text string }

func (EventTextInput) isEvent() {}

// Key enumerates physical keyboard keys.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
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
	KeyNumPad0
	KeyNumPad1
	KeyNumPad2
	KeyNumPad3
	KeyNumPad4
	KeyNumPad5
	KeyNumPad6
	KeyNumPad7
	KeyNumPad8
	KeyNumPad9
	KeyNumPadEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
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
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftShift
	KeyRightShift
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// MouseButton enumerates pointer buttons.
type MouseButton int

const (
	MouseButtonUnknown MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonX1
	MouseButtonX2
)

// Mod is a modifier bitmask as reported by the platform layer.
type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
