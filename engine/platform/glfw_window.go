package platform

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/briarhart/trellis/engine/core"
)

// GLFWWindow implements core.Window and core.Clipboard, pushing events to
// the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// Must be called on main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, err
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			gw.emit(core.EventFocusGained{})
		} else {
			gw.emit(core.EventFocusLost{})
		}
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMoved{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b := translateMouseButton(button)
		if b == core.MouseButtonUnknown {
			return
		}
		if action == glfw.Release {
			gw.emit(core.EventMouseButtonReleased{Button: b})
		} else {
			gw.emit(core.EventMouseButtonPressed{Button: b})
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown || action == glfw.Repeat {
			return
		}
		if action == glfw.Release {
			gw.emit(core.EventKeyReleased{Key: k})
		} else {
			gw.emit(core.EventKeyPressed{Key: k})
		}
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(core.EventTextInput{Text: string(r)})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventMouseWheel{X: xoff, Y: yoff})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// core.Clipboard impl (GLFW owns the native clipboard connection).
func (g *GLFWWindow) GetText() (string, error) { return g.w.GetClipboardString(), nil }
func (g *GLFWWindow) SetText(text string) error {
	g.w.SetClipboardString(text)
	return nil
}

func translateKey(k glfw.Key) core.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return core.KeyA + core.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return core.KeyNum0 + core.Key(k-glfw.Key0)
	case k >= glfw.KeyKP0 && k <= glfw.KeyKP9:
		return core.KeyNumPad0 + core.Key(k-glfw.KeyKP0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return core.KeyF1 + core.Key(k-glfw.KeyF1)
	}
	switch k {
	case glfw.KeyKPEnter:
		return core.KeyNumPadEnter
	case glfw.KeyUp:
		return core.KeyUp
	case glfw.KeyDown:
		return core.KeyDown
	case glfw.KeyLeft:
		return core.KeyLeft
	case glfw.KeyRight:
		return core.KeyRight
	case glfw.KeyBackspace:
		return core.KeyBackspace
	case glfw.KeyDelete:
		return core.KeyDelete
	case glfw.KeyEnd:
		return core.KeyEnd
	case glfw.KeyEnter:
		return core.KeyEnter
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeyHome:
		return core.KeyHome
	case glfw.KeyInsert:
		return core.KeyInsert
	case glfw.KeyPageDown:
		return core.KeyPageDown
	case glfw.KeyPageUp:
		return core.KeyPageUp
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyTab:
		return core.KeyTab
	case glfw.KeyLeftControl:
		return core.KeyLeftCtrl
	case glfw.KeyRightControl:
		return core.KeyRightCtrl
	case glfw.KeyLeftShift:
		return core.KeyLeftShift
	case glfw.KeyRightShift:
		return core.KeyRightShift
	case glfw.KeyLeftAlt:
		return core.KeyLeftAlt
	case glfw.KeyRightAlt:
		return core.KeyRightAlt
	case glfw.KeyLeftSuper:
		return core.KeyLeftSuper
	case glfw.KeyRightSuper:
		return core.KeyRightSuper
	default:
		return core.KeyUnknown
	}
}

func translateMouseButton(b glfw.MouseButton) core.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseButtonLeft
	case glfw.MouseButtonRight:
		return core.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return core.MouseButtonMiddle
	case glfw.MouseButton4:
		return core.MouseButtonX1
	case glfw.MouseButton5:
		return core.MouseButtonX2
	default:
		return core.MouseButtonUnknown
	}
}
