package core

import "time"

// App defines the game/application hooks. Each per-tick hook may fail; a
// non-nil error aborts the run loop and is returned to the caller, which
// decides whether the failure is fatal to the process.
type App interface {
	OnStart(e *Engine) error                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64) error    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) error // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event) error       // input/window events
	OnShutdown(e *Engine)                    // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window    Window
	Renderer  Renderer
	Input     *Input
	Clipboard Clipboard
	Opener    URLOpener
	start     time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Clipboard is synchronous access to the platform clipboard.
type Clipboard interface {
	GetText() (string, error)
	SetText(text string) error
}

// URLOpener opens a URL or file path with the OS default handler. Open
// blocks until the opener process exits and reports a non-zero exit status
// as an error.
type URLOpener interface {
	Open(url string) error
}
