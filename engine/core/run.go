package core

import (
	"log"
	"runtime"
	"time"
)

// Backend supplies the platform pieces Run wires together.
type Backend struct {
	NewWindow   func(Config) (Window, error)
	NewRenderer func(Window, Config) (Renderer, error)
	Opener      URLOpener
}

// Run wires the platform window + renderer and executes the main loop until
// the window closes or an App hook fails.
func Run(app App, cfg Config, b Backend) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := b.NewWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := b.NewRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Opener:   b.Opener,
		start:    time.Now(),
	}
	if cb, ok := win.(Clipboard); ok {
		eng.Clipboard = cb
	}

	// Event hooks can fail mid-poll; capture the first failure and stop.
	var evErr error
	win.SetEventCallback(func(ev Event) {
		if evErr != nil {
			return
		}
		eng.Input.Handle(ev)
		if err := app.OnEvent(eng, ev); err != nil {
			evErr = err
			return
		}
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	if err := app.OnStart(eng); err != nil {
		return err
	}

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()
		if evErr != nil {
			return evErr
		}

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			if err := app.OnUpdate(eng, float64(tick)/float64(time.Second)); err != nil {
				return err
			}
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		// Render
		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		if err := app.OnRender(eng, alpha); err != nil {
			return err
		}

		// Present
		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	log.Println("Engine exit")
	return nil
}
