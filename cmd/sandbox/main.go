package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/briarhart/trellis/bridge"
	"github.com/briarhart/trellis/engine/core"
	glbackend "github.com/briarhart/trellis/engine/gfx/gl"
	"github.com/briarhart/trellis/engine/platform"
	"github.com/briarhart/trellis/gui"
	"github.com/briarhart/trellis/gui/guitest"
)

// Game is the sandbox state: a bouncy ball layer driven through the bridge.
// The GUI side here is a scripted guitest context; swap in any gui.Context
// implementation to get a real interface on top of the ball.
type Game struct {
	layers core.LayerStack
}

func (g *Game) Start(e *core.Engine) error {
	ball := &BallLayer{X: 100, Y: 100, VX: 180, VY: 140, Size: 32}
	ball.OnAttach(e)
	g.layers.Push(ball)
	return nil
}

func (g *Game) UI(e *core.Engine, ctx gui.Context) error {
	// Widgets would be constructed here against the real GUI library.
	return nil
}

func (g *Game) Update(e *core.Engine, ctx gui.Context, dt float64) error {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
	return g.layers.Update(e, dt)
}

func (g *Game) Draw(e *core.Engine, ctx gui.Context, alpha float64) error {
	return g.layers.Render(e, alpha)
}

func (g *Game) Event(e *core.Engine, ctx gui.Context, ev core.Event) error {
	return g.layers.Dispatch(e, ev)
}

func (g *Game) Shutdown(e *core.Engine) {
	for {
		l, ok := g.layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(e)
	}
}

func main() {
	cfg, err := core.LoadConfig("sandbox.toml")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}
	cfg.Title = "trellis sandbox"

	app := bridge.NewStateWrapper(&Game{}, guitest.New())
	err = core.Run(app, cfg, core.Backend{
		NewWindow: func(cfg core.Config) (core.Window, error) {
			return platform.NewGLFWWindow(cfg)
		},
		NewRenderer: func(win core.Window, cfg core.Config) (core.Renderer, error) {
			return glbackend.NewRendererGL(win, cfg)
		},
		Opener: platform.NewOpener(),
	})
	if err != nil {
		log.Fatal(err)
	}
}
