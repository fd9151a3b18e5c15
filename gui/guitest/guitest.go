// Package guitest provides a scripted gui.Context for exercising the bridge
// without a real GUI library: it records every RawInput it is fed and plays
// back canned frame outputs and capture flags.
package guitest

import "github.com/briarhart/trellis/gui"

// Context implements gui.Context. The zero value is usable; fields may be
// mutated between frames to script a scenario.
type Context struct {
	// WantsKeyboard and UsingPointer are returned verbatim by the
	// consumption queries.
	WantsKeyboard bool
	UsingPointer  bool

	// Atlas is returned by FontImage. Swap the pointer to simulate the GUI
	// regenerating its atlas.
	Atlas *gui.FontImage

	// Frames records the raw input of every BeginFrame, in order.
	Frames []gui.RawInput

	// Outputs is consumed front-to-back by EndFrame; once exhausted,
	// EndFrame returns zero Outputs.
	Outputs []gui.Output

	ends int
}

// New returns a context with a tiny 2x2 atlas already "generated".
func New() *Context {
	return &Context{
		Atlas: &gui.FontImage{Width: 2, Height: 2, Pixels: []byte{0, 128, 192, 255}},
	}
}

func (c *Context) BeginFrame(in gui.RawInput) { c.Frames = append(c.Frames, in) }

func (c *Context) EndFrame() gui.Output {
	c.ends++
	if len(c.Outputs) == 0 {
		return gui.Output{}
	}
	out := c.Outputs[0]
	c.Outputs = c.Outputs[1:]
	return out
}

func (c *Context) FontImage() *gui.FontImage { return c.Atlas }
func (c *Context) WantsKeyboardInput() bool  { return c.WantsKeyboard }
func (c *Context) IsUsingPointer() bool      { return c.UsingPointer }

// EndCount reports how many frames have been ended.
func (c *Context) EndCount() int { return c.ends }

// LastFrame returns the most recently begun frame's raw input.
func (c *Context) LastFrame() gui.RawInput {
	if len(c.Frames) == 0 {
		return gui.RawInput{}
	}
	return c.Frames[len(c.Frames)-1]
}
