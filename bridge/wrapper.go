package bridge

import (
	"time"

	"github.com/briarhart/trellis/engine/core"
	"github.com/briarhart/trellis/gui"
)

// Frame phases. One Begin/End cycle runs per logic tick; DrawFrame may lag
// behind when several ticks run between renders, so BeginFrame accepts both
// the idle and the frame-ended phase.
const (
	phaseIdle = iota
	phaseFrameBegun
	phaseFrameEnded
)

// Wrapper owns a GUI context and sequences its frame lifecycle against the
// host loop: accumulate raw input continuously, replay it into the GUI at
// BeginFrame, tessellate and run side effects at EndFrame, blit the stored
// batches at DrawFrame.
//
// Wrapper is not safe for concurrent use; everything runs on the host's
// update/render thread.
type Wrapper struct {
	ctx        gui.Context
	translator Translator
	raw        gui.RawInput

	atlas    core.Texture
	atlasImg *gui.FontImage // generation marker, compared by identity

	lastFrame time.Time
	batches   []meshBatch
	stats     Statistics
	phase     int
}

// NewWrapper wraps a GUI context. The wrapper takes exclusive ownership:
// the context must not be driven by anyone else.
func NewWrapper(ctx gui.Context) *Wrapper {
	return &Wrapper{ctx: ctx, lastFrame: time.Now()}
}

// Ctx returns the wrapped GUI context for use inside callbacks.
func (w *Wrapper) Ctx() gui.Context { return w.ctx }

// Stats returns the batch statistics of the latest finished frame.
func (w *Wrapper) Stats() Statistics { return w.stats }

// Event translates a host event into the raw-input accumulator. Call it for
// every host event as it arrives; the GUI sees the whole batch at the next
// BeginFrame.
func (w *Wrapper) Event(e *core.Engine, ev core.Event) error {
	return w.translator.Translate(e, ev, &w.raw)
}

// BeginFrame starts a GUI frame: it stamps the predicted delta time and
// screen rectangle, takes the accumulated raw input (exactly once, so every
// event lands in exactly one frame), hands it to the GUI context, and makes
// sure the current font atlas is uploaded. The GUI-construction callback
// must run between BeginFrame and EndFrame.
func (w *Wrapper) BeginFrame(e *core.Engine) error {
	if w.phase == phaseFrameBegun {
		panic("bridge: BeginFrame called again without EndFrame")
	}

	now := time.Now()
	fw, fh := e.Window.FramebufferSize()
	w.raw.ScreenRect = gui.Rect{Max: gui.Vec2{float32(fw), float32(fh)}}
	w.raw.PredictedDT = float32(now.Sub(w.lastFrame).Seconds())
	w.lastFrame = now

	w.ctx.BeginFrame(w.raw.Take())
	w.phase = phaseFrameBegun

	return w.ensureAtlas(e)
}

// ensureAtlas uploads the font atlas if none exists yet or the GUI has
// regenerated it since the last upload. Generations are compared by
// identity, never by pixels, so an unchanged atlas costs nothing.
func (w *Wrapper) ensureAtlas(e *core.Engine) error {
	img := w.ctx.FontImage()
	if img == nil || img == w.atlasImg {
		// no atlas yet is a valid transient state on the first frame
		return nil
	}
	tex, err := fontImageToTexture(e.Renderer, img)
	if err != nil {
		return err
	}
	if w.atlas != nil {
		w.atlas.Release()
	}
	w.atlas = tex
	w.atlasImg = img
	return nil
}

// EndFrame finalizes the GUI's layout pass, replaces the stored mesh batches
// wholesale with this frame's output, and performs the frame's clipboard and
// URL side effects. After EndFrame the context's consumption flags
// (WantsKeyboardInput, IsUsingPointer) are valid for this tick.
func (w *Wrapper) EndFrame(e *core.Engine) error {
	if w.phase != phaseFrameBegun {
		panic("bridge: EndFrame called without BeginFrame")
	}
	w.phase = phaseFrameEnded

	out := w.ctx.EndFrame()

	releaseBatches(w.batches)
	w.batches, w.stats = nil, Statistics{}
	if w.atlas != nil {
		batches, stats, err := buildBatches(e.Renderer, out.Meshes, w.atlas)
		if err != nil {
			return err
		}
		w.batches, w.stats = batches, stats
	}

	// open URLs that were clicked
	if out.OpenURL != "" {
		if e.Opener == nil {
			return &URLOpenError{URL: out.OpenURL, Err: errNoOpener}
		}
		if err := e.Opener.Open(out.OpenURL); err != nil {
			return &URLOpenError{URL: out.OpenURL, Err: err}
		}
	}

	// copy text to clipboard
	if out.CopiedText != "" {
		if e.Clipboard == nil {
			return &ClipboardError{Err: errNoClipboard}
		}
		if err := e.Clipboard.SetText(out.CopiedText); err != nil {
			return &ClipboardError{Err: err}
		}
	}

	return nil
}

// DrawFrame blits the latest finished frame's batches, in the order EndFrame
// produced them, each under its own scissor rectangle and with premultiplied
// alpha blending. Scissor and blend state are restored afterward. Call it
// after the game's own drawing so the GUI lands on top.
func (w *Wrapper) DrawFrame(e *core.Engine) {
	if w.phase == phaseFrameBegun {
		panic("bridge: DrawFrame called between BeginFrame and EndFrame")
	}
	w.phase = phaseIdle

	r := e.Renderer
	r.SetBlendMode(core.BlendPremultiplied)
	for _, b := range w.batches {
		r.SetScissor(b.clip.X, b.clip.Y, b.clip.W, b.clip.H)
		r.DrawMesh(b.mesh)
	}
	r.ResetScissor()
	r.ResetBlendMode()
}

// Release frees the GPU resources the wrapper holds. The wrapper is not
// usable afterward.
func (w *Wrapper) Release() {
	releaseBatches(w.batches)
	w.batches = nil
	if w.atlas != nil {
		w.atlas.Release()
		w.atlas = nil
	}
}
