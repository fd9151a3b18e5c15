package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briarhart/trellis/engine/core"
	"github.com/briarhart/trellis/gui"
	"github.com/briarhart/trellis/gui/guitest"
)

func runFrame(t *testing.T, w *Wrapper, e *core.Engine) {
	t.Helper()
	require.NoError(t, w.BeginFrame(e))
	require.NoError(t, w.EndFrame(e))
}

func TestBeginFrameDeliversEachEventToExactlyOneFrame(t *testing.T) {
	ctx := guitest.New()
	w := NewWrapper(ctx)
	e := newTestEngine(&recRenderer{}, &fakeClipboard{}, &fakeOpener{})

	require.NoError(t, w.Event(e, core.EventKeyPressed{Key: core.KeyA}))
	require.NoError(t, w.Event(e, core.EventTextInput{Text: "a"}))
	runFrame(t, w, e)

	require.Len(t, ctx.Frames, 1)
	require.Len(t, ctx.Frames[0].Events, 2)
	assert.Equal(t, gui.KeyEvent{Key: gui.KeyA, Pressed: true}, ctx.Frames[0].Events[0])
	assert.Equal(t, gui.TextEvent{Text: "a"}, ctx.Frames[0].Events[1])

	// Nothing new queued: the next frame must be empty, not a replay.
	w.DrawFrame(e)
	runFrame(t, w, e)
	require.Len(t, ctx.Frames, 2)
	assert.Empty(t, ctx.Frames[1].Events)

	// Events queued after a BeginFrame belong to the following frame.
	require.NoError(t, w.Event(e, core.EventKeyPressed{Key: core.KeyB}))
	w.DrawFrame(e)
	runFrame(t, w, e)
	require.Len(t, ctx.Frames, 3)
	require.Len(t, ctx.Frames[2].Events, 1)
	assert.Equal(t, gui.KeyB, ctx.Frames[2].Events[0].(gui.KeyEvent).Key)
}

func TestBeginFrameStampsScreenRectAndDeltaTime(t *testing.T) {
	ctx := guitest.New()
	w := NewWrapper(ctx)
	e := newTestEngine(&recRenderer{}, &fakeClipboard{}, &fakeOpener{})

	runFrame(t, w, e)
	in := ctx.LastFrame()
	assert.Equal(t, gui.Rect{Max: gui.Vec2{800, 600}}, in.ScreenRect)
	assert.GreaterOrEqual(t, in.PredictedDT, float32(0))
}

func TestAtlasUploadIsIdempotent(t *testing.T) {
	ctx := guitest.New()
	w := NewWrapper(ctx)
	r := &recRenderer{}
	e := newTestEngine(r, &fakeClipboard{}, &fakeOpener{})

	runFrame(t, w, e)
	w.DrawFrame(e)
	runFrame(t, w, e)

	// Same atlas generation both frames: exactly one upload.
	require.Len(t, r.textures, 1)
	tex := r.textures[0]
	assert.Equal(t, 2, tex.desc.Width)
	assert.Equal(t, 2, tex.desc.Height)
	// Each alpha byte expands to R=G=B=A=alpha.
	assert.Equal(t, []byte{
		0, 0, 0, 0,
		128, 128, 128, 128,
		192, 192, 192, 192,
		255, 255, 255, 255,
	}, tex.desc.Pixels)
}

func TestAtlasReuploadedOnRegeneration(t *testing.T) {
	ctx := guitest.New()
	w := NewWrapper(ctx)
	r := &recRenderer{}
	e := newTestEngine(r, &fakeClipboard{}, &fakeOpener{})

	runFrame(t, w, e)
	w.DrawFrame(e)

	// New FontImage value = new generation, even with identical pixels.
	ctx.Atlas = &gui.FontImage{Width: 2, Height: 2, Pixels: []byte{0, 128, 192, 255}}
	runFrame(t, w, e)

	require.Len(t, r.textures, 2)
	assert.True(t, r.textures[0].released)
	assert.False(t, r.textures[1].released)
}

func TestMissingAtlasIsValidTransientState(t *testing.T) {
	ctx := guitest.New()
	ctx.Atlas = nil
	ctx.Outputs = []gui.Output{{Meshes: []gui.ClippedMesh{{
		Mesh: gui.Mesh{Vertices: make([]gui.Vertex, 3), Indices: []uint32{0, 1, 2}},
	}}}}
	w := NewWrapper(ctx)
	r := &recRenderer{}
	e := newTestEngine(r, &fakeClipboard{}, &fakeOpener{})

	runFrame(t, w, e)
	assert.Empty(t, r.textures)
	assert.Empty(t, r.meshes)
	assert.Equal(t, Statistics{}, w.Stats())
}

func testMesh() gui.Mesh {
	return gui.Mesh{
		Vertices: []gui.Vertex{
			{Pos: gui.Vec2{0, 0}, UV: gui.Vec2{0, 0}, Color: gui.Color{255, 0, 0, 255}},
			{Pos: gui.Vec2{10, 0}, UV: gui.Vec2{1, 0}, Color: gui.Color{255, 0, 0, 255}},
			{Pos: gui.Vec2{10, 10}, UV: gui.Vec2{1, 1}, Color: gui.Color{255, 0, 0, 255}},
		},
		Indices: []uint32{0, 1, 2},
	}
}

func TestEndFrameBuildsBatches(t *testing.T) {
	ctx := guitest.New()
	ctx.Outputs = []gui.Output{{Meshes: []gui.ClippedMesh{
		{Clip: gui.Rect{Min: gui.Vec2{10.9, 20.7}, Max: gui.Vec2{41.8, 55.9}}, Mesh: testMesh()},
		{Clip: gui.Rect{Min: gui.Vec2{0, 0}, Max: gui.Vec2{800, 600}}, Mesh: testMesh()},
	}}}
	w := NewWrapper(ctx)
	r := &recRenderer{}
	e := newTestEngine(r, &fakeClipboard{}, &fakeOpener{})

	runFrame(t, w, e)

	require.Len(t, r.meshes, 2)
	desc := r.meshes[0].desc
	assert.False(t, desc.CullBackfaces)
	assert.Same(t, r.textures[0], desc.Texture)
	require.Len(t, desc.Vertices, 3*8)
	// First vertex: pos, uv, then color scaled to [0,1].
	assert.Equal(t, []float32{0, 0, 0, 0, 1, 0, 0, 1}, desc.Vertices[:8])
	assert.Equal(t, []uint32{0, 1, 2}, desc.Indices)

	assert.Equal(t, Statistics{Batches: 2, VertexCount: 6, IndexCount: 6}, w.Stats())

	// Clip rectangles truncate toward zero, no rounding.
	w.DrawFrame(e)
	assert.Contains(t, r.ops, "scissor 10,20,30,35")
}

func TestBatchesReplacedWholesale(t *testing.T) {
	ctx := guitest.New()
	ctx.Outputs = []gui.Output{
		{Meshes: []gui.ClippedMesh{{Mesh: testMesh()}}},
		{Meshes: []gui.ClippedMesh{{Mesh: testMesh()}, {Mesh: testMesh()}}},
	}
	w := NewWrapper(ctx)
	r := &recRenderer{}
	e := newTestEngine(r, &fakeClipboard{}, &fakeOpener{})

	runFrame(t, w, e)
	w.DrawFrame(e)
	runFrame(t, w, e)

	// Frame 2 replaced frame 1's batch outright; no accumulation.
	require.Len(t, r.meshes, 3)
	assert.True(t, r.meshes[0].released)
	assert.False(t, r.meshes[1].released)
	assert.False(t, r.meshes[2].released)

	r.ops = nil
	w.DrawFrame(e)
	assert.Equal(t, []string{
		"blend 2", // premultiplied
		"scissor 0,0,0,0", "draw 1",
		"scissor 0,0,0,0", "draw 2",
		"resetScissor", "resetBlend",
	}, r.ops)
}

func TestEndFrameCopiesTextToClipboard(t *testing.T) {
	ctx := guitest.New()
	ctx.Outputs = []gui.Output{{CopiedText: "selected text"}}
	w := NewWrapper(ctx)
	cb := &fakeClipboard{}
	e := newTestEngine(&recRenderer{}, cb, &fakeOpener{})

	runFrame(t, w, e)
	assert.Equal(t, []string{"selected text"}, cb.sets)
}

func TestEndFrameClipboardWriteFailure(t *testing.T) {
	ctx := guitest.New()
	ctx.Outputs = []gui.Output{{CopiedText: "x"}}
	w := NewWrapper(ctx)
	e := newTestEngine(&recRenderer{}, &fakeClipboard{setErr: errors.New("denied")}, &fakeOpener{})

	require.NoError(t, w.BeginFrame(e))
	err := w.EndFrame(e)
	var cerr *ClipboardError
	assert.ErrorAs(t, err, &cerr)
}

func TestEndFrameOpensClickedURL(t *testing.T) {
	ctx := guitest.New()
	ctx.Outputs = []gui.Output{{OpenURL: "https://example.com"}}
	w := NewWrapper(ctx)
	op := &fakeOpener{}
	e := newTestEngine(&recRenderer{}, &fakeClipboard{}, op)

	runFrame(t, w, e)
	assert.Equal(t, []string{"https://example.com"}, op.urls)
}

func TestEndFrameURLOpenFailure(t *testing.T) {
	ctx := guitest.New()
	ctx.Outputs = []gui.Output{{OpenURL: "https://example.com"}}
	w := NewWrapper(ctx)
	e := newTestEngine(&recRenderer{}, &fakeClipboard{}, &fakeOpener{err: errors.New("exit status 4")})

	require.NoError(t, w.BeginFrame(e))
	err := w.EndFrame(e)
	var uerr *URLOpenError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "https://example.com", uerr.URL)
}

func TestEndFrameMeshUploadFailure(t *testing.T) {
	ctx := guitest.New()
	ctx.Outputs = []gui.Output{{Meshes: []gui.ClippedMesh{{Mesh: testMesh()}}}}
	w := NewWrapper(ctx)
	r := &recRenderer{createMeshErr: errors.New("out of memory")}
	e := newTestEngine(r, &fakeClipboard{}, &fakeOpener{})

	require.NoError(t, w.BeginFrame(e))
	err := w.EndFrame(e)
	var herr *HostFrameworkError
	assert.ErrorAs(t, err, &herr)
}

func TestFramePhaseMisuse(t *testing.T) {
	e := newTestEngine(&recRenderer{}, &fakeClipboard{}, &fakeOpener{})

	t.Run("double BeginFrame", func(t *testing.T) {
		w := NewWrapper(guitest.New())
		require.NoError(t, w.BeginFrame(e))
		assert.Panics(t, func() { _ = w.BeginFrame(e) })
	})
	t.Run("EndFrame without BeginFrame", func(t *testing.T) {
		w := NewWrapper(guitest.New())
		assert.Panics(t, func() { _ = w.EndFrame(e) })
	})
	t.Run("DrawFrame mid-frame", func(t *testing.T) {
		w := NewWrapper(guitest.New())
		require.NoError(t, w.BeginFrame(e))
		assert.Panics(t, func() { w.DrawFrame(e) })
	})
	t.Run("multiple ticks between draws are fine", func(t *testing.T) {
		w := NewWrapper(guitest.New())
		runFrame(t, w, e)
		runFrame(t, w, e)
		assert.NotPanics(t, func() { w.DrawFrame(e) })
	})
}
