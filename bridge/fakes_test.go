package bridge

import (
	"fmt"

	"github.com/briarhart/trellis/engine/core"
)

// recRenderer implements core.Renderer in memory, keeping an ordered op log
// so tests can assert draw order and state save/restore.
type recRenderer struct {
	textures []*recTexture
	meshes   []*recMesh
	ops      []string

	createMeshErr    error
	createTextureErr error
}

type recTexture struct {
	desc     core.TextureDesc
	released bool
}

func (t *recTexture) Size() (int, int) { return t.desc.Width, t.desc.Height }
func (t *recTexture) Release()         { t.released = true }

type recMesh struct {
	id       int
	desc     core.MeshDesc
	released bool
}

func (m *recMesh) Release() { m.released = true }

func (r *recRenderer) Init() error              { return nil }
func (r *recRenderer) Resize(w, h int)          {}
func (r *recRenderer) Clear(_, _, _, _ float32) {}
func (r *recRenderer) Shutdown()                {}

func (r *recRenderer) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if r.createTextureErr != nil {
		return nil, r.createTextureErr
	}
	t := &recTexture{desc: desc}
	r.textures = append(r.textures, t)
	return t, nil
}

func (r *recRenderer) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if r.createMeshErr != nil {
		return nil, r.createMeshErr
	}
	m := &recMesh{id: len(r.meshes), desc: desc}
	r.meshes = append(r.meshes, m)
	return m, nil
}

func (r *recRenderer) DrawMesh(m core.Mesh) {
	r.ops = append(r.ops, fmt.Sprintf("draw %d", m.(*recMesh).id))
}

func (r *recRenderer) SetBlendMode(mode core.BlendMode) {
	r.ops = append(r.ops, fmt.Sprintf("blend %d", mode))
}

func (r *recRenderer) ResetBlendMode() { r.ops = append(r.ops, "resetBlend") }

func (r *recRenderer) SetScissor(x, y, w, h int) {
	r.ops = append(r.ops, fmt.Sprintf("scissor %d,%d,%d,%d", x, y, w, h))
}

func (r *recRenderer) ResetScissor() { r.ops = append(r.ops, "resetScissor") }

// fakeWindow is a fixed-size core.Window.
type fakeWindow struct{ w, h int }

func (f *fakeWindow) PollEvents()                       {}
func (f *fakeWindow) SwapBuffers()                      {}
func (f *fakeWindow) ShouldClose() bool                 { return false }
func (f *fakeWindow) RequestClose()                     {}
func (f *fakeWindow) FramebufferSize() (int, int)       { return f.w, f.h }
func (f *fakeWindow) SetTitle(string)                   {}
func (f *fakeWindow) SetEventCallback(func(core.Event)) {}

// fakeClipboard records SetText calls and serves canned GetText results.
type fakeClipboard struct {
	text   string
	getErr error
	setErr error
	sets   []string
}

func (f *fakeClipboard) GetText() (string, error) { return f.text, f.getErr }
func (f *fakeClipboard) SetText(text string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets = append(f.sets, text)
	return nil
}

// fakeOpener records opened URLs.
type fakeOpener struct {
	urls []string
	err  error
}

func (f *fakeOpener) Open(url string) error {
	if f.err != nil {
		return f.err
	}
	f.urls = append(f.urls, url)
	return nil
}

func newTestEngine(r core.Renderer, cb core.Clipboard, op core.URLOpener) *core.Engine {
	return &core.Engine{
		Window:    &fakeWindow{w: 800, h: 600},
		Renderer:  r,
		Input:     core.NewInput(),
		Clipboard: cb,
		Opener:    op,
	}
}
