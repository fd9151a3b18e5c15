package core

// Renderer abstraction: the minimal drawing surface the engine requires from
// a backend. Textures are created from RGBA bytes, meshes from interleaved
// vertex + index buffers; scissor and blend changes stay in effect until the
// matching Reset call restores the backend default.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	DrawMesh(m Mesh)
	SetBlendMode(mode BlendMode)
	ResetBlendMode()
	SetScissor(x, y, w, h int)
	ResetScissor()
	Shutdown()
}

// Texture is an opaque GPU texture handle.
type Texture interface {
	Size() (w, h int)
	Release()
}

// Mesh is an opaque GPU mesh handle.
type Mesh interface {
	Release()
}

// TextureFormat selects the pixel layout for CreateTexture.
type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

// TextureDesc describes a texture upload.
type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     string // "nearest" or "linear"
	MagFilter     string
	WrapU         string // "clamp" or "repeat"
	WrapV         string
}

// AttribType is the element type of a vertex attribute.
type AttribType int

const (
	AttribFloat32 AttribType = iota
)

// VertexAttrib describes one attribute inside an interleaved vertex buffer.
type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int // bytes from the start of the vertex
}

// VertexLayout describes an interleaved vertex buffer.
type VertexLayout struct {
	Stride     int // bytes per vertex
	Attributes []VertexAttrib
}

// MeshDesc describes an indexed triangle mesh.
type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
	Texture  Texture // sampled in the fragment stage; nil means untextured
	// CullBackfaces enables back-face culling. GUI geometry is wound either
	// way, so the bridge always leaves this false.
	CullBackfaces bool
}

// BlendMode selects how fragments combine with the framebuffer.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendAlpha
	BlendPremultiplied
)
