package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/briarhart/trellis/engine/core"
)

// MeshGL implements core.Mesh as a VAO with one vertex and one index buffer.
type MeshGL struct {
	vao, vbo, ebo uint32
	indexCount    int32
	tex           *TextureGL
	cull          bool
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if desc.Layout.Stride == 0 || len(desc.Layout.Attributes) == 0 {
		return nil, fmt.Errorf("mesh layout is empty")
	}

	m := &MeshGL{indexCount: int32(len(desc.Indices)), cull: desc.CullBackfaces}
	if t, ok := desc.Texture.(*TextureGL); ok {
		m.tex = t
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, gl.Ptr(desc.Indices), gl.STATIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		if a.Type != core.AttribFloat32 {
			return nil, fmt.Errorf("unsupported attrib type %d", a.Type)
		}
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointer(
			uint32(a.Location), int32(a.Size), gl.FLOAT, false,
			int32(desc.Layout.Stride), unsafe.Pointer(uintptr(a.Offset)),
		)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return m, nil
}

func (m *MeshGL) Release() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
