package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/briarhart/trellis/engine/core"
)

// TextureGL implements core.Texture.
type TextureGL struct {
	id            uint32
	width, height int
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("unsupported texture format %d", desc.Format)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return nil, fmt.Errorf("texture pixels: got %d bytes, want %d", len(desc.Pixels), want)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(desc.WrapV))
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &TextureGL{id: id, width: desc.Width, height: desc.Height}, nil
}

func (t *TextureGL) Size() (int, int) { return t.width, t.height }

func (t *TextureGL) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func glFilter(name string) int32 {
	if name == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func glWrap(name string) int32 {
	if name == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}
