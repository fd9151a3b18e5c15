package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/briarhart/trellis/engine/core"
)

// RendererGL implements core.Renderer on OpenGL 3.3 core.
type RendererGL struct {
	win     core.Window
	program uint32
	projLoc int32
	texLoc  int32

	width, height int
	white         *TextureGL // bound for untextured meshes
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.projLoc = gl.GetUniformLocation(r.program, gl.Str("uProj\x00"))
	r.texLoc = gl.GetUniformLocation(r.program, gl.Str("uTex\x00"))

	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return err
	}
	r.white = white.(*TextureGL)

	r.width, r.height = r.win.FramebufferSize()
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.white != nil {
		r.white.Release()
		r.white = nil
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

func (r *RendererGL) Resize(w, h int) {
	r.width, r.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) SetBlendMode(mode core.BlendMode) {
	switch mode {
	case core.BlendNone:
		gl.Disable(gl.BLEND)
	case core.BlendAlpha:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	case core.BlendPremultiplied:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	}
}

func (r *RendererGL) ResetBlendMode() { gl.Disable(gl.BLEND) }

// SetScissor takes top-left window coordinates; GL wants bottom-left.
func (r *RendererGL) SetScissor(x, y, w, h int) {
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(x), int32(r.height-y-h), int32(w), int32(h))
}

func (r *RendererGL) ResetScissor() { gl.Disable(gl.SCISSOR_TEST) }

func (r *RendererGL) DrawMesh(m core.Mesh) {
	mesh, ok := m.(*MeshGL)
	if !ok || mesh.vao == 0 {
		return
	}

	gl.UseProgram(r.program)
	proj := ortho(0, float32(r.width), float32(r.height), 0)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.Uniform1i(r.texLoc, 0)

	tex := r.white
	if mesh.tex != nil {
		tex = mesh.tex
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	if mesh.cull {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// ortho builds a column-major orthographic projection with top-left origin.
func ortho(left, right, bottom, top float32) [16]float32 {
	var m [16]float32
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -1
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[15] = 1
	return m
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
layout(location=2) in vec4 aColor;
uniform mat4 uProj;
out vec2 vUV;
out vec4 vColor;
void main() {
    vUV = aUV;
    vColor = aColor;
    gl_Position = uProj * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec2 vUV;
in vec4 vColor;
uniform sampler2D uTex;
out vec4 FragColor;
void main() {
    FragColor = vColor * texture(uTex, vUV);
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
