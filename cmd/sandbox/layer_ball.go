package main

import (
	"github.com/briarhart/trellis/engine/core"
)

// BallLayer bounces a colored quad around the window. Clicking teleports the
// ball to the cursor; clicks the GUI consumed never make it here.
type BallLayer struct {
	X, Y   float64
	VX, VY float64
	Size   float64

	mesh core.Mesh
}

func (l *BallLayer) OnAttach(e *core.Engine) {}

func (l *BallLayer) OnDetach(e *core.Engine) {
	if l.mesh != nil {
		l.mesh.Release()
		l.mesh = nil
	}
}

func (l *BallLayer) OnUpdate(e *core.Engine, dt float64) error {
	w, h := e.Window.FramebufferSize()
	l.X += l.VX * dt
	l.Y += l.VY * dt
	if l.X < 0 {
		l.X, l.VX = 0, -l.VX
	}
	if l.Y < 0 {
		l.Y, l.VY = 0, -l.VY
	}
	if l.X+l.Size > float64(w) {
		l.X, l.VX = float64(w)-l.Size, -l.VX
	}
	if l.Y+l.Size > float64(h) {
		l.Y, l.VY = float64(h)-l.Size, -l.VY
	}
	return nil
}

func (l *BallLayer) OnRender(e *core.Engine, alpha float64) error {
	// The minimal renderer surface has no transforms, so rebuild the quad
	// at the ball's current position each frame.
	if l.mesh != nil {
		l.mesh.Release()
	}
	x0, y0 := float32(l.X), float32(l.Y)
	x1, y1 := float32(l.X+l.Size), float32(l.Y+l.Size)
	mesh, err := e.Renderer.CreateMesh(core.MeshDesc{
		Vertices: []float32{
			// pos      uv    color (orange)
			x0, y0, 0, 0, 1, 0.55, 0.1, 1,
			x1, y0, 1, 0, 1, 0.55, 0.1, 1,
			x1, y1, 1, 1, 1, 0.55, 0.1, 1,
			x0, y1, 0, 1, 1, 0.55, 0.1, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
		Layout: core.VertexLayout{
			Stride: 8 * 4,
			Attributes: []core.VertexAttrib{
				{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},
				{Location: 1, Size: 2, Type: core.AttribFloat32, Offset: 2 * 4},
				{Location: 2, Size: 4, Type: core.AttribFloat32, Offset: 4 * 4},
			},
		},
	})
	if err != nil {
		return err
	}
	l.mesh = mesh

	e.Renderer.SetBlendMode(core.BlendAlpha)
	e.Renderer.DrawMesh(l.mesh)
	e.Renderer.ResetBlendMode()
	return nil
}

func (l *BallLayer) OnEvent(e *core.Engine, ev core.Event) (bool, error) {
	if _, ok := ev.(core.EventMouseButtonPressed); ok {
		x, y := e.Input.Mouse()
		l.X, l.Y = x-l.Size/2, y-l.Size/2
		return true, nil
	}
	return false, nil
}
