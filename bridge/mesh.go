package bridge

import (
	"github.com/briarhart/trellis/engine/core"
	"github.com/briarhart/trellis/gui"
)

// Vertex: pos2 + uv2 + color4 => 8 floats
const vStride = 8

var guiVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 2, Type: core.AttribFloat32, Offset: 2 * 4}, // uv
		{Location: 2, Size: 4, Type: core.AttribFloat32, Offset: 4 * 4}, // color
	},
}

// clipRect is a clip rectangle in integer window coordinates.
type clipRect struct {
	X, Y, W, H int
}

// meshBatch pairs an uploaded mesh with the scissor rectangle it must be
// drawn under.
type meshBatch struct {
	clip clipRect
	mesh core.Mesh
}

// Statistics captures the counts produced by the latest frame's batches.
type Statistics struct {
	Batches     int
	VertexCount int
	IndexCount  int
}

// truncClip converts a float clip rectangle to integer bounds. Coordinates
// truncate toward zero, matching how the host framework takes scissor rects.
func truncClip(r gui.Rect) clipRect {
	return clipRect{
		X: int(r.Min[0]),
		Y: int(r.Min[1]),
		W: int(r.Width()),
		H: int(r.Height()),
	}
}

// buildBatches uploads one mesh per tessellated primitive, in paint order,
// each bound to the atlas texture with back-face culling disabled (GUI quads
// may be wound either way).
func buildBatches(r core.Renderer, meshes []gui.ClippedMesh, atlas core.Texture) ([]meshBatch, Statistics, error) {
	batches := make([]meshBatch, 0, len(meshes))
	var stats Statistics
	for _, cm := range meshes {
		verts := make([]float32, 0, len(cm.Mesh.Vertices)*vStride)
		for _, v := range cm.Mesh.Vertices {
			verts = append(verts,
				v.Pos[0], v.Pos[1],
				v.UV[0], v.UV[1],
				float32(v.Color[0])/255, float32(v.Color[1])/255,
				float32(v.Color[2])/255, float32(v.Color[3])/255,
			)
		}
		mesh, err := r.CreateMesh(core.MeshDesc{
			Vertices:      verts,
			Indices:       cm.Mesh.Indices,
			Layout:        guiVertexLayout,
			Texture:       atlas,
			CullBackfaces: false,
		})
		if err != nil {
			releaseBatches(batches)
			return nil, Statistics{}, &HostFrameworkError{Err: err}
		}
		batches = append(batches, meshBatch{clip: truncClip(cm.Clip), mesh: mesh})
		stats.Batches++
		stats.VertexCount += len(cm.Mesh.Vertices)
		stats.IndexCount += len(cm.Mesh.Indices)
	}
	return batches, stats, nil
}

func releaseBatches(batches []meshBatch) {
	for _, b := range batches {
		b.mesh.Release()
	}
}

// fontImageToTexture expands the GUI's alpha-coverage atlas into a
// premultiplied RGBA texture. Each atlas byte is the alpha; the GUI renders
// coverage as a white premultiplied mask, so every channel gets the alpha
// value.
func fontImageToTexture(r core.Renderer, img *gui.FontImage) (core.Texture, error) {
	pixels := make([]byte, 0, len(img.Pixels)*4)
	for _, alpha := range img.Pixels {
		pixels = append(pixels, alpha, alpha, alpha, alpha)
	}
	tex, err := r.CreateTexture(core.TextureDesc{
		Width:     img.Width,
		Height:    img.Height,
		Format:    core.TextureRGBA8,
		Pixels:    pixels,
		MinFilter: "linear", MagFilter: "linear",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, &HostFrameworkError{Err: err}
	}
	return tex, nil
}
