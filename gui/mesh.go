package gui

// Color is a straight sRGB color with alpha, 8 bits per channel.
type Color [4]uint8

// Vertex is a tessellated GUI vertex: position and UV in points, plus color.
type Vertex struct {
	Pos   Vec2
	UV    Vec2
	Color Color
}

// Mesh is an indexed triangle mesh produced by tessellation.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// ClippedMesh pairs a mesh with the clip rectangle it must be drawn under.
type ClippedMesh struct {
	Clip Rect
	Mesh Mesh
}

// FontImage is the GUI library's glyph/shape coverage atlas. Each pixel is a
// single alpha byte: the GUI renders coverage as a white premultiplied mask,
// so the color channels are implicitly the alpha value.
//
// A regenerated atlas is a new FontImage value; consumers detect regeneration
// by pointer identity, never by comparing pixels.
type FontImage struct {
	Width  int
	Height int
	Pixels []byte
}
