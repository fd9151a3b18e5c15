// Package gui defines the surface this module expects from an immediate-mode
// GUI library: a context that accepts raw input at the start of a frame and
// returns tessellated meshes plus side-effect requests at the end of it.
//
// The package deliberately contains no widgets and no layout logic; any GUI
// library whose context can be adapted to the Context interface plugs in.
package gui

// Context is the per-process GUI state. It is not safe for concurrent use;
// the frame lifecycle controller owns it exclusively and drives it from the
// host's single update/render thread.
type Context interface {
	// BeginFrame starts a new GUI frame with the accumulated raw input.
	BeginFrame(in RawInput)

	// EndFrame finalizes the layout pass and returns the frame's tessellated
	// meshes along with any requested side effects.
	EndFrame() Output

	// FontImage returns the current glyph/shape coverage atlas, or nil if
	// none has been generated yet. Callers compare successive results by
	// pointer identity to detect a regenerated atlas.
	FontImage() *FontImage

	// WantsKeyboardInput reports whether the GUI currently has keyboard
	// focus (e.g. a text field is active). Valid after EndFrame.
	WantsKeyboardInput() bool

	// IsUsingPointer reports whether the GUI currently owns the pointer
	// (e.g. a widget is hovered or being dragged). Valid after EndFrame.
	IsUsingPointer() bool
}

// Output is everything a finished frame hands back to the host.
type Output struct {
	// Meshes are the frame's drawable meshes in paint order.
	Meshes []ClippedMesh

	// CopiedText is text the GUI wants written to the clipboard, if any.
	CopiedText string

	// OpenURL is a URL or path the user clicked, if any.
	OpenURL string
}
