package bridge

// The bridge touches three unrelated failure domains: the rendering backend,
// the platform clipboard, and the URL-opener process. Each gets its own
// error type carrying the domain-specific cause, so callers can pick apart
// failures with errors.As instead of string matching.

// HostFrameworkError wraps a failure from the rendering/windowing layer.
// It is fatal to the operation that hit it (e.g. it aborts frame setup).
type HostFrameworkError struct {
	Err error
}

func (e *HostFrameworkError) Error() string { return "host framework: " + e.Err.Error() }
func (e *HostFrameworkError) Unwrap() error { return e.Err }

// ClipboardError wraps a failure from platform clipboard access. The bridge
// surfaces it as a hard failure; callers that prefer "paste just inserts
// nothing" can downgrade it at the call site.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string { return "clipboard: " + e.Err.Error() }
func (e *ClipboardError) Unwrap() error { return e.Err }

// URLOpenError wraps a failure opening a URL or path that the user clicked:
// either the opener process could not be launched, or it exited non-zero.
type URLOpenError struct {
	URL string
	Err error
}

func (e *URLOpenError) Error() string { return "open " + e.URL + ": " + e.Err.Error() }
func (e *URLOpenError) Unwrap() error { return e.Err }
