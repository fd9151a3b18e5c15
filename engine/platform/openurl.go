package platform

import "github.com/briarhart/trellis/engine/core"

// ExecOpener implements core.URLOpener by spawning the OS default handler
// (xdg-open, open, or rundll32 depending on the platform). Open blocks until
// the process exits; launch failures and non-zero exit statuses both surface
// as errors rather than being swallowed.
type ExecOpener struct{}

func NewOpener() core.URLOpener { return ExecOpener{} }

func (ExecOpener) Open(url string) error {
	return openCommand(url).Run()
}
