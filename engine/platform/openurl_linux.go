//go:build linux || freebsd || openbsd || netbsd

package platform

import "os/exec"

// Requires the xdg-utils package.
func openCommand(url string) *exec.Cmd {
	return exec.Command("xdg-open", url)
}
