//go:build windows

package platform

import "os/exec"

func openCommand(url string) *exec.Cmd {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
}
