//go:build darwin

package platform

import "os/exec"

func openCommand(url string) *exec.Cmd {
	return exec.Command("open", url)
}
