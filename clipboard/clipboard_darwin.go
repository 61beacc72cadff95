//go:build darwin
// +build darwin

package clipboard

import (
	"os/exec"
	"strings"
)

// Copy uses pbcopy on macOS, falling back to OSC52 when it fails
// (e.g. inside a sandboxed shell).
func Copy(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return copyOSC52(text)
	}
	return nil
}
