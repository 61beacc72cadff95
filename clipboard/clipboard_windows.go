//go:build windows
// +build windows

package clipboard

import (
	"os/exec"
	"strings"
)

// Copy uses PowerShell's Set-Clipboard on Windows, falling back to
// OSC52 when PowerShell is unavailable.
func Copy(text string) error {
	cmd := exec.Command("powershell", "-NoProfile", "-Command", "Set-Clipboard")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return copyOSC52(text)
	}
	return nil
}
