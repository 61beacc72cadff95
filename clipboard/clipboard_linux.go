//go:build linux
// +build linux

package clipboard

import (
	"os"
	"os/exec"
	"strings"
)

// Copy puts text on the system clipboard, trying wl-copy under Wayland,
// then xclip under X11, then the terminal's OSC52 escape as a last
// resort (works over ssh).
func Copy(text string) error {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if _, err := exec.LookPath("wl-copy"); err == nil {
			cmd := exec.Command("wl-copy")
			cmd.Stdin = strings.NewReader(text)
			if err := cmd.Run(); err == nil {
				return nil
			}
		}
	}
	if os.Getenv("DISPLAY") != "" {
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd := exec.Command("xclip", "-selection", "clipboard")
			cmd.Stdin = strings.NewReader(text)
			if err := cmd.Run(); err == nil {
				return nil
			}
		}
	}
	return copyOSC52(text)
}
