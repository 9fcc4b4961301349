package tui

import (
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// openPath hands a file to the platform opener so generated images show in
// the user's default viewer. The image is already on disk when this runs; a
// failure here is shown next to the saved path rather than replacing it.
func openPath(p string) error {
	p = strings.TrimSpace(p)
	if p == "" {
		return nil
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", p)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", p)
	default:
		cmd = exec.Command("xdg-open", p)
	}
	// Prevent any output from flashing in the terminal.
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Wait()
}
