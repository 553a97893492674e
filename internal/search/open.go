package search

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open hands address to the platform's default browser.
func Open(address string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", address)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", address)
	default:
		cmd = exec.Command("xdg-open", address)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("search: open %s: %w", address, err)
	}
	return nil
}
