// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reveal opens paths in the host's default file manager.
package reveal

import (
	"fmt"
	"os/exec"
	"runtime"
)

// launcher returns the file-manager command for the given GOOS.
func launcher(goos string) (string, bool) {
	switch goos {
	case "linux":
		return "xdg-open", true
	case "darwin":
		return "open", true
	case "windows":
		return "explorer", true
	default:
		return "", false
	}
}

// Open spawns the platform file manager on path and detaches. It fails when
// the platform has no known launcher or the command cannot be started; the
// launcher's own exit status is not observed.
func Open(path string) error {
	name, ok := launcher(runtime.GOOS)
	if !ok {
		return fmt.Errorf("no file manager launcher known for %s", runtime.GOOS)
	}

	cmd := exec.Command(name, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return cmd.Process.Release()
}
