//go:build !windows && !darwin

package ui

import (
	"os/exec"
	"path/filepath"
)

// openWithDefaultHandler opens a file or folder with its default app
func openWithDefaultHandler(path string) error {
	return exec.Command("xdg-open", path).Start()
}

// revealInFileManager opens the containing directory; xdg-open has no
// select flag.
func revealInFileManager(path string) error {
	return exec.Command("xdg-open", filepath.Dir(path)).Start()
}
