//go:build darwin

package ui

import "os/exec"

// openWithDefaultHandler opens a file or folder with its default app
func openWithDefaultHandler(path string) error {
	return exec.Command("open", path).Start()
}

// revealInFileManager shows the path selected in Finder
func revealInFileManager(path string) error {
	return exec.Command("open", "-R", path).Start()
}
