//go:build windows

package ui

import "os/exec"

// openWithDefaultHandler opens a file or folder with its default app
func openWithDefaultHandler(path string) error {
	return exec.Command("cmd", "/c", "start", "", path).Start()
}

// revealInFileManager shows the path selected in Explorer
func revealInFileManager(path string) error {
	return exec.Command("explorer.exe", "/select,", path).Start()
}
