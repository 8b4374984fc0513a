package ui

import "github.com/atotto/clipboard"

// copyToClipboard places text on the system clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
