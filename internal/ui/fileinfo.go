package ui

import (
	"github.com/gabriel-vasile/mimetype"

	"github.com/Prathameshp2025/WrapExplorer/internal/model"
)

// detectMIME sniffs the MIME type of a file entry for the status line.
// Returns an empty string for folders or unreadable files.
func detectMIME(entry *model.Entry) string {
	if entry == nil || entry.IsFolder() {
		return ""
	}
	mime, err := mimetype.DetectFile(entry.Path)
	if err != nil {
		return ""
	}
	return mime.String()
}
