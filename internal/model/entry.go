package model

import (
	"path/filepath"
	"strings"
	"time"
)

// SizePending marks a folder whose total size has not been computed yet.
const SizePending = -1

// Kind distinguishes folder rows from file rows
type Kind int

const (
	KindFolder Kind = iota
	KindFile
)

// String returns a human-readable kind name
func (k Kind) String() string {
	if k == KindFolder {
		return "folder"
	}
	return "file"
}

// Entry represents one row of the current directory listing
type Entry struct {
	Name      string
	Path      string
	Kind      Kind
	TypeLabel string
	Size      int64 // bytes; SizePending until computed for folders
	ModTime   time.Time
}

// IsFolder reports whether the entry is a directory
func (e *Entry) IsFolder() bool {
	return e.Kind == KindFolder
}

// SizeKnown reports whether Size holds a computed value
func (e *Entry) SizeKnown() bool {
	return e.Size >= 0
}

// TypeLabelFor derives the display label for an entry name,
// e.g. "Folder", "TXT File", or plain "File" for extensionless names.
func TypeLabelFor(name string, kind Kind) string {
	if kind == KindFolder {
		return "Folder"
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "File"
	}
	return strings.ToUpper(ext) + " File"
}
