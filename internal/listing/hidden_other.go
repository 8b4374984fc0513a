//go:build !windows

package listing

import (
	"io/fs"
	"strings"
)

// hiddenEntry reports whether the entry is hidden by unix convention.
func hiddenEntry(name string, _ fs.FileInfo) bool {
	return strings.HasPrefix(name, ".")
}
