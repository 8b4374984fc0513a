//go:build windows

package listing

import (
	"io/fs"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// hiddenEntry reports whether the entry carries the Windows hidden
// attribute. Dot-prefixed names are treated as hidden too, matching
// how ported unix tooling marks them.
func hiddenEntry(name string, info fs.FileInfo) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return false
	}
	return attrs.FileAttributes&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
