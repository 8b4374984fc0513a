// Package listing enumerates the immediate children of a directory
// into typed entries for the browser.
package listing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Prathameshp2025/WrapExplorer/internal/model"
)

// Sentinel errors for top-level enumeration failures. Individual
// unreadable children are skipped silently and never surface these.
var (
	ErrNotFound     = errors.New("directory not found")
	ErrAccessDenied = errors.New("access denied")
)

// List enumerates the immediate children of dir: folders first in
// enumeration order, then files. Hidden entries and entries that
// cannot be stat'd are skipped. Folder entries carry
// model.SizePending; file sizes come from enumeration metadata.
func List(dir string) ([]*model.Entry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		case os.IsPermission(err):
			return nil, fmt.Errorf("%w: %s", ErrAccessDenied, dir)
		default:
			return nil, err
		}
	}

	var folders, files []*model.Entry
	for _, child := range children {
		info, err := child.Info()
		if err != nil {
			continue
		}
		if hiddenEntry(child.Name(), info) {
			continue
		}

		entry := &model.Entry{
			Name:    child.Name(),
			Path:    filepath.Join(dir, child.Name()),
			ModTime: info.ModTime(),
		}

		if child.IsDir() {
			entry.Kind = model.KindFolder
			entry.Size = model.SizePending
			folders = append(folders, entry)
		} else if info.Mode().IsRegular() || info.Mode()&fs.ModeSymlink != 0 {
			entry.Kind = model.KindFile
			entry.Size = info.Size()
			files = append(files, entry)
		}
		// Sockets, pipes and devices are not browsable rows.
	}

	for _, entry := range folders {
		entry.TypeLabel = model.TypeLabelFor(entry.Name, entry.Kind)
	}
	for _, entry := range files {
		entry.TypeLabel = model.TypeLabelFor(entry.Name, entry.Kind)
	}

	return append(folders, files...), nil
}

// Folders returns the subset of entries that are folders, in order.
func Folders(entries []*model.Entry) []*model.Entry {
	var folders []*model.Entry
	for _, e := range entries {
		if e.IsFolder() {
			folders = append(folders, e)
		}
	}
	return folders
}
