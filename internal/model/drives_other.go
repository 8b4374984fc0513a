//go:build !windows && !darwin

package model

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

func getPlatformDrives() ([]Drive, error) {
	drives := []Drive{}

	root := Drive{Name: "/", Path: "/", Label: "root"}
	var err error
	root.TotalBytes, root.FreeBytes, err = diskSpace("/")
	if err == nil {
		drives = append(drives, root)
	}

	// Removable and secondary volumes mount under these on most distros.
	for _, base := range []string{"/media", "/mnt", "/run/media"} {
		drives = append(drives, mountsUnder(base)...)
	}

	return drives, nil
}

// mountsUnder lists mounted volumes below base, descending one extra
// level for per-user layouts like /run/media/<user>/<volume>.
func mountsUnder(base string) []Drive {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil
	}

	var drives []Drive
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(base, entry.Name())

		total, free, err := diskSpace(path)
		if err != nil || total == 0 {
			continue
		}

		rootTotal, _, rootErr := diskSpace("/")
		if rootErr == nil && total == rootTotal {
			// Same filesystem as root: a plain directory, not a mount.
			if nested := mountsUnder(path); len(nested) > 0 {
				drives = append(drives, nested...)
			}
			continue
		}

		drives = append(drives, Drive{
			Name:       entry.Name(),
			Path:       path,
			Label:      entry.Name(),
			TotalBytes: total,
			FreeBytes:  free,
		})
	}
	return drives
}

func diskSpace(path string) (total, free int64, err error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}
	return int64(stat.Blocks) * int64(stat.Bsize), int64(stat.Bavail) * int64(stat.Bsize), nil
}
