//go:build darwin

package model

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

func getPlatformDrives() ([]Drive, error) {
	var drives []Drive

	root := Drive{Name: "Macintosh HD", Path: "/", Label: "Macintosh HD"}
	var err error
	root.TotalBytes, root.FreeBytes, err = diskSpace("/")
	if err == nil {
		drives = append(drives, root)
	}

	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		return drives, nil
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		volumePath := filepath.Join("/Volumes", entry.Name())

		var stat unix.Statfs_t
		if err := unix.Statfs(volumePath, &stat); err != nil {
			continue
		}
		if isFilteredFilesystem(fstypeName(stat)) {
			continue
		}

		total := int64(stat.Blocks) * int64(stat.Bsize)
		free := int64(stat.Bavail) * int64(stat.Bsize)
		if total == 0 {
			continue
		}

		drives = append(drives, Drive{
			Name:       entry.Name(),
			Path:       volumePath,
			Label:      entry.Name(),
			TotalBytes: total,
			FreeBytes:  free,
		})
	}

	return drives, nil
}

func diskSpace(path string) (total, free int64, err error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}
	return int64(stat.Blocks) * int64(stat.Bsize), int64(stat.Bavail) * int64(stat.Bsize), nil
}

func fstypeName(stat unix.Statfs_t) string {
	b := make([]byte, 0, len(stat.Fstypename))
	for _, v := range stat.Fstypename {
		if v == 0 {
			break
		}
		b = append(b, byte(v))
	}
	return string(b)
}

// isFilteredFilesystem rejects network and pseudo filesystems that
// should not appear in the drive list.
func isFilteredFilesystem(fsType string) bool {
	switch fsType {
	case "smbfs", "nfs", "afpfs", "webdav", "cifs":
		return true
	case "devfs", "autofs", "mtmfs", "nullfs":
		return true
	}
	return false
}
