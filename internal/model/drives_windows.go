//go:build windows

package model

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

func getPlatformDrives() ([]Drive, error) {
	var drives []Drive

	for letter := 'A'; letter <= 'Z'; letter++ {
		path := fmt.Sprintf("%c:\\", letter)
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}

		total, free, err := diskSpace(path)
		if err != nil {
			continue
		}

		drives = append(drives, Drive{
			Name:       string(letter),
			Path:       path,
			Label:      volumeLabel(path),
			TotalBytes: total,
			FreeBytes:  free,
		})
	}

	return drives, nil
}

func diskSpace(path string) (total, free int64, err error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, err
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	err = windows.GetDiskFreeSpaceEx(pathPtr, &freeBytesAvailable, &totalBytes, &totalFreeBytes)
	if err != nil {
		return 0, 0, err
	}

	return int64(totalBytes), int64(freeBytesAvailable), nil
}

func volumeLabel(path string) string {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return ""
	}

	buf := make([]uint16, windows.MAX_PATH+1)
	err = windows.GetVolumeInformation(pathPtr, &buf[0], uint32(len(buf)), nil, nil, nil, nil, 0)
	if err != nil {
		return ""
	}
	return windows.UTF16ToString(buf)
}
