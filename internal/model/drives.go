package model

// Drive represents a mounted drive/volume
type Drive struct {
	Name       string // e.g. "C" on Windows, volume name elsewhere
	Path       string // e.g. "C:\\" or "/Volumes/Data"
	Label      string // volume label, may be empty
	TotalBytes int64
	FreeBytes  int64
}

// UsedBytes returns bytes used on this drive
func (d Drive) UsedBytes() int64 {
	return d.TotalBytes - d.FreeBytes
}

// UsedPercent returns percentage of drive used
func (d Drive) UsedPercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.UsedBytes()) / float64(d.TotalBytes) * 100
}

// GetDrives returns all ready drives on the system. Volumes whose
// space query fails are skipped rather than reported with zeros.
func GetDrives() ([]Drive, error) {
	return getPlatformDrives()
}
