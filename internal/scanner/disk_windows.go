//go:build windows

package scanner

import "golang.org/x/sys/windows"

// DiskUsage reports total and free bytes of the volume containing path.
func DiskUsage(path string) (total, free int64, err error) {
	var freeBytes, totalBytes, totalFree uint64
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, err
	}
	if err := windows.GetDiskFreeSpaceEx(p, &freeBytes, &totalBytes, &totalFree); err != nil {
		return 0, 0, err
	}
	return int64(totalBytes), int64(freeBytes), nil
}
