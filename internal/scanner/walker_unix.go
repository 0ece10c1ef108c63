//go:build !windows

package scanner

import (
	"io/fs"
	"sync"
	"syscall"
)

// platformRootInfo identifies the filesystem the scan started on.
type platformRootInfo struct {
	dev uint64
}

func getPlatformRootInfo(path string) platformRootInfo {
	var stat syscall.Stat_t
	if err := syscall.Stat(path, &stat); err != nil {
		return platformRootInfo{}
	}
	return platformRootInfo{dev: uint64(stat.Dev)}
}

// shouldSkipDir skips mount points and directories whose inode was already
// visited (firmlinks on macOS would otherwise double-count).
func shouldSkipDir(path string, d fs.DirEntry, rootInfo platformRootInfo, seen *sync.Map) bool {
	info, err := d.Info()
	if err != nil {
		return false
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return false
	}
	if uint64(stat.Dev) != rootInfo.dev {
		return true
	}
	if _, exists := seen.LoadOrStore(stat.Ino, true); exists {
		return true
	}
	return false
}

// getFileSize returns the allocated size of the file, or -1 when the file
// is a hard link that was already counted.
func getFileSize(info fs.FileInfo, seen *sync.Map) int64 {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.Size()
	}
	if stat.Nlink > 1 {
		if _, exists := seen.LoadOrStore(stat.Ino, true); exists {
			return -1
		}
	}
	// Blocks are 512-byte units; this counts what the file actually
	// occupies, which matters for sparse files.
	return stat.Blocks * 512
}
