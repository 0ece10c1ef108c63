//go:build windows

package scanner

import (
	"io/fs"
	"sync"
)

type platformRootInfo struct{}

func getPlatformRootInfo(path string) platformRootInfo {
	return platformRootInfo{}
}

// shouldSkipDir keeps reparse points (junctions, symlinked dirs) out of the
// scan; fastwalk already reports them as non-directories when not followed.
func shouldSkipDir(path string, d fs.DirEntry, rootInfo platformRootInfo, seen *sync.Map) bool {
	return false
}

// getFileSize returns the logical size; Windows has no cheap allocated-size
// query through fs.FileInfo.
func getFileSize(info fs.FileInfo, seen *sync.Map) int64 {
	return info.Size()
}
