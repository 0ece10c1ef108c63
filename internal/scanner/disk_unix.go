//go:build !windows

package scanner

import "golang.org/x/sys/unix"

// DiskUsage reports total and free bytes of the filesystem containing path.
func DiskUsage(path string) (total, free int64, err error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, 0, err
	}
	bsize := int64(st.Bsize)
	return int64(st.Blocks) * bsize, int64(st.Bavail) * bsize, nil
}
