//go:build linux

package probe

import "syscall"

// statfsUsage returns total and used bytes for the filesystem containing
// path. Used mirrors df: total blocks minus free blocks.
func statfsUsage(path string) (size, used int64, err error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}
	bsize := int64(stat.Bsize)
	size = int64(stat.Blocks) * bsize
	used = (int64(stat.Blocks) - int64(stat.Bfree)) * bsize
	return size, used, nil
}
