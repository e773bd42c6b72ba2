//go:build !linux

package probe

import "errors"

// statfsUsage is only wired up for the Linux target; other platforms should
// use the df backend.
func statfsUsage(path string) (size, used int64, err error) {
	return 0, 0, errors.New("statfs probing is not supported on this platform")
}
