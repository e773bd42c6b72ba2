package diskmon

import "github.com/u1and0/DiskUsageMonitor/internal/ports"

// Re-exported error taxonomy so embedders can match with errors.Is.
var (
	ErrProbeFailed        = ports.ErrProbeFailed
	ErrDuplicateTimestamp = ports.ErrDuplicateTimestamp
	ErrStoreUnavailable   = ports.ErrStoreUnavailable
	ErrInvalidArgument    = ports.ErrInvalidArgument
	ErrUnsupportedMode    = ports.ErrUnsupportedMode
)
