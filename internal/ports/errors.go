package ports

import "errors"

// Error taxonomy shared by adapters and the application layer. Callers match
// with errors.Is; adapters wrap these with backend detail.
var (
	// ErrProbeFailed marks a measurement that failed or produced unusable
	// output. Recoverable: the sampler logs and skips the tick.
	ErrProbeFailed = errors.New("diskmon: probe failed")

	// ErrDuplicateTimestamp marks a second sample landing on an already
	// stored timestamp second. Expected near interval boundaries, never fatal.
	ErrDuplicateTimestamp = errors.New("diskmon: duplicate sample timestamp")

	// ErrStoreUnavailable marks storage I/O failure on read or write.
	ErrStoreUnavailable = errors.New("diskmon: sample store unavailable")

	// ErrInvalidArgument marks a rejected caller input such as a
	// non-positive read limit or an unknown display mode.
	ErrInvalidArgument = errors.New("diskmon: invalid argument")

	// ErrUnsupportedMode marks a recognized display mode that has no
	// transform implemented yet.
	ErrUnsupportedMode = errors.New("diskmon: display mode not supported")
)
