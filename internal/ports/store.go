package ports

import (
	"context"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
)

// SampleStore is the append-only time series keyed by sample timestamp.
//
// Init creates the backing schema when absent and must be idempotent.
// Insert appends one sample and reports ErrDuplicateTimestamp when the key
// already exists. ReadRecent returns the newest limit samples in ascending
// timestamp order regardless of insertion order; limit <= 0 is rejected with
// ErrInvalidArgument. Implementations tolerate a single writer with any
// number of concurrent readers.
type SampleStore interface {
	Init(ctx context.Context) error
	Insert(ctx context.Context, s domain.Sample) error
	ReadRecent(ctx context.Context, limit int) ([]domain.Sample, error)
	Name() string
}
