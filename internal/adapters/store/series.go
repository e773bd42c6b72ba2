package store

import (
	"fmt"
	"sort"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// series keeps samples sorted by timestamp and enforces key uniqueness. It
// backs the memory and file store adapters; callers provide locking.
type series struct {
	samples []domain.Sample
}

// insert places s by timestamp order. Appending in arrival order is the hot
// path; out-of-order inserts fall back to a binary-search splice.
func (se *series) insert(s domain.Sample) error {
	n := len(se.samples)
	if n == 0 || se.samples[n-1].Timestamp < s.Timestamp {
		se.samples = append(se.samples, s)
		return nil
	}
	i := sort.Search(n, func(j int) bool { return se.samples[j].Timestamp >= s.Timestamp })
	if i < n && se.samples[i].Timestamp == s.Timestamp {
		return fmt.Errorf("%w: %d", ports.ErrDuplicateTimestamp, s.Timestamp)
	}
	se.samples = append(se.samples, domain.Sample{})
	copy(se.samples[i+1:], se.samples[i:])
	se.samples[i] = s
	return nil
}

func (se *series) contains(ts int64) bool {
	n := len(se.samples)
	i := sort.Search(n, func(j int) bool { return se.samples[j].Timestamp >= ts })
	return i < n && se.samples[i].Timestamp == ts
}

// recent copies out the newest limit samples in ascending order.
func (se *series) recent(limit int) []domain.Sample {
	n := len(se.samples)
	if limit > n {
		limit = n
	}
	out := make([]domain.Sample, limit)
	copy(out, se.samples[n-limit:])
	return out
}
