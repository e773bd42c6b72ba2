package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// MemStore is an ephemeral SampleStore for tests, examples, and embedders
// that do not need persistence across restarts.
type MemStore struct {
	mu sync.Mutex
	se series
}

var _ ports.SampleStore = (*MemStore)(nil)

func NewMemStore() *MemStore { return &MemStore{} }

func (m *MemStore) Name() string { return "memory" }

func (m *MemStore) Init(ctx context.Context) error { return nil }

func (m *MemStore) Insert(ctx context.Context, s domain.Sample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.se.insert(s)
}

func (m *MemStore) ReadRecent(ctx context.Context, limit int) ([]domain.Sample, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: read limit %d", ports.ErrInvalidArgument, limit)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.se.recent(limit), nil
}
