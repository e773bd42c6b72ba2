package display

import (
	"context"
	"fmt"
	"time"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// Loader reads display windows: the newest rows from the store shifted into
// the display timezone. Persisted timestamps stay UTC; the shift exists only
// on the loaded copy.
type Loader struct {
	store  ports.SampleStore
	offset time.Duration
}

func NewLoader(store ports.SampleStore, offset time.Duration) *Loader {
	return &Loader{store: store, offset: offset}
}

// Load returns the newest limit samples as a window, or the store's error
// unchanged in kind. An empty window with a nil error means no data yet,
// which callers can tell apart from broken data access.
func (l *Loader) Load(ctx context.Context, limit int) (domain.SeriesWindow, error) {
	samples, err := l.store.ReadRecent(ctx, limit)
	if err != nil {
		return domain.SeriesWindow{}, fmt.Errorf("load window: %w", err)
	}
	for i := range samples {
		samples[i] = samples[i].Shift(l.offset)
	}
	return domain.SeriesWindow{Samples: samples, Offset: l.offset}, nil
}
