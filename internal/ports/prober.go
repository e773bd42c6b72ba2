package ports

import (
	"context"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
)

// UsageProber measures disk capacity for one configured mount path. Probe
// honors ctx for cancellation and returns a fully validated sample; failures
// wrap ErrProbeFailed. Name identifies the backend in logs.
type UsageProber interface {
	Probe(ctx context.Context) (domain.Sample, error)
	Name() string
}
