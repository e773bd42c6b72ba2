package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// StatfsProber reads filesystem capacity directly from the kernel, avoiding
// the df subprocess. Counts are true byte values (block count times block
// size), so they differ from the df backend's decimal-kilo convention.
type StatfsProber struct {
	mount string

	// overridable in tests
	usage func(path string) (size, used int64, err error)
	now   func() time.Time
}

var _ ports.UsageProber = (*StatfsProber)(nil)

func NewStatfsProber(mount string) *StatfsProber {
	return &StatfsProber{mount: mount, usage: statfsUsage, now: time.Now}
}

func (p *StatfsProber) Name() string { return "statfs" }

func (p *StatfsProber) Probe(ctx context.Context) (domain.Sample, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sample{}, fmt.Errorf("%w: statfs %s: %v", ports.ErrProbeFailed, p.mount, err)
	}

	size, used, err := p.usage(p.mount)
	if err != nil {
		return domain.Sample{}, fmt.Errorf("%w: statfs %s: %v", ports.ErrProbeFailed, p.mount, err)
	}

	s := domain.Sample{
		Timestamp: p.now().UTC().Unix(),
		Size:      size,
		Used:      used,
	}
	if err := checkSample(s); err != nil {
		return domain.Sample{}, err
	}
	return s, nil
}
