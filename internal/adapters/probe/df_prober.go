package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// DFProber shells out to df(1) and parses its two-column output. The -k flag
// reports 1-KiB block counts, which the upstream convention converts to
// bytes with a decimal factor of 1000.
type DFProber struct {
	mount   string
	timeout time.Duration

	// overridable in tests
	run func(ctx context.Context, mount string) ([]byte, error)
	now func() time.Time
}

var _ ports.UsageProber = (*DFProber)(nil)

func NewDFProber(mount string, timeout time.Duration) *DFProber {
	p := &DFProber{mount: mount, timeout: timeout}
	p.run = runDF
	p.now = time.Now
	return p
}

func (p *DFProber) Name() string { return "df" }

func (p *DFProber) Probe(ctx context.Context) (domain.Sample, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	out, err := p.run(ctx, p.mount)
	if err != nil {
		return domain.Sample{}, fmt.Errorf("%w: df %s: %v", ports.ErrProbeFailed, p.mount, err)
	}

	size, used, err := parseDF(out)
	if err != nil {
		return domain.Sample{}, fmt.Errorf("%w: %v", ports.ErrProbeFailed, err)
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

func runDF(ctx context.Context, mount string) ([]byte, error) {
	return exec.CommandContext(ctx, "df", "-k", "--output=size,used", mount).Output()
}

// parseDF reads the second line of df output: total and used 1-KiB block
// counts, possibly with thousands separators.
func parseDF(out []byte) (size, used int64, err error) {
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) < 2 {
		return 0, 0, fmt.Errorf("df output has %d lines, want at least 2", len(lines))
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("df output has %d columns, want 2", len(fields))
	}
	size, err = parseBlockCount(fields[0])
	if err != nil {
		return 0, 0, err
	}
	used, err = parseBlockCount(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return size, used, nil
}

func parseBlockCount(field string) (int64, error) {
	kb, err := strconv.ParseInt(strings.ReplaceAll(field, ",", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse block count %q: %v", field, err)
	}
	return kb * 1000, nil
}

// checkSample rejects measurements that violate the sample invariant:
// non-negative byte counts with used <= size.
func checkSample(s domain.Sample) error {
	if s.Size < 0 || s.Used < 0 {
		return fmt.Errorf("%w: negative counts size=%d used=%d", ports.ErrProbeFailed, s.Size, s.Used)
	}
	if s.Used > s.Size {
		return fmt.Errorf("%w: used %d exceeds size %d", ports.ErrProbeFailed, s.Used, s.Size)
	}
	return nil
}
