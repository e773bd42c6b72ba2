package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/u1and0/DiskUsageMonitor/internal/adapters/store"
	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// scriptedProber runs a per-call script and closes done when the target call
// count is reached, letting tests cancel deterministically.
type scriptedProber struct {
	mu     sync.Mutex
	calls  int
	target int
	done   chan struct{}
	probe  func(call int) (domain.Sample, error)
}

func newScriptedProber(target int, probe func(call int) (domain.Sample, error)) *scriptedProber {
	return &scriptedProber{target: target, done: make(chan struct{}), probe: probe}
}

func (p *scriptedProber) Probe(ctx context.Context) (domain.Sample, error) {
	p.mu.Lock()
	p.calls++
	call := p.calls
	if call == p.target {
		close(p.done)
	}
	p.mu.Unlock()
	return p.probe(call)
}

func (p *scriptedProber) Name() string { return "scripted" }

func (p *scriptedProber) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type mockObs struct {
	mu        sync.Mutex
	counters  map[string]float64
	gauges    map[string]float64
	infoMsgs  []string
	errorMsgs []string
	critMsgs  []string
}

func newMockObs() *mockObs {
	return &mockObs{counters: map[string]float64{}, gauges: map[string]float64{}}
}

func (m *mockObs) LogInfo(msg string, fields ...ports.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infoMsgs = append(m.infoMsgs, msg)
}

func (m *mockObs) LogError(msg string, err error, fields ...ports.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorMsgs = append(m.errorMsgs, msg)
}

func (m *mockObs) LogCritical(msg string, err error, fields ...ports.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.critMsgs = append(m.critMsgs, msg)
}

func (m *mockObs) IncCounter(name string, v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += v
}

func (m *mockObs) ObserveLatency(name string, seconds float64) {}

func (m *mockObs) SetGauge(name string, v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = v
}

func (m *mockObs) counter(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

func (m *mockObs) gauge(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gauges[name]
}

func (m *mockObs) logged(list *[]string, msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, got := range *list {
		if got == msg {
			return true
		}
	}
	return false
}

type failingStore struct{}

func (f *failingStore) Init(ctx context.Context) error { return nil }

func (f *failingStore) Insert(ctx context.Context, s domain.Sample) error {
	return fmt.Errorf("%w: forced failure", ports.ErrStoreUnavailable)
}

func (f *failingStore) ReadRecent(ctx context.Context, limit int) ([]domain.Sample, error) {
	return nil, fmt.Errorf("%w: forced failure", ports.ErrStoreUnavailable)
}

func (f *failingStore) Name() string { return "broken" }

// drive runs the sampler until the prober's script completes, then cancels
// and waits for a clean exit.
func drive(t *testing.T, prober *scriptedProber, st ports.SampleStore, obs *mockObs) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- RunSampler(ctx, prober, st, time.Millisecond, obs) }()

	select {
	case <-prober.done:
	case <-time.After(5 * time.Second):
		t.Fatal("sampler never reached the scripted probe count")
	}
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("RunSampler returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("sampler did not stop after cancel")
	}
}

func TestRunSamplerRecordsSamples(t *testing.T) {
	prober := newScriptedProber(3, func(call int) (domain.Sample, error) {
		return domain.Sample{Timestamp: int64(1000 + call), Size: 1000, Used: 500}, nil
	})
	st := store.NewMemStore()
	obs := newMockObs()

	drive(t, prober, st, obs)

	got, err := st.ReadRecent(context.Background(), 100)
	if err != nil {
		t.Fatalf("ReadRecent failed: %v", err)
	}
	if len(got) < 3 {
		t.Fatalf("expected at least 3 stored samples, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp <= got[i-1].Timestamp {
			t.Fatalf("stored samples not strictly ascending: %+v", got)
		}
	}
	if obs.counter("diskmon_samples_recorded_total") < 3 {
		t.Fatalf("expected recorded counter >= 3, got %f", obs.counter("diskmon_samples_recorded_total"))
	}
	if obs.gauge("diskmon_disk_size_bytes") != 1000 || obs.gauge("diskmon_disk_used_bytes") != 500 {
		t.Fatalf("gauges not updated: size=%f used=%f",
			obs.gauge("diskmon_disk_size_bytes"), obs.gauge("diskmon_disk_used_bytes"))
	}
	if !obs.logged(&obs.infoMsgs, "sample_recorded") {
		t.Fatal("expected sample_recorded log entry")
	}
}

func TestRunSamplerSkipsFailedProbes(t *testing.T) {
	prober := newScriptedProber(3, func(call int) (domain.Sample, error) {
		if call == 1 {
			return domain.Sample{}, fmt.Errorf("%w: exit status 1", ports.ErrProbeFailed)
		}
		return domain.Sample{Timestamp: int64(100 * call), Size: 1000, Used: 500}, nil
	})
	st := store.NewMemStore()
	obs := newMockObs()

	drive(t, prober, st, obs)

	if obs.counter("diskmon_probe_failures_total") < 1 {
		t.Fatalf("expected probe failure counter >= 1, got %f", obs.counter("diskmon_probe_failures_total"))
	}
	if !obs.logged(&obs.errorMsgs, "probe_failed") {
		t.Fatal("expected probe_failed log entry")
	}

	got, _ := st.ReadRecent(context.Background(), 100)
	if len(got) < 2 {
		t.Fatalf("expected surviving samples after a failed tick, got %d", len(got))
	}
}

func TestRunSamplerSkipsDuplicateTimestamps(t *testing.T) {
	prober := newScriptedProber(3, func(call int) (domain.Sample, error) {
		return domain.Sample{Timestamp: 42, Size: 1000, Used: 500}, nil
	})
	st := store.NewMemStore()
	obs := newMockObs()

	drive(t, prober, st, obs)

	got, _ := st.ReadRecent(context.Background(), 100)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 stored sample, got %d", len(got))
	}
	if obs.counter("diskmon_duplicate_samples_total") < 1 {
		t.Fatalf("expected duplicate counter >= 1, got %f", obs.counter("diskmon_duplicate_samples_total"))
	}
	if obs.counter("diskmon_samples_recorded_total") != 1 {
		t.Fatalf("expected recorded counter 1, got %f", obs.counter("diskmon_samples_recorded_total"))
	}
	if !obs.logged(&obs.infoMsgs, "duplicate_sample_skipped") {
		t.Fatal("expected duplicate_sample_skipped log entry")
	}
}

func TestRunSamplerContinuesAfterStoreFailure(t *testing.T) {
	prober := newScriptedProber(3, func(call int) (domain.Sample, error) {
		return domain.Sample{Timestamp: int64(call), Size: 1000, Used: 500}, nil
	})
	obs := newMockObs()

	drive(t, prober, &failingStore{}, obs)

	if prober.callCount() < 3 {
		t.Fatalf("expected the loop to continue past store failures, probes=%d", prober.callCount())
	}
	if obs.counter("diskmon_samples_recorded_total") != 0 {
		t.Fatalf("expected no recorded samples, got %f", obs.counter("diskmon_samples_recorded_total"))
	}
	if !obs.logged(&obs.critMsgs, "sample_insert_failed") {
		t.Fatal("expected sample_insert_failed log entry")
	}
}

func TestRunSamplerStopsBeforeFirstTickOnCancel(t *testing.T) {
	prober := newScriptedProber(1, func(call int) (domain.Sample, error) {
		return domain.Sample{Timestamp: int64(call), Size: 1, Used: 1}, nil
	})
	st := store.NewMemStore()
	obs := newMockObs()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- RunSampler(ctx, prober, st, time.Hour, obs) }()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("RunSampler returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("sampler did not stop on pre-cancelled context")
	}

	if prober.callCount() != 0 {
		t.Fatalf("expected no probes before the first tick, got %d", prober.callCount())
	}
}
