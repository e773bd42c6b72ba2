package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// RunSampler drives the write path: one probe and one store append per
// interval until ctx is cancelled. The pause is measured from the end of the
// previous tick's work, so a slow probe stretches the period instead of
// bunching ticks. Failed probes and timestamp collisions are logged and
// skipped; the loop itself only exits on cancellation.
func RunSampler(ctx context.Context, prober ports.UsageProber, store ports.SampleStore, interval time.Duration, obs ports.Observability) error {
	for {
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		sample, err := prober.Probe(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			obs.IncCounter("diskmon_probe_failures_total", 1)
			obs.LogError("probe_failed", err, ports.Field{Key: "backend", Value: prober.Name()})
			continue
		}

		if err := store.Insert(ctx, sample); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, ports.ErrDuplicateTimestamp) {
				obs.IncCounter("diskmon_duplicate_samples_total", 1)
				obs.LogInfo("duplicate_sample_skipped", ports.Field{Key: "timestamp", Value: sample.Timestamp})
				continue
			}
			obs.LogCritical("sample_insert_failed", err, ports.Field{Key: "store", Value: store.Name()})
			continue
		}

		obs.IncCounter("diskmon_samples_recorded_total", 1)
		obs.SetGauge("diskmon_disk_size_bytes", float64(sample.Size))
		obs.SetGauge("diskmon_disk_used_bytes", float64(sample.Used))
		obs.LogInfo("sample_recorded",
			ports.Field{Key: "timestamp", Value: sample.Timestamp},
			ports.Field{Key: "size", Value: sample.Size},
			ports.Field{Key: "used", Value: sample.Used})
	}
}
