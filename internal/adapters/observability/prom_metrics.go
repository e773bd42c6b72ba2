package observability

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// levelCritical ranks above slog's built-in Error for failures that need
// operator attention.
const levelCritical = slog.LevelError + 4

type PromObs struct {
	log      *slog.Logger
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

var _ ports.Observability = (*PromObs)(nil)

// NewPromObs registers the monitor's metric families with the default
// registry. A nil logger falls back to slog.Default.
func NewPromObs(logger *slog.Logger) *PromObs {
	if logger == nil {
		logger = slog.Default()
	}

	recorded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "diskmon_samples_recorded_total",
		Help: "Total samples successfully appended to the store.",
	})
	probeFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "diskmon_probe_failures_total",
		Help: "Probe invocations that failed or produced unusable output.",
	})
	duplicates := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "diskmon_duplicate_samples_total",
		Help: "Samples skipped because their timestamp second was already stored.",
	})
	sizeGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "diskmon_disk_size_bytes",
		Help: "Filesystem size reported by the latest successful probe.",
	})
	usedGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "diskmon_disk_used_bytes",
		Help: "Filesystem usage reported by the latest successful probe.",
	})
	loadLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "diskmon_window_load_seconds",
		Help:    "Latency of loading the display window from the store.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	prometheus.MustRegister(recorded, probeFailures, duplicates, sizeGauge, usedGauge, loadLatency)

	return &PromObs{
		log: logger,
		counters: map[string]prometheus.Counter{
			"diskmon_samples_recorded_total":  recorded,
			"diskmon_probe_failures_total":    probeFailures,
			"diskmon_duplicate_samples_total": duplicates,
		},
		gauges: map[string]prometheus.Gauge{
			"diskmon_disk_size_bytes": sizeGauge,
			"diskmon_disk_used_bytes": usedGauge,
		},
		histos: map[string]prometheus.Observer{
			"diskmon_window_load_seconds": loadLatency,
		},
	}
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {
	p.log.Info(msg, attrs(fields)...)
}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	p.log.Error(msg, append(attrs(fields), slog.Any("err", err))...)
}

func (p *PromObs) LogCritical(msg string, err error, fields ...ports.Field) {
	p.log.Log(context.Background(), levelCritical, msg, append(attrs(fields), slog.Any("err", err))...)
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) ObserveLatency(name string, seconds float64) {
	if h, ok := p.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (p *PromObs) SetGauge(name string, v float64) {
	if g, ok := p.gauges[name]; ok {
		g.Set(v)
	}
}

func attrs(fields []ports.Field) []any {
	out := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}
