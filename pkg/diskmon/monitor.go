package diskmon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	"github.com/u1and0/DiskUsageMonitor/internal/adapters/observability"
	"github.com/u1and0/DiskUsageMonitor/internal/adapters/store"
	"github.com/u1and0/DiskUsageMonitor/internal/app/display"
	"github.com/u1and0/DiskUsageMonitor/internal/app/pipeline"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// MonitorOption customizes the dependencies used by Monitor.
type MonitorOption func(*monitorOverrides)

type monitorOverrides struct {
	prober        UsageProber
	store         SampleStore
	observability Observability
}

// WithProber injects a custom measurement backend (cloud APIs, simulators, etc.).
func WithProber(p UsageProber) MonitorOption {
	return func(o *monitorOverrides) {
		o.prober = p
	}
}

// WithStore injects a custom sample store. The caller keeps ownership of its
// lifecycle; Shutdown will not close it.
func WithStore(s SampleStore) MonitorOption {
	return func(o *monitorOverrides) {
		o.store = s
	}
}

// WithObservability plugs in a custom observability backend (OpenTelemetry, structured logs, etc.).
func WithObservability(obs Observability) MonitorOption {
	return func(o *monitorOverrides) {
		o.observability = obs
	}
}

// Monitor wires the probe → store sampling loop to the window → transform →
// reconcile read path and exposes simple lifecycle hooks for embedding the
// pipeline inside any Go service.
type Monitor struct {
	cfg    *Config
	obs    ports.Observability
	prober ports.UsageProber
	store  ports.SampleStore
	loader *display.Loader

	// closer owns the default store's OS resource; nil for injected stores.
	closer     io.Closer
	metricsSrv *http.Server

	samplerCancel context.CancelFunc
	samplerDone   chan struct{}
}

// NewMonitor bootstraps the default adapters for the configured backends
// (df or statfs prober, sqlite/postgres/file/memory store, Prometheus
// observability). Callers can use MonitorOption values to override any
// dependency and point the monitor at custom probers, stores, or telemetry
// backends.
func NewMonitor(cfg *Config, opts ...MonitorOption) (*Monitor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	var overrides monitorOverrides
	for _, opt := range opts {
		if opt != nil {
			opt(&overrides)
		}
	}

	obs := overrides.observability
	if obs == nil {
		obs = observability.NewPromObs(slog.Default())
	}

	prober := overrides.prober
	if prober == nil {
		var err error
		prober, err = NewProber(cfg.Probe.Backend, cfg.Probe.MountPath, cfg.ProbeTimeout())
		if err != nil {
			return nil, err
		}
	}

	st := overrides.store
	var closer io.Closer
	if st == nil {
		var err error
		st, closer, err = openStore(&cfg.Storage)
		if err != nil {
			return nil, err
		}
	}

	return &Monitor{
		cfg:    cfg,
		obs:    obs,
		prober: prober,
		store:  st,
		loader: display.NewLoader(st, cfg.TimezoneOffset()),
		closer: closer,
	}, nil
}

// Conf loads YAML from disk and builds a Monitor: the one-line path from a
// config file to a runnable pipeline.
func Conf(path string, opts ...MonitorOption) (*Monitor, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return NewMonitor(cfg, opts...)
}

// Start initializes the store, launches the sampling loop, and serves the
// observability endpoints. It returns immediately; call Run to block on a
// context instead.
func (m *Monitor) Start() error {
	if m == nil {
		return fmt.Errorf("monitor is nil")
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := m.store.Init(initCtx); err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	samplerCtx, samplerCancel := context.WithCancel(context.Background())
	m.samplerCancel = samplerCancel
	m.samplerDone = make(chan struct{})
	go func() {
		defer close(m.samplerDone)
		_ = pipeline.RunSampler(samplerCtx, m.prober, m.store, m.cfg.Interval(), m.obs)
	}()

	m.startMetrics()
	m.obs.LogInfo("monitor_started",
		Field{Key: "backend", Value: m.prober.Name()},
		Field{Key: "store", Value: m.store.Name()},
		Field{Key: "interval", Value: m.cfg.Interval().String()})
	return nil
}

// Run starts the monitor and blocks until the provided context is cancelled.
// Upon cancellation it attempts a graceful shutdown.
func (m *Monitor) Run(ctx context.Context) error {
	if err := m.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Shutdown(shutdownCtx)
}

// Shutdown stops the sampler, letting an in-flight tick finish, then the
// metrics server and the store resource.
func (m *Monitor) Shutdown(ctx context.Context) error {
	var errs []error

	if m.samplerCancel != nil {
		m.samplerCancel()
		select {
		case <-m.samplerDone:
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("sampler drain: %w", ctx.Err()))
		}
	}

	if m.metricsSrv != nil {
		if err := m.metricsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
	}

	if m.closer != nil {
		if err := m.closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (m *Monitor) startMetrics() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	m.metricsSrv = &http.Server{
		Addr:    m.cfg.Metrics.Addr,
		Handler: mux,
	}

	go func() {
		if err := m.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.obs.LogError("metrics_server_exited", err)
		}
	}()
}

// openStore builds the configured default store and, when the store owns an
// OS resource, the closer Shutdown should release.
func openStore(cfg *StorageConfig) (SampleStore, io.Closer, error) {
	switch cfg.Driver {
	case "sqlite":
		if err := ensureDir(cfg.DSN); err != nil {
			return nil, nil, fmt.Errorf("prepare sqlite path: %w", err)
		}
		db, err := sql.Open("sqlite", cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store.NewSQLiteStore(db, cfg.Table), db, nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		return store.NewPostgresStore(db, cfg.Table), db, nil
	case "file":
		fs := store.NewFileStore(cfg.DSN)
		return fs, fs, nil
	case "memory":
		return store.NewMemStore(), nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: storage driver %q", ErrInvalidArgument, cfg.Driver)
	}
}

// ensureDir creates the parent directory for plain-path DSNs; URI-style DSNs
// are left to the driver.
func ensureDir(dsn string) error {
	if dsn == "" || strings.Contains(dsn, ":") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
