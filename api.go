package diskmon

import (
	"database/sql"
	"time"

	base "github.com/u1and0/DiskUsageMonitor/pkg/diskmon"
)

// Re-exported errors for convenience.
var (
	ErrProbeFailed        = base.ErrProbeFailed
	ErrDuplicateTimestamp = base.ErrDuplicateTimestamp
	ErrStoreUnavailable   = base.ErrStoreUnavailable
	ErrInvalidArgument    = base.ErrInvalidArgument
	ErrUnsupportedMode    = base.ErrUnsupportedMode
)

// Type aliases so consumers can import github.com/u1and0/DiskUsageMonitor directly.
type (
	Config        = base.Config
	ProbeConfig   = base.ProbeConfig
	SamplerConfig = base.SamplerConfig
	StorageConfig = base.StorageConfig
	WindowConfig  = base.WindowConfig
	MetricsConfig = base.MetricsConfig
	Monitor       = base.Monitor
	MonitorOption = base.MonitorOption
	RefreshResult = base.RefreshResult
	Sample        = base.Sample
	SeriesWindow  = base.SeriesWindow
	Trace         = base.Trace
	DisplaySeries = base.DisplaySeries
	AxisRange     = base.AxisRange
	AxisRanges    = base.AxisRanges
	RelayoutEvent = base.RelayoutEvent
	StatusSummary = base.StatusSummary
	Mode          = base.Mode
	UsageProber   = base.UsageProber
	SampleStore   = base.SampleStore
	Observability = base.Observability
	Field         = base.Field
	MemStore      = base.MemStore
	FileStore     = base.FileStore
	SQLStore      = base.SQLStore
)

// Display modes and relayout keys.
const (
	ModeRealTime = base.ModeRealTime
	ModeMinMax   = base.ModeMinMax
	ModeCandle   = base.ModeCandle

	RelayoutXMin = base.RelayoutXMin
	RelayoutXMax = base.RelayoutXMax
	RelayoutYMin = base.RelayoutYMin
	RelayoutYMax = base.RelayoutYMax
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

// Monitor builders and options.
func Conf(path string, opts ...MonitorOption) (*Monitor, error) {
	return base.Conf(path, opts...)
}

func NewMonitor(cfg *Config, opts ...MonitorOption) (*Monitor, error) {
	return base.NewMonitor(cfg, opts...)
}

func WithProber(p UsageProber) MonitorOption {
	return base.WithProber(p)
}

func WithStore(s SampleStore) MonitorOption {
	return base.WithStore(s)
}

func WithObservability(obs Observability) MonitorOption {
	return base.WithObservability(obs)
}

// Probe and store adapters.
func NewProber(backend, mountPath string, timeout time.Duration) (UsageProber, error) {
	return base.NewProber(backend, mountPath, timeout)
}

func NewMemStore() *MemStore {
	return base.NewMemStore()
}

func NewFileStore(path string) *FileStore {
	return base.NewFileStore(path)
}

func NewSQLiteStore(db *sql.DB, table string) *SQLStore {
	return base.NewSQLiteStore(db, table)
}

func NewPostgresStore(db *sql.DB, table string) *SQLStore {
	return base.NewPostgresStore(db, table)
}

// Display helpers.
func ParseMode(name string) (Mode, error) {
	return base.ParseMode(name)
}

func FormatMagnitude(v float64) string {
	return base.FormatMagnitude(v)
}

func Summarize(s Sample) StatusSummary {
	return base.Summarize(s)
}

func Transform(window SeriesWindow, mode Mode) (DisplaySeries, error) {
	return base.Transform(window, mode)
}

func ComputeRanges(series DisplaySeries, interval time.Duration, visiblePoints int) AxisRanges {
	return base.ComputeRanges(series, interval, visiblePoints)
}

func Reconcile(computed AxisRanges, event RelayoutEvent) AxisRanges {
	return base.Reconcile(computed, event)
}
