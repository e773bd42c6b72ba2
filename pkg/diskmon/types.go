package diskmon

import (
	"github.com/u1and0/DiskUsageMonitor/internal/adapters/store"
	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// Sample is one timestamped disk-capacity measurement. It mirrors
// internal/domain.Sample but is exported so custom adapters can reference it.
type Sample = domain.Sample

// SeriesWindow is a bounded run of samples shifted into the display timezone.
type SeriesWindow = domain.SeriesWindow

// Trace is one named numeric series with rendering hints for the frontend.
type Trace = domain.Trace

// DisplaySeries is the chart-ready projection of a window under a display mode.
type DisplaySeries = domain.DisplaySeries

// AxisRange bounds one chart axis.
type AxisRange = domain.AxisRange

// AxisRanges bounds both chart axes.
type AxisRanges = domain.AxisRanges

// RelayoutEvent is the sparse pan/zoom payload supplied by the renderer.
type RelayoutEvent = domain.RelayoutEvent

// StatusSummary is the newest sample expanded with free space and usage percentage.
type StatusSummary = domain.StatusSummary

// UsageProber measures disk capacity for one mount path.
type UsageProber = ports.UsageProber

// SampleStore is the append-only time series keyed by sample timestamp.
type SampleStore = ports.SampleStore

// Observability emits metrics and logs about sampling and window loading.
type Observability = ports.Observability

// Field is a structured log field used by Observability implementations.
type Field = ports.Field

// MemStore is the ephemeral in-memory store.
type MemStore = store.MemStore

// FileStore is the append-only log-file store.
type FileStore = store.FileStore

// SQLStore is the database-backed store in either SQLite or Postgres dialect.
type SQLStore = store.SQLStore

// Relayout keys as emitted by the renderer's pan/zoom events.
const (
	RelayoutXMin = domain.RelayoutXMin
	RelayoutXMax = domain.RelayoutXMax
	RelayoutYMin = domain.RelayoutYMin
	RelayoutYMax = domain.RelayoutYMax
)
