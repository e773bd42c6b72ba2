package diskmon

import (
	"context"
	"time"

	"github.com/u1and0/DiskUsageMonitor/internal/app/display"
)

// RefreshResult carries everything the renderer needs for one redraw.
type RefreshResult struct {
	// Series holds the chart traces for the requested display mode.
	Series DisplaySeries
	// Ranges are the view bounds after reconciling with the relayout event.
	Ranges AxisRanges
	// Summary is the status row for the newest sample; nil while the store
	// is still empty.
	Summary *StatusSummary
}

// Refresh runs one load → transform → reconcile cycle. Renderers call it on
// every tick of their redraw clock and on user interaction. The mode string
// comes from the display-mode control; relayout carries the user's last
// pan/zoom, or nil when the view is untouched.
func (m *Monitor) Refresh(ctx context.Context, mode string, relayout RelayoutEvent) (*RefreshResult, error) {
	parsed, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	window, err := m.loader.Load(ctx, m.cfg.Window.LimitRows)
	if err != nil {
		m.obs.LogError("window_load_failed", err)
		return nil, err
	}
	m.obs.ObserveLatency("diskmon_window_load_seconds", time.Since(start).Seconds())

	series, err := display.Transform(window, parsed)
	if err != nil {
		return nil, err
	}

	computed := display.ComputeRanges(series, m.cfg.Interval(), m.cfg.Window.VisiblePoints)
	ranges := display.Reconcile(computed, relayout)

	res := &RefreshResult{Series: series, Ranges: ranges}
	if n := len(window.Samples); n > 0 {
		summary := display.Summarize(window.Samples[n-1])
		res.Summary = &summary
	}
	return res, nil
}
