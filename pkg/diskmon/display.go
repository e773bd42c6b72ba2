package diskmon

import (
	"time"

	"github.com/u1and0/DiskUsageMonitor/internal/app/display"
)

// Mode selects the display transform applied to a loaded window.
type Mode = display.Mode

// Display modes accepted by Refresh and Transform.
const (
	ModeRealTime = display.ModeRealTime
	ModeMinMax   = display.ModeMinMax
	ModeCandle   = display.ModeCandle
)

// ParseMode maps a selector string from the display-mode control onto the
// closed Mode enum. Unknown values fail with ErrInvalidArgument.
func ParseMode(s string) (Mode, error) {
	return display.ParseMode(s)
}

// FormatMagnitude renders a numeric value in compact k/M/G/T units.
func FormatMagnitude(v float64) string {
	return display.FormatMagnitude(v)
}

// Summarize derives the free-space and usage status row from a sample.
func Summarize(s Sample) StatusSummary {
	return display.Summarize(s)
}

// Transform produces chart traces from a window, for embedders that manage
// their own store and windowing.
func Transform(window SeriesWindow, mode Mode) (DisplaySeries, error) {
	return display.Transform(window, mode)
}

// ComputeRanges derives default view bounds from a display series.
func ComputeRanges(series DisplaySeries, interval time.Duration, visiblePoints int) AxisRanges {
	return display.ComputeRanges(series, interval, visiblePoints)
}

// Reconcile applies the user's last pan/zoom over freshly computed bounds.
func Reconcile(computed AxisRanges, event RelayoutEvent) AxisRanges {
	return display.Reconcile(computed, event)
}
