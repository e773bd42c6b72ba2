package display

import (
	"time"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
)

// ComputeRanges derives the default view bounds from a display series. The
// x-axis starts at the tenth-from-last point (the first point when the
// series holds ten or fewer) and extends one sampling interval past the
// newest point, leaving room for the next sample. The y-axis spans zero to
// the visible maximum plus 5% headroom. Visibility caps at the newest
// visiblePoints rows.
func ComputeRanges(series domain.DisplaySeries, interval time.Duration, visiblePoints int) domain.AxisRanges {
	xs := xDomain(series)
	if len(xs) == 0 || visiblePoints <= 0 {
		return domain.AxisRanges{}
	}

	start := len(xs) - visiblePoints
	if start < 0 {
		start = 0
	}
	visible := xs[start:]

	var xMin float64
	if len(xs) > 10 && len(visible) >= 10 {
		xMin = float64(visible[len(visible)-10])
	} else {
		xMin = float64(xs[0])
	}
	xMax := float64(visible[len(visible)-1]) + interval.Seconds()

	var yMax float64
	for _, tr := range series.Traces {
		s := len(tr.Y) - visiblePoints
		if s < 0 {
			s = 0
		}
		for _, v := range tr.Y[s:] {
			if v > yMax {
				yMax = v
			}
		}
	}

	return domain.AxisRanges{
		X: domain.AxisRange{Min: xMin, Max: xMax},
		Y: domain.AxisRange{Min: 0, Max: yMax * 1.05},
	}
}

func xDomain(series domain.DisplaySeries) []int64 {
	for _, tr := range series.Traces {
		if len(tr.X) > 0 {
			return tr.X
		}
	}
	return nil
}

// Reconcile decides whether freshly computed bounds or the user's last
// pan/zoom win. Any axis bound present in the relayout event means the user
// moved the view, so their values take precedence; bounds the sparse event
// omits keep their computed values, leaving the result fully specified.
// Without a relayout the computed bounds pass through untouched.
func Reconcile(computed domain.AxisRanges, event domain.RelayoutEvent) domain.AxisRanges {
	if !event.HasRange() {
		return computed
	}
	out := computed
	if v, ok := event[domain.RelayoutXMin]; ok {
		out.X.Min = v
	}
	if v, ok := event[domain.RelayoutXMax]; ok {
		out.X.Max = v
	}
	if v, ok := event[domain.RelayoutYMin]; ok {
		out.Y.Min = v
	}
	if v, ok := event[domain.RelayoutYMax]; ok {
		out.Y.Max = v
	}
	return out
}
