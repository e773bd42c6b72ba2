package domain

// Trace is one named numeric series over a shared time domain. LineMode and
// Fill are rendering hints passed through to the charting frontend.
type Trace struct {
	Name     string    `json:"name"`
	LineMode string    `json:"mode,omitempty"`
	Fill     string    `json:"fill,omitempty"`
	X        []int64   `json:"x"`
	Y        []float64 `json:"y"`
}

// DisplaySeries is the chart-ready projection of one SeriesWindow under a
// display mode.
type DisplaySeries struct {
	Traces []Trace `json:"traces"`
}

// AxisRange bounds one chart axis. X bounds are epoch seconds, Y bounds raw
// byte values.
type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AxisRanges bounds both chart axes.
type AxisRanges struct {
	X AxisRange `json:"xaxis"`
	Y AxisRange `json:"yaxis"`
}

// Relayout keys as emitted by the renderer's pan/zoom events.
const (
	RelayoutXMin = "xaxis.range[0]"
	RelayoutXMax = "xaxis.range[1]"
	RelayoutYMin = "yaxis.range[0]"
	RelayoutYMax = "yaxis.range[1]"
)

// RelayoutEvent is the sparse pan/zoom payload supplied by the renderer. A
// nil or empty event means the user has not moved the view.
type RelayoutEvent map[string]float64

// HasRange reports whether the event carries at least one axis bound.
func (e RelayoutEvent) HasRange() bool {
	if len(e) == 0 {
		return false
	}
	for _, key := range []string{RelayoutXMin, RelayoutXMax, RelayoutYMin, RelayoutYMax} {
		if _, ok := e[key]; ok {
			return true
		}
	}
	return false
}

// StatusSummary is the newest sample expanded with derived free space and
// usage percentage, each numeric field magnitude-formatted for display.
type StatusSummary struct {
	Timestamp int64  `json:"timestamp"`
	Size      string `json:"size"`
	Used      string `json:"used"`
	Free      string `json:"free"`
	UsagePct  string `json:"usage_pct"`
}
