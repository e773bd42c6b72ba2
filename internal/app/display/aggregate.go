package display

import (
	"fmt"
	"math"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
	"github.com/u1and0/DiskUsageMonitor/internal/ports"
)

// Mode selects the transform that turns a window into chart traces. Selector
// strings arriving from the display-mode control are parsed once, at this
// boundary, into the closed enum.
type Mode int

const (
	ModeRealTime Mode = iota
	ModeMinMax
	ModeCandle
)

const (
	modeNameRealTime = "RealTime"
	modeNameMinMax   = "Min-Max"
	modeNameCandle   = "Candle"
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case modeNameRealTime:
		return ModeRealTime, nil
	case modeNameMinMax:
		return ModeMinMax, nil
	case modeNameCandle:
		return ModeCandle, nil
	default:
		return 0, fmt.Errorf("%w: display mode %q", ports.ErrInvalidArgument, s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeRealTime:
		return modeNameRealTime
	case ModeMinMax:
		return modeNameMinMax
	case ModeCandle:
		return modeNameCandle
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var magnitudeSuffixes = []string{"", "k", "M", "G", "T"}

// FormatMagnitude renders a value with two decimals and a decimal magnitude
// suffix: 1500000 becomes "1.50M". Magnitudes past the T range keep the T
// suffix rather than growing further.
func FormatMagnitude(v float64) string {
	last := len(magnitudeSuffixes) - 1
	for _, suffix := range magnitudeSuffixes[:last] {
		if math.Abs(v) < 1000 {
			return fmt.Sprintf("%.2f%s", v, suffix)
		}
		v /= 1000
	}
	return fmt.Sprintf("%.2f%s", v, magnitudeSuffixes[last])
}

// Transform produces chart traces for one display mode.
//
// RealTime keeps both raw columns: size as a line and used as a filled
// line+markers trace. Min-Max keeps the size line and adds flat max/min
// reference traces carrying the window-wide extremes of both columns,
// broadcast to every row. Candle is a recognized selector without a
// transform yet.
func Transform(window domain.SeriesWindow, mode Mode) (domain.DisplaySeries, error) {
	xs := make([]int64, len(window.Samples))
	sizes := make([]float64, len(window.Samples))
	useds := make([]float64, len(window.Samples))
	for i, s := range window.Samples {
		xs[i] = s.Timestamp
		sizes[i] = float64(s.Size)
		useds[i] = float64(s.Used)
	}

	sizeTrace := domain.Trace{Name: "size", LineMode: "lines", X: xs, Y: sizes}

	switch mode {
	case ModeRealTime:
		usedTrace := domain.Trace{
			Name:     "used",
			LineMode: "lines+markers",
			Fill:     "tozeroy",
			X:        xs,
			Y:        useds,
		}
		return domain.DisplaySeries{Traces: []domain.Trace{sizeTrace, usedTrace}}, nil

	case ModeMinMax:
		lo, hi := windowExtremes(sizes, useds)
		maxTrace := domain.Trace{Name: "max", LineMode: "lines", X: xs, Y: broadcast(len(xs), hi)}
		minTrace := domain.Trace{Name: "min", LineMode: "lines", X: xs, Y: broadcast(len(xs), lo)}
		return domain.DisplaySeries{Traces: []domain.Trace{sizeTrace, maxTrace, minTrace}}, nil

	case ModeCandle:
		return domain.DisplaySeries{}, fmt.Errorf("%w: %s", ports.ErrUnsupportedMode, mode)

	default:
		return domain.DisplaySeries{}, fmt.Errorf("%w: display mode %d", ports.ErrInvalidArgument, int(mode))
	}
}

// Summarize expands a sample into the status row: free space, usage
// percentage, and magnitude-formatted renderings of every numeric field. A
// zero-size filesystem reports 0% rather than dividing by zero.
func Summarize(s domain.Sample) domain.StatusSummary {
	free := s.Size - s.Used
	var pct float64
	if s.Size > 0 {
		pct = float64(s.Used) / float64(s.Size) * 100
	}
	return domain.StatusSummary{
		Timestamp: s.Timestamp,
		Size:      FormatMagnitude(float64(s.Size)),
		Used:      FormatMagnitude(float64(s.Used)),
		Free:      FormatMagnitude(float64(free)),
		UsagePct:  FormatMagnitude(pct),
	}
}

// The min-max aggregate is window-wide, not rolling: every row carries the
// same scalar, drawing flat reference lines above and below the series.
func broadcast(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func windowExtremes(cols ...[]float64) (lo, hi float64) {
	first := true
	for _, col := range cols {
		for _, v := range col {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}
