package display

import (
	"testing"
	"time"

	"github.com/u1and0/DiskUsageMonitor/internal/domain"
)

func rangesFor(t *testing.T, timestamps []int64, ys []float64, visible int) domain.AxisRanges {
	t.Helper()
	series := domain.DisplaySeries{Traces: []domain.Trace{{Name: "size", X: timestamps, Y: ys}}}
	return ComputeRanges(series, 10*time.Second, visible)
}

func TestComputeRangesShortSeriesStartsAtFirstPoint(t *testing.T) {
	got := rangesFor(t, []int64{10, 20, 30}, []float64{1000, 3000, 2000}, 100)

	if got.X.Min != 10 {
		t.Fatalf("expected x min 10, got %f", got.X.Min)
	}
	if got.X.Max != 40 {
		t.Fatalf("expected x max 40 (last + interval), got %f", got.X.Max)
	}
	if got.Y.Min != 0 {
		t.Fatalf("expected y min 0, got %f", got.Y.Min)
	}
	if want := 3000 * 1.05; got.Y.Max != want {
		t.Fatalf("expected y max %f, got %f", want, got.Y.Max)
	}
}

func TestComputeRangesLongSeriesStartsTenFromLast(t *testing.T) {
	var xs []int64
	var ys []float64
	for i := 1; i <= 20; i++ {
		xs = append(xs, int64(i*10))
		ys = append(ys, 100)
	}

	got := rangesFor(t, xs, ys, 100)

	// 20 points, all visible: the default view begins at the 10th from last.
	if got.X.Min != float64(xs[10]) {
		t.Fatalf("expected x min %d, got %f", xs[10], got.X.Min)
	}
	if got.X.Max != 210 {
		t.Fatalf("expected x max 210, got %f", got.X.Max)
	}
}

func TestComputeRangesLimitsVisibilityWindow(t *testing.T) {
	var xs []int64
	var ys []float64
	for i := 1; i <= 150; i++ {
		xs = append(xs, int64(i))
		if i <= 50 {
			ys = append(ys, 9999)
		} else {
			ys = append(ys, 100)
		}
	}

	got := rangesFor(t, xs, ys, 100)

	// Only the newest 100 points count: the early 9999s are out of view.
	if want := 100 * 1.05; got.Y.Max != want {
		t.Fatalf("expected y max %f from visible points only, got %f", want, got.Y.Max)
	}
	if got.X.Min != float64(xs[140]) {
		t.Fatalf("expected x min %d, got %f", xs[140], got.X.Min)
	}
	if got.X.Max != float64(xs[149])+10 {
		t.Fatalf("expected x max %f, got %f", float64(xs[149])+10, got.X.Max)
	}
}

func TestComputeRangesConsidersAllTracesForY(t *testing.T) {
	series := domain.DisplaySeries{Traces: []domain.Trace{
		{Name: "size", X: []int64{10, 20}, Y: []float64{1000, 1000}},
		{Name: "used", X: []int64{10, 20}, Y: []float64{500, 4000}},
	}}

	got := ComputeRanges(series, 10*time.Second, 100)
	if want := 4000 * 1.05; got.Y.Max != want {
		t.Fatalf("expected y max %f across traces, got %f", want, got.Y.Max)
	}
}

func TestComputeRangesEmptySeries(t *testing.T) {
	got := ComputeRanges(domain.DisplaySeries{}, 10*time.Second, 100)
	if got != (domain.AxisRanges{}) {
		t.Fatalf("expected zero ranges for empty series, got %+v", got)
	}
}

func TestReconcileWithoutEventKeepsComputed(t *testing.T) {
	computed := domain.AxisRanges{
		X: domain.AxisRange{Min: 10, Max: 40},
		Y: domain.AxisRange{Min: 0, Max: 3150},
	}

	for name, event := range map[string]domain.RelayoutEvent{
		"nil":            nil,
		"empty":          {},
		"irrelevant key": {"autosize": 1},
	} {
		if got := Reconcile(computed, event); got != computed {
			t.Fatalf("%s: expected computed ranges to pass through, got %+v", name, got)
		}
	}
}

func TestReconcileUserBoundsWin(t *testing.T) {
	computed := domain.AxisRanges{
		X: domain.AxisRange{Min: 10, Max: 40},
		Y: domain.AxisRange{Min: 0, Max: 3150},
	}
	event := domain.RelayoutEvent{
		domain.RelayoutXMin: 15,
		domain.RelayoutXMax: 25,
	}

	got := Reconcile(computed, event)
	if got.X.Min != 15 || got.X.Max != 25 {
		t.Fatalf("expected user x bounds, got %+v", got.X)
	}
	// Omitted axis keeps the computed bounds.
	if got.Y != computed.Y {
		t.Fatalf("expected computed y bounds, got %+v", got.Y)
	}
}

func TestReconcileFullOverride(t *testing.T) {
	computed := domain.AxisRanges{
		X: domain.AxisRange{Min: 10, Max: 40},
		Y: domain.AxisRange{Min: 0, Max: 3150},
	}
	event := domain.RelayoutEvent{
		domain.RelayoutXMin: 1,
		domain.RelayoutXMax: 2,
		domain.RelayoutYMin: 3,
		domain.RelayoutYMax: 4,
	}

	got := Reconcile(computed, event)
	want := domain.AxisRanges{
		X: domain.AxisRange{Min: 1, Max: 2},
		Y: domain.AxisRange{Min: 3, Max: 4},
	}
	if got != want {
		t.Fatalf("expected full override %+v, got %+v", want, got)
	}
}
