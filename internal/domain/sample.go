package domain

import "time"

// Sample is the canonical unit of disk telemetry: one capacity measurement
// of a filesystem at one point in time. Timestamp is seconds since the Unix
// epoch in UTC and doubles as the storage key; Size and Used are byte counts.
type Sample struct {
	Timestamp int64 `json:"timestamp"`
	Size      int64 `json:"size"`
	Used      int64 `json:"used"`
}

// Shift returns a copy of the sample with its timestamp moved by offset.
// The shift is presentation-only; persisted samples always stay in UTC.
func (s Sample) Shift(offset time.Duration) Sample {
	s.Timestamp += int64(offset / time.Second)
	return s
}

// SeriesWindow is a bounded run of samples in ascending timestamp order with
// the display timezone offset already applied to every timestamp.
type SeriesWindow struct {
	Samples []Sample      `json:"samples"`
	Offset  time.Duration `json:"-"`
}
