package core

import (
	"fmt"
	"time"
)

// FrameTiming holds the measured phases of a single frame.
type FrameTiming struct {
	Movement time.Duration
	Coloring time.Duration
	Total    time.Duration
}

// FrameStats accumulates frame latencies. The first frame it sees only sets
// the reference finish time; totals are measured between consecutive finishes.
type FrameStats struct {
	sum    FrameTiming
	frames int

	previousFinish time.Time
}

// NewFrameStats constructs an empty accumulator.
func NewFrameStats() *FrameStats {
	return &FrameStats{}
}

// Start marks the reference finish time without recording a frame.
func (f *FrameStats) Start(finish time.Time) {
	f.previousFinish = finish
}

// Record adds one frame finishing at finish.
func (f *FrameStats) Record(movement, coloring time.Duration, finish time.Time) FrameTiming {
	if f.previousFinish.IsZero() {
		f.previousFinish = finish
	}
	t := FrameTiming{Movement: movement, Coloring: coloring, Total: finish.Sub(f.previousFinish)}
	f.previousFinish = finish

	f.sum.Movement += t.Movement
	f.sum.Coloring += t.Coloring
	f.sum.Total += t.Total
	f.frames++
	return t
}

// Frames returns the number of recorded frames.
func (f *FrameStats) Frames() int { return f.frames }

// Average returns the mean over all recorded frames.
func (f *FrameStats) Average() FrameTiming {
	if f.frames == 0 {
		return FrameTiming{}
	}
	n := time.Duration(f.frames)
	return FrameTiming{
		Movement: f.sum.Movement / n,
		Coloring: f.sum.Coloring / n,
		Total:    f.sum.Total / n,
	}
}

// Reset forgets every recorded frame.
func (f *FrameStats) Reset() {
	*f = FrameStats{}
}

// String renders the timing as "movement + coloring : total" in milliseconds.
func (t FrameTiming) String() string {
	return fmt.Sprintf("%d + %d : %dms", t.Movement.Milliseconds(), t.Coloring.Milliseconds(), t.Total.Milliseconds())
}
