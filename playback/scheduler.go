package playback

import "time"

// Scheduler delivers frame callbacks, one display refresh at a time.
type Scheduler interface {
	// Now is the scheduler's current time.
	Now() time.Time
	// Schedule requests a single call of frame at the next refresh. The
	// returned function cancels the request if it has not fired yet.
	Schedule(frame func(now time.Time)) (cancel func())
}

// Frames is a Scheduler driven by the caller. It holds at most one pending
// frame, which is delivered by Advance. Simulations and tests use it as a
// virtual display.
type Frames struct {
	now     time.Time
	pending func(time.Time)
	seq     uint64
}

// NewFrames creates a manual frame source with its clock set to start.
func NewFrames(start time.Time) *Frames {
	return &Frames{now: start}
}

// Now implements Scheduler.
func (f *Frames) Now() time.Time {
	return f.now
}

// Schedule implements Scheduler. A frame scheduled while another one is
// pending replaces it.
func (f *Frames) Schedule(frame func(time.Time)) func() {
	if f.pending != nil {
		tracer().Errorf("frame scheduled while another one is pending")
	}
	f.seq++
	seq := f.seq
	f.pending = frame
	return func() {
		if f.seq == seq {
			f.pending = nil
		}
	}
}

// Pending is a predicate: is a frame waiting for delivery?
func (f *Frames) Pending() bool {
	return f.pending != nil
}

// Advance moves the clock forward by dt and delivers the pending frame, if
// any. It reports whether a frame was delivered.
func (f *Frames) Advance(dt time.Duration) bool {
	f.now = f.now.Add(dt)
	frame := f.pending
	if frame == nil {
		return false
	}
	f.pending = nil
	frame(f.now)
	return true
}
