/*
Package playback animates a simulated robot along a trajectory.

A Session advances two coupled progress values. Percent is the timeline
position, which keeps moving while the robot dwells at a segment's end;
RobotPercent is the motion position, which freezes during a dwell. Both are
in [0,100) and both return to 0 only when the whole path, including the
final dwell, has been played.

Time is taken from frame callbacks. A Scheduler delivers exactly one
pending frame at a time, in the manner of a display refresh callback; the
session re-schedules itself while playing, and Pause cancels the pending
frame. Frame intervals vary, so every increment is scaled by the elapsed
time. All calls into a Session must come from one goroutine.

	frames := playback.NewFrames(time.Now())
	session := playback.NewSession(path, frames, playback.DefaultConfig())
	session.ScrubTo(40)
	session.Play()
	for frames.Advance(16 * time.Millisecond) {
		draw(session.Pose())
	}

# BSD License

# Copyright (c) Bryce Tieu

All rights reserved.

Please refer to the license file for more information.
*/
package playback

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'pedro.playback'
func tracer() tracing.Trace {
	return tracing.Select("pedro.playback")
}
