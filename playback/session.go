package playback

import (
	"math"
	"time"

	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
)

// Progress caps. Both values stay below 100 to avoid the ambiguity of the
// exact end position.
const (
	RobotCap   = 99.999999
	PercentCap = 99.999999
)

// Completion thresholds: the only point where playback loops back to 0.
const (
	robotDone   = 99.999
	percentDone = 99.9
)

// Config configures a session.
type Config struct {
	Speed float64 // playback speed factor, 1 is real time
}

// DefaultConfig plays in real time.
func DefaultConfig() Config {
	return Config{Speed: 1}
}

// State is a snapshot of the playback state.
type State struct {
	Percent      float64
	RobotPercent float64
	Playing      bool
	WaitingUntil *time.Time // end of the current dwell, nil if moving
	LastSegment  int
}

// Timing describes how long one pass over a path takes at speed 1.
type Timing struct {
	BaseMovementMs float64 // time spent moving
	TotalWaitMs    float64 // time spent dwelling
}

// TotalMs is the duration of a full pass.
func (tm Timing) TotalMs() float64 {
	return tm.BaseMovementMs + tm.TotalWaitMs
}

// MovementRatio is the share of a pass spent moving.
func (tm Timing) MovementRatio() float64 {
	if tm.TotalMs() == 0 {
		return 1
	}
	return tm.BaseMovementMs / tm.TotalMs()
}

// TimingOf returns the pass duration of a path. Every segment takes the
// same movement time.
func TimingOf(path *trajectory.Path) Timing {
	return Timing{
		BaseMovementMs: 100 * float64(path.N()) / 0.065,
		TotalWaitMs:    path.TotalWait() * 1000,
	}
}

// Session is the playback state machine for one path.
type Session struct {
	path   *trajectory.Path
	sched  Scheduler
	speed  float64
	cancel func()

	percent   float64
	robot     float64
	playing   bool
	waiting   bool
	waitUntil time.Time
	finalWait bool // sentinel: final segment's dwell has been triggered
	lastIndex int
	lastTick  time.Time
	pose      trajectory.Pose
}

// NewSession creates an idle session at the start of path. The path stays
// owned by the caller; call SetPath after replacing it.
func NewSession(path *trajectory.Path, sched Scheduler, config Config) *Session {
	s := &Session{sched: sched, speed: config.Speed}
	if s.speed <= 0 {
		s.speed = 1
	}
	s.SetPath(path)
	return s
}

// SetPath switches to another (or an edited) path, keeping the timeline
// position.
func (s *Session) SetPath(path *trajectory.Path) {
	s.path = path
	s.pose = trajectory.Pose{Pos: path.Start.Pos, Heading: path.StartHeading()}
	s.sync(s.percent)
}

// SetSpeed changes the playback speed. Non-positive values are ignored.
func (s *Session) SetSpeed(speed float64) {
	if speed > 0 {
		s.speed = speed
	}
}

// Timing returns the pass duration of the current path.
func (s *Session) Timing() Timing {
	return TimingOf(s.path)
}

// State returns a snapshot of the playback state.
func (s *Session) State() State {
	st := State{
		Percent:      s.percent,
		RobotPercent: s.robot,
		Playing:      s.playing,
		LastSegment:  s.lastIndex,
	}
	if s.waiting {
		until := s.waitUntil
		st.WaitingUntil = &until
	}
	return st
}

// Pose returns the robot pose at the current motion position.
func (s *Session) Pose() trajectory.Pose {
	return s.pose
}

// Play starts playback from the current timeline position.
func (s *Session) Play() {
	if s.playing || s.path.N() == 0 {
		return
	}
	s.playing = true
	s.lastTick = s.sched.Now()
	s.sync(s.percent)
	tracer().Debugf("play from %.3f%% (robot %.3f%%)", s.percent, s.robot)
	s.cancel = s.sched.Schedule(s.frame)
}

// Pause freezes playback and cancels the pending frame.
func (s *Session) Pause() {
	if !s.playing {
		return
	}
	s.playing = false
	s.waiting = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	tracer().Debugf("paused at %.3f%%", s.percent)
}

// ScrubTo moves the timeline to percent and derives the robot position
// from it.
func (s *Session) ScrubTo(percent float64) {
	s.sync(percent)
}

func (s *Session) frame(now time.Time) {
	s.cancel = nil
	s.Tick(now)
	if s.playing {
		s.cancel = s.sched.Schedule(s.frame)
	}
}

// Tick advances playback to time now. It does nothing unless playing.
func (s *Session) Tick(now time.Time) {
	n := s.path.N()
	if !s.playing || n == 0 {
		return
	}
	dt := float64(now.Sub(s.lastTick)) / float64(time.Millisecond)
	s.lastTick = now
	if dt < 0 {
		dt = 0
	}
	timing := s.Timing()
	if s.waiting {
		s.percent += dt / timing.TotalMs() * 100 * s.speed
		if !now.Before(s.waitUntil) {
			s.waiting = false
		}
	} else {
		inc := (0.65 / float64(n)) * (dt * 0.1) * s.speed
		s.percent += inc * timing.MovementRatio()
		s.robot = math.Min(s.robot+inc, RobotCap)
		s.checkSegmentWait(now)
		if s.robot >= RobotCap && !s.waiting && !s.finalWait {
			s.finalWait = true
			if w := s.path.Lines[n-1].Wait; w > 0 {
				s.startWait(now, w*1000)
			}
		}
	}
	s.percent = math.Min(s.percent, PercentCap)
	if s.robot >= robotDone && !s.waiting && s.percent >= percentDone {
		tracer().Debugf("pass complete, looping")
		s.percent, s.robot = 0, 0
		s.lastIndex = 0
		s.finalWait = false
	}
	s.updatePose()
}

// A dwell starts when the robot leaves a segment which has a wait time. The
// robot is held exactly at the segment's end for the dwell.
func (s *Session) checkSegmentWait(now time.Time) {
	n := s.path.N()
	idx, _ := trajectory.Locate(s.robot, n)
	for k := s.lastIndex; k < idx; k++ {
		s.lastIndex = k + 1
		if w := s.path.Lines[k].Wait; w > 0 {
			s.robot = float64(k+1) * 100 / float64(n)
			s.startWait(now, w*1000)
			return
		}
	}
}

func (s *Session) startWait(now time.Time, ms float64) {
	s.waiting = true
	s.waitUntil = now.Add(time.Duration(ms / s.speed * float64(time.Millisecond)))
	tracer().Debugf("dwell at %.3f%% until %s", s.robot, s.waitUntil.Format("15:04:05.000"))
}

// sync sets the timeline to percent and re-derives everything else from it.
func (s *Session) sync(percent float64) {
	if math.IsNaN(percent) {
		percent = 0
	}
	s.percent = math.Max(0, math.Min(percent, PercentCap))
	robot, leftMs, final := RobotPercentAt(s.path, s.percent)
	s.robot = robot
	s.lastIndex, _ = trajectory.Locate(robot, s.path.N())
	s.finalWait = final || robot >= RobotCap
	s.waiting = false
	if s.playing && leftMs > 0 {
		s.startWait(s.sched.Now(), leftMs)
	}
	s.updatePose()
}

func (s *Session) updatePose() {
	if s.path.N() == 0 {
		return
	}
	s.pose = s.path.PoseAt(s.robot, s.pose.Heading)
}

// RobotPercentAt maps a timeline position onto the motion position of a
// path. Movement takes the same time for every segment and each segment's
// dwell follows its movement. Within a dwell the motion position is pinned
// at the segment's end; the remaining dwell time is returned as well, and
// whether it is the dwell of the final segment.
func RobotPercentAt(path *trajectory.Path, percent float64) (robot, waitLeftMs float64, final bool) {
	n := path.N()
	if n == 0 {
		return 0, 0, false
	}
	timing := TimingOf(path)
	elapsed := percent / 100 * timing.TotalMs()
	move := timing.BaseMovementMs / float64(n)
	for i := 0; i < n; i++ {
		if elapsed < move {
			return math.Min((float64(i)+elapsed/move)*100/float64(n), RobotCap), 0, false
		}
		elapsed -= move
		if w := path.Lines[i].Wait * 1000; elapsed < w {
			return math.Min(float64(i+1)*100/float64(n), RobotCap), w - elapsed, i == n-1
		}
		elapsed -= math.Max(path.Lines[i].Wait*1000, 0)
	}
	return RobotCap, 0, false
}
