package footprint

import (
	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
)

// Sampling resolution, in steps per segment.
const (
	DefaultSteps  = 20
	CrossingSteps = 50
)

// Mode selects the segments a sweep covers.
type Mode int

const (
	AllSegments    Mode = iota // the whole path
	CurrentSegment             // the segment containing Options.Percent
)

// Options configures a sweep.
type Options struct {
	Steps   int     // samples per segment, DefaultSteps if 0
	Mode    Mode
	Percent float64 // playback position for CurrentSegment
}

// Sweep samples the robot's footprint along path at Steps+1 evenly spaced
// curve parameters per segment. Segment boundaries are sampled once. The
// heading is carried from sample to sample, starting with the path's start
// heading, so undefined tangents hold the previous orientation.
func (r Robot) Sweep(path *trajectory.Path, opts Options) []Footprint {
	n := path.N()
	if n == 0 {
		return nil
	}
	steps := opts.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}
	first, last := 0, n-1
	if opts.Mode == CurrentSegment {
		first, _ = trajectory.Locate(opts.Percent, n)
		last = first
	}
	fps := make([]Footprint, 0, (last-first+1)*steps+1)
	prev := path.StartHeading()
	for i := first; i <= last; i++ {
		k := 1
		if i == first {
			k = 0
		}
		for ; k <= steps; k++ {
			pose := path.SegmentPose(i, float64(k)/float64(steps), prev)
			prev = pose.Heading
			fps = append(fps, Footprint{Pose: pose, Box: r.At(pose)})
		}
	}
	return fps
}

// Side of the centre line: -1 left, +1 right, 0 on the line.
func side(x float64) int {
	switch {
	case x < pedro.CenterLineX:
		return -1
	case x > pedro.CenterLineX:
		return 1
	}
	return 0
}

// CenterLineCrossing sweeps path at fine resolution and reports the first
// footprint which reaches the other half of the field. The robot commits to
// the side of the start point; a robot starting on the centre line commits
// to no side and crosses as soon as a footprint straddles the line.
func (r Robot) CenterLineCrossing(path *trajectory.Path) (Footprint, bool) {
	home := side(path.Start.Pos.X())
	for _, fp := range r.Sweep(path, Options{Steps: CrossingSteps}) {
		lo, hi := fp.Box.MinMax()
		sl, sh := side(lo), side(hi)
		crossed := false
		switch home {
		case -1:
			crossed = sh > 0
		case 1:
			crossed = sl < 0
		default:
			crossed = sl < 0 && sh > 0
		}
		if crossed {
			tracer().Debugf("centre line crossed in segment %d at t=%.2f", fp.Pose.Segment, fp.Pose.T)
			return fp, true
		}
	}
	return Footprint{}, false
}

// OutOfField returns the footprints of a sweep which are not entirely on
// the field.
func OutOfField(fps []Footprint) []Footprint {
	var out []Footprint
	for _, fp := range fps {
		if !fp.Box.InField() {
			out = append(out, fp)
		}
	}
	return out
}
