package trajectory

import (
	"fmt"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/BryceTieu/Pedro-Visualzier-18127/bezier"
)

// Pose is the robot's position and heading at one instant, together with
// the segment and curve parameter it was evaluated at.
type Pose struct {
	Pos     pedro.Pair
	Heading float64 // degrees, counter-clockwise from +x
	Segment int
	T       float64 // curve parameter within Segment
}

func (pose Pose) String() string {
	return fmt.Sprintf("%s@%.2f° [seg %d, t=%.4f]", pose.Pos, pose.Heading, pose.Segment, pose.T)
}

// PoseAt returns the robot pose at overall path position percent in
// [0,100), as used for motion: the local segment parameter is eased.
// prev is the heading held where a tangential heading is undefined.
func (path *Path) PoseAt(percent float64, prev float64) Pose {
	if path.N() == 0 {
		return Pose{Pos: path.Start.Pos, Heading: prev}
	}
	i, local := Locate(percent, path.N())
	return path.SegmentPose(i, Ease(local), prev)
}

// PreviewPoseAt is like PoseAt, but with the raw, uneased local parameter.
func (path *Path) PreviewPoseAt(percent float64, prev float64) Pose {
	if path.N() == 0 {
		return Pose{Pos: path.Start.Pos, Heading: prev}
	}
	i, local := Locate(percent, path.N())
	return path.SegmentPose(i, local, prev)
}

// SegmentPose evaluates segment i at curve parameter t in [0,1].
func (path *Path) SegmentPose(i int, t float64, prev float64) Pose {
	knots := path.Knots(i)
	return Pose{
		Pos:     bezier.Eval(t, knots),
		Heading: headingOf(path.Lines[i].End.Heading, knots, t, prev),
		Segment: i,
		T:       t,
	}
}

// StartHeading is the robot's heading at the start point, following the
// start point's own heading rule applied to the first segment.
func (path *Path) StartHeading() float64 {
	if path.Start.Heading == nil {
		return 0
	}
	if path.N() == 0 {
		switch h := path.Start.Heading.(type) {
		case Linear:
			return pedro.NormalizeDeg(h.StartDeg)
		case Constant:
			return pedro.NormalizeDeg(h.Degrees)
		}
		return 0
	}
	return headingOf(path.Start.Heading, path.Knots(0), 0, 0)
}
