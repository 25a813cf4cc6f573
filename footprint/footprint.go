package footprint

import (
	"fmt"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
)

// Robot holds the outer dimensions of a robot, in field units.
type Robot struct {
	Length float64 // front to back
	Width  float64 // side to side
}

// DefaultRobot is a 16×16 robot.
var DefaultRobot = Robot{Length: 16, Width: 16}

// Box is a robot footprint: front-left, front-right, back-right, back-left.
type Box [4]pedro.Pair

// Corners rotates the rectangle [±length/2]×[±width/2] by heading degrees
// (counter-clockwise) and moves it to center.
func Corners(center pedro.Pair, length, width, heading float64) Box {
	l, w := length/2, width/2
	at := pedro.Rotation(heading).Combine(pedro.Translation(center))
	return Box{
		at.Transform(pedro.P(l, w)),
		at.Transform(pedro.P(l, -w)),
		at.Transform(pedro.P(-l, -w)),
		at.Transform(pedro.P(-l, w)),
	}
}

// At is the robot's footprint at pose.
func (r Robot) At(pose trajectory.Pose) Box {
	return Corners(pose.Pos, r.Length, r.Width, pose.Heading)
}

// InField is a predicate: are all corners on the field?
func (b Box) InField() bool {
	for _, c := range b {
		if !pedro.InField(c) {
			return false
		}
	}
	return true
}

// MinMax returns the smallest and largest x coordinate of the corners.
func (b Box) MinMax() (float64, float64) {
	lo, hi := b[0].X(), b[0].X()
	for _, c := range b[1:] {
		lo = min(lo, c.X())
		hi = max(hi, c.X())
	}
	return lo, hi
}

func (b Box) String() string {
	return fmt.Sprintf("[%s %s %s %s]", b[0], b[1], b[2], b[3])
}

// Footprint is a box together with the pose it was computed for.
type Footprint struct {
	Pose trajectory.Pose
	Box  Box
}
