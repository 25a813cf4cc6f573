package trajectory

import (
	"fmt"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
)

// Heading is the rule governing the robot's orientation across a segment.
// It is one of Linear, Constant or Tangential.
type Heading interface {
	Mode() string
	isHeading()
}

// Heading mode names, as used in trajectory files.
const (
	ModeLinear     = "linear"
	ModeConstant   = "constant"
	ModeTangential = "tangential"
)

// Linear sweeps the heading from StartDeg to EndDeg over the segment, along
// the shortest rotation.
type Linear struct {
	StartDeg float64
	EndDeg   float64
}

// Constant holds the heading fixed for the whole segment.
type Constant struct {
	Degrees float64
}

// Tangential makes the robot face its direction of travel, or the opposite
// direction if Reverse is set.
type Tangential struct {
	Reverse bool
}

func (Linear) Mode() string     { return ModeLinear }
func (Constant) Mode() string   { return ModeConstant }
func (Tangential) Mode() string { return ModeTangential }

func (Linear) isHeading()     {}
func (Constant) isHeading()   {}
func (Tangential) isHeading() {}

// Point is a knot of the path together with its heading rule.
type Point struct {
	Pos     pedro.Pair
	Heading Heading
}

// At is a quick notation for constructing a point.
func At(x, y float64, h Heading) Point {
	return Point{Pos: pedro.P(x, y), Heading: h}
}

// X is the x-coordinate of the point.
func (pt Point) X() float64 {
	return pt.Pos.X()
}

// Y is the y-coordinate of the point.
func (pt Point) Y() float64 {
	return pt.Pos.Y()
}

func (pt Point) String() string {
	if pt.Heading == nil {
		return fmt.Sprintf("%s{<no heading>}", pt.Pos)
	}
	return fmt.Sprintf("%s%+v", pt.Pos, pt.Heading)
}

func (pt Point) validate() error {
	if !pt.Pos.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidPoint, pt.Pos)
	}
	if pt.Heading == nil {
		return ErrNoHeading
	}
	return nil
}
