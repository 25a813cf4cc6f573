package trajectory

import (
	"errors"
	"fmt"
	"math"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
)

var (
	// ErrEmptyPath indicates a path without segments.
	ErrEmptyPath = errors.New("path has no segments")
	// ErrNoHeading indicates a point without heading rule.
	ErrNoHeading = errors.New("point has no heading")
	// ErrInvalidPoint indicates a coordinate containing NaN/Inf.
	ErrInvalidPoint = errors.New("point has invalid coordinate")
	// ErrNegativeWait indicates a segment with a negative dwell time.
	ErrNegativeWait = errors.New("segment has negative wait time")
	// ErrNoSegment indicates a segment index out of range.
	ErrNoSegment = errors.New("no such segment")
)

// Segment is one curved or straight piece of the path, running from the
// previous point to its own end point.
//
// Zero control points make a straight line, one a quadratic curve, two a
// cubic Bézier; more control points make a general-degree Bézier.
type Segment struct {
	Name     string
	Color    string
	End      Point
	Controls []pedro.Pair
	Wait     float64 // dwell after the segment, in seconds
}

// Clone returns a deep copy of the segment.
func (seg Segment) Clone() Segment {
	c := seg
	if seg.Controls != nil {
		c.Controls = make([]pedro.Pair, len(seg.Controls))
		copy(c.Controls, seg.Controls)
	}
	return c
}

// Path is a start point followed by segments. To construct a path, start
// with Begin() and extend it.
type Path struct {
	Start Point
	Lines []Segment
}

// Begin creates a path consisting of its start point only, to be extended
// by subsequent builder calls.
func Begin(start Point) *Path {
	return &Path{Start: start}
}

// LineTo appends a straight segment. Part of builder functionality.
func (path *Path) LineTo(end Point) *Path {
	return path.CurveTo(end)
}

// CurveTo appends a segment bending through the given control points.
// Part of builder functionality.
func (path *Path) CurveTo(end Point, controls ...pedro.Pair) *Path {
	seg := Segment{
		Name: fmt.Sprintf("Path %d", len(path.Lines)+1),
		End:  end,
	}
	if len(controls) > 0 {
		seg.Controls = append([]pedro.Pair(nil), controls...)
	}
	path.Lines = append(path.Lines, seg)
	return path
}

// Wait sets the dwell time of the last segment. Part of builder functionality.
func (path *Path) Wait(seconds float64) *Path {
	if len(path.Lines) == 0 {
		panic("cannot wait on empty path")
	}
	path.Lines[len(path.Lines)-1].Wait = seconds
	return path
}

// Named sets name and color of the last segment. Part of builder functionality.
func (path *Path) Named(name, color string) *Path {
	if len(path.Lines) == 0 {
		panic("cannot name segment of empty path")
	}
	path.Lines[len(path.Lines)-1].Name = name
	path.Lines[len(path.Lines)-1].Color = color
	return path
}

// N returns the number of segments.
func (path *Path) N() int {
	return len(path.Lines)
}

// From returns the start of segment i: the path's start point for i = 0,
// the end point of segment i-1 otherwise.
func (path *Path) From(i int) Point {
	if i <= 0 {
		return path.Start
	}
	return path.Lines[i-1].End
}

// Knots returns the full point list of segment i:
// [start, controls..., end].
func (path *Path) Knots(i int) []pedro.Pair {
	seg := path.Lines[i]
	knots := make([]pedro.Pair, 0, len(seg.Controls)+2)
	knots = append(knots, path.From(i).Pos)
	knots = append(knots, seg.Controls...)
	return append(knots, seg.End.Pos)
}

// Waypoints returns the point list of segment i in the form sent to the
// curve optimisation service.
func (path *Path) Waypoints(i int) ([][2]float64, error) {
	if i < 0 || i >= path.N() {
		return nil, fmt.Errorf("%w: %d", ErrNoSegment, i)
	}
	knots := path.Knots(i)
	wps := make([][2]float64, len(knots))
	for j, k := range knots {
		wps[j] = [2]float64{k.X(), k.Y()}
	}
	return wps, nil
}

// TotalWait sums the dwell times of all segments, in seconds.
func (path *Path) TotalWait() float64 {
	w := 0.0
	for _, seg := range path.Lines {
		w += math.Max(seg.Wait, 0)
	}
	return w
}

// Clone returns a deep copy of the path. Edits to the copy never affect the
// original.
func (path *Path) Clone() Path {
	c := Path{Start: path.Start}
	if path.Lines != nil {
		c.Lines = make([]Segment, len(path.Lines))
		for i, seg := range path.Lines {
			c.Lines[i] = seg.Clone()
		}
	}
	return c
}

// Validate checks that the path has at least one segment and that every
// point has valid coordinates and a heading.
func (path *Path) Validate() error {
	if path == nil || len(path.Lines) == 0 {
		return ErrEmptyPath
	}
	if err := path.Start.validate(); err != nil {
		return fmt.Errorf("start point: %w", err)
	}
	for i, seg := range path.Lines {
		if err := seg.End.validate(); err != nil {
			return fmt.Errorf("segment %d end point: %w", i, err)
		}
		for j, c := range seg.Controls {
			if !c.IsValid() {
				return fmt.Errorf("segment %d control point %d: %w", i, j, ErrInvalidPoint)
			}
		}
		if seg.Wait < 0 || math.IsNaN(seg.Wait) {
			return fmt.Errorf("segment %d: %w", i, ErrNegativeWait)
		}
	}
	return nil
}
