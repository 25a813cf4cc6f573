// Package bezier evaluates the curves of path segments.
//
// A segment is given as its full point list: the segment start, all
// control points, and the segment end. The number of points selects the
// curve type: a straight line for 2 points, a quadratic raised to an
// equivalent cubic for 3 points, a cubic Bézier for 4 points, and a
// general-degree Bézier evaluated by De Casteljau's algorithm beyond that.
//
// Evaluation is pure. It does not clamp t; callers are expected to keep
// t within [0,1]. For every point count Eval(0,…) returns the first and
// Eval(1,…) the last point exactly.
package bezier

import (
	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pedro.bezier'
func tracer() tracing.Trace {
	return tracing.Select("pedro.bezier")
}

// PolylineSamples is the number of uniform parameter steps used to flatten
// a general-degree curve for drawing.
const PolylineSamples = 100

// Eval returns the point at parameter t on the curve through pts, where
// pts = [start, controls..., end].
//
// An empty point list yields the origin, a single point yields itself.
func Eval(t float64, pts []pedro.Pair) pedro.Pair {
	switch len(pts) {
	case 0:
		tracer().Errorf("evaluating curve without points")
		return pedro.Origin
	case 1:
		return pts[0]
	case 2:
		return pedro.Lerp(pts[0], pts[1], t)
	case 3:
		c1, c2 := Raise(pts[0], pts[1], pts[2])
		return Cubic(t, pts[0], c1, c2, pts[2])
	case 4:
		return Cubic(t, pts[0], pts[1], pts[2], pts[3])
	}
	return DeCasteljau(t, pts)
}

// Raise converts the quadratic Bézier (p0, c, p2) into the two inner control
// points of the cubic which exactly represents it.
func Raise(p0, c, p2 pedro.Pair) (pedro.Pair, pedro.Pair) {
	c1 := p0 + (c-p0).Scaled(2.0/3.0)
	c2 := p2 + (c-p2).Scaled(2.0/3.0)
	return c1, c2
}

// Cubic evaluates a cubic Bézier with Bernstein weights.
func Cubic(t float64, p0, p1, p2, p3 pedro.Pair) pedro.Pair {
	mt := 1.0 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	x := b0*p0.X() + b1*p1.X() + b2*p2.X() + b3*p3.X()
	y := b0*p0.Y() + b1*p1.Y() + b2*p2.Y() + b3*p3.Y()
	return pedro.P(x, y)
}

// DeCasteljau evaluates a Bézier curve of arbitrary degree by repeated
// linear interpolation. pts is not modified.
func DeCasteljau(t float64, pts []pedro.Pair) pedro.Pair {
	if len(pts) == 0 {
		return pedro.Origin
	}
	work := make([]pedro.Pair, len(pts))
	copy(work, pts)
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = pedro.Lerp(work[i], work[i+1], t)
		}
	}
	return work[0]
}

// Polyline flattens the curve through pts into samples+1 points at uniform
// parameter steps. Straight lines are returned as their two end points.
func Polyline(pts []pedro.Pair, samples int) []pedro.Pair {
	if len(pts) <= 2 || samples < 1 {
		out := make([]pedro.Pair, len(pts))
		copy(out, pts)
		return out
	}
	line := make([]pedro.Pair, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		line[i] = Eval(t, pts)
	}
	tracer().Debugf("flattened curve of %d points into %d samples", len(pts), samples+1)
	return line
}

// Length approximates the arc length of the curve through pts by summing
// the chords of a polyline with the given number of samples.
func Length(pts []pedro.Pair, samples int) float64 {
	line := Polyline(pts, samples)
	l := 0.0
	for i := 1; i < len(line); i++ {
		l += (line[i] - line[i-1]).Length()
	}
	return l
}
