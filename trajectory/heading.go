package trajectory

import (
	"math"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/BryceTieu/Pedro-Visualzier-18127/bezier"
)

// tangentStep is the parameter distance used to sample the direction of
// travel.
const tangentStep = 0.01

// HeadingAt returns the robot's heading on segment seg, which starts at
// from, at curve parameter t. For Linear headings t is the interpolation
// fraction as well; playback passes the eased parameter, path previews the
// raw one.
//
// prev is returned for Tangential headings where the curve has no direction
// at t (coincident sample points).
func HeadingAt(seg Segment, from pedro.Pair, t float64, prev float64) float64 {
	knots := make([]pedro.Pair, 0, len(seg.Controls)+2)
	knots = append(knots, from)
	knots = append(knots, seg.Controls...)
	knots = append(knots, seg.End.Pos)
	return headingOf(seg.End.Heading, knots, t, prev)
}

func headingOf(h Heading, knots []pedro.Pair, t float64, prev float64) float64 {
	switch h := h.(type) {
	case Linear:
		return ShortestRotation(h.StartDeg, h.EndDeg, t)
	case Constant:
		return pedro.NormalizeDeg(h.Degrees)
	case Tangential:
		return tangent(knots, t, h.Reverse, prev)
	}
	tracer().Errorf("point without heading rule, keeping heading %.2f", prev)
	return prev
}

// Direction of travel at t, from two samples tangentStep apart. Near the end
// of the segment the samples are taken behind t.
func tangent(knots []pedro.Pair, t float64, reverse bool, prev float64) float64 {
	a, b := clamp01(t), clamp01(t+tangentStep)
	if b-a < tangentStep/2 {
		a, b = clamp01(t-tangentStep), clamp01(t)
	}
	d := bezier.Eval(b, knots) - bezier.Eval(a, knots)
	if reverse {
		d = -d
	}
	if d.Length() <= pedro.Epsilon {
		tracer().Debugf("no direction of travel at t=%.4f, holding heading %.2f", t, prev)
		return prev
	}
	return pedro.NormalizeDeg(d.Angle())
}

func clamp01(t float64) float64 {
	return math.Min(1, math.Max(0, t))
}
