package smooth

import (
	"errors"
	"math/cmplx"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pedro.smooth'
func tracer() tracing.Trace {
	return tracing.Select("pedro.smooth")
}

const _epsilon = 0.0000001

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewKnots indicates path knot count is insufficient for solving.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
)

// Path is a skeleton path of knots, to be smoothed. Start with Nullpath()
// and extend it.
type Path struct {
	points []pedro.Pair // knot i
	dirs   []pedro.Pair // explicit tangent direction at knot i, or NaN
}

// Controls collects calculated spline control points.
type Controls struct {
	prec  []pedro.Pair // control point i-
	postc []pedro.Pair // control point i+
}

// Nullpath creates an empty path, to be extended by subsequent builder
// calls:
//
//	path := Nullpath().Knot(P(0,0)).Knot(P(3,2)).DirKnot(P(5,2.5), P(1,0)).End()
func Nullpath() *Path {
	return &Path{}
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Knot adds a standard smooth knot to a path. Part of builder functionality.
func (path *Path) Knot(pr pedro.Pair) *Path {
	path.points = append(path.points, pr)
	path.dirs = append(path.dirs, pedro.Pair(cmplx.NaN()))
	return path
}

// Knots adds several smooth knots. Part of builder functionality.
func (path *Path) Knots(prs ...pedro.Pair) *Path {
	for _, pr := range prs {
		path.Knot(pr)
	}
	return path
}

// DirKnot adds a knot with a given tangent direction. Directions are
// honoured at the first and at the last knot only; on inner knots the
// direction is ignored and the knot is smooth.
// Part of builder functionality.
func (path *Path) DirKnot(p pedro.Pair, dir pedro.Pair) *Path {
	path.points = append(path.points, p)
	path.dirs = append(path.dirs, dir)
	return path
}

// N returns the knot count.
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position i.
func (path *Path) Z(i int) pedro.Pair {
	return path.points[i]
}

// Dir returns the explicit tangent direction at knot i, or NaN.
func (path *Path) Dir(i int) pedro.Pair {
	return getC(path.dirs, i)
}

// PreControl returns the control point before knot i, NaN if unknown.
func (ctrls *Controls) PreControl(i int) pedro.Pair {
	return getC(ctrls.prec, i)
}

// PostControl returns the control point after knot i, NaN if unknown.
func (ctrls *Controls) PostControl(i int) pedro.Pair {
	return getC(ctrls.postc, i)
}

func (ctrls *Controls) setPreControl(i int, c pedro.Pair) {
	ctrls.prec = extendC(ctrls.prec, i)
	ctrls.prec[i] = c
}

func (ctrls *Controls) setPostControl(i int, c pedro.Pair) {
	ctrls.postc = extendC(ctrls.postc, i)
	ctrls.postc[i] = c
}
