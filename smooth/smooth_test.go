package smooth

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testpath() *Path {
	return Nullpath().Knot(pedro.P(0, 0)).Knot(pedro.P(1, 1)).Knot(pedro.P(2, 0)).End()
}

func cross(a, b pedro.Pair) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

func TestSliceEnlargement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arr := extendC(nil, 3)
	assert.Len(t, arr, 4)
	assert.True(t, cmplx.IsNaN(arr[3].C()))
	assert.True(t, cmplx.IsNaN(getC(arr, 7).C()))
}

func TestPsi(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	assert.InDelta(t, -90.0, rad2deg(path.psi(1)), 0.01)
	assert.Equal(t, 0.0, path.psi(0))
	assert.Equal(t, 0.0, path.psi(2))
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	assert.Equal(t, "(0,0) .. (1,1) .. (2,0)", AsString(path, nil))
	unknown := AsString(path, &Controls{})
	assert.Contains(t, unknown, "controls (<unknown>) and (<unknown>)")
}

func TestTwoKnotsGiveStraightThirds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(pedro.P(0, 0)).Knot(pedro.P(3, 6)).End()
	controls, err := FindControls(path)
	require.NoError(t, err)
	assert.True(t, controls.PostControl(0).Equal(pedro.P(1, 2)), "post = %v", controls.PostControl(0))
	assert.True(t, controls.PreControl(1).Equal(pedro.P(2, 4)), "pre = %v", controls.PreControl(1))
}

func TestSymmetricArch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	controls := MustFindControls(path)
	t.Log(AsString(path, controls))
	// leaves the first knot straight up, crosses the apex horizontally
	assert.InDelta(t, 0.0, controls.PostControl(0).X(), 1e-9)
	assert.InDelta(t, 1.0, controls.PreControl(1).Y(), 1e-9)
	assert.InDelta(t, 1.0, controls.PostControl(1).Y(), 1e-9)
	assert.InDelta(t, 2.0, controls.PreControl(2).X(), 1e-9)
	// mirror symmetry around x=1
	assert.InDelta(t, 2.0, controls.PostControl(0).X()+controls.PreControl(2).X(), 1e-9)
	assert.InDelta(t, controls.PostControl(0).Y(), controls.PreControl(2).Y(), 1e-9)
}

func TestTangentContinuity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knots(pedro.P(10, 10), pedro.P(30, 60), pedro.P(70, 70),
		pedro.P(100, 40), pedro.P(130, 60)).End()
	controls := MustFindControls(path)
	for i := 1; i < path.N()-1; i++ {
		in := path.Z(i) - controls.PreControl(i)
		out := controls.PostControl(i) - path.Z(i)
		assert.InDelta(t, 0.0, cross(in, out)/(in.Length()*out.Length()), 1e-9, "knot %d", i)
		assert.Greater(t, in.X()*out.X()+in.Y()*out.Y(), 0.0, "knot %d reverses", i)
	}
}

func TestDirectionsAtEnds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().DirKnot(pedro.P(0, 0), pedro.P(1, 0)).
		Knot(pedro.P(20, 20)).
		DirKnot(pedro.P(40, 0), pedro.P(0, -1)).End()
	controls := MustFindControls(path)
	out := controls.PostControl(0) - path.Z(0)
	assert.InDelta(t, 0.0, out.Y(), 1e-9)
	assert.Greater(t, out.X(), 0.0)
	in := path.Z(2) - controls.PreControl(2)
	assert.InDelta(t, 0.0, in.X(), 1e-9)
	assert.Less(t, in.Y(), 0.0)
}

func TestFindControlsRejectsInvalidPaths(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FindControls(nil)
	assert.True(t, errors.Is(err, ErrNilPath))
	_, err = FindControls(Nullpath().Knot(pedro.P(0, 0)).End())
	assert.True(t, errors.Is(err, ErrTooFewKnots))
	_, err = FindControls(Nullpath().Knot(pedro.P(0, 0)).Knot(pedro.P(0, 0)).End())
	assert.True(t, errors.Is(err, ErrDegenerateSegment))
	_, err = FindControls(Nullpath().Knot(pedro.P(0, 0)).Knot(pedro.P(math.NaN(), 0)).End())
	assert.True(t, errors.Is(err, ErrInvalidKnot))
	assert.Panics(t, func() { MustFindControls(Nullpath().End()) })
}
