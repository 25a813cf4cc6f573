package footprint

import (
	"testing"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNear(t *testing.T, want, got pedro.Pair) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), 1e-9, "x of %s vs %s", want, got)
	assert.InDelta(t, want.Y(), got.Y(), 1e-9, "y of %s vs %s", want, got)
}

func TestCorners(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Corners(pedro.P(72, 72), 20, 10, 0)
	for i, want := range []pedro.Pair{pedro.P(82, 77), pedro.P(82, 67), pedro.P(62, 67), pedro.P(62, 77)} {
		assertNear(t, want, box[i])
	}
	// facing +y the front-left corner is up and to the left
	box = Corners(pedro.P(72, 72), 20, 10, 90)
	for i, want := range []pedro.Pair{pedro.P(67, 82), pedro.P(77, 82), pedro.P(77, 62), pedro.P(67, 62)} {
		assertNear(t, want, box[i])
	}
	pose := trajectory.Pose{Pos: pedro.P(20, 20), Heading: 180}
	box = DefaultRobot.At(pose)
	assertNear(t, pedro.P(12, 12), box[0])
	lo, hi := box.MinMax()
	assert.InDelta(t, 12, lo, 1e-9)
	assert.InDelta(t, 28, hi, 1e-9)
}

func TestSweep(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := trajectory.Begin(trajectory.At(20, 20, trajectory.Constant{Degrees: 0})).
		LineTo(trajectory.At(40, 20, trajectory.Tangential{})).
		CurveTo(trajectory.At(60, 60, trajectory.Linear{StartDeg: 0, EndDeg: 90}), pedro.P(60, 20))
	all := DefaultRobot.Sweep(path, Options{Steps: 10})
	require.Len(t, all, 21)
	assertNear(t, pedro.P(20, 20), all[0].Pose.Pos)
	assertNear(t, pedro.P(40, 20), all[10].Pose.Pos)
	assertNear(t, pedro.P(60, 60), all[20].Pose.Pos)
	// the linear sweep uses the raw parameter
	assert.InDelta(t, 45, all[15].Pose.Heading, 1e-9)
	cur := DefaultRobot.Sweep(path, Options{Steps: 10, Mode: CurrentSegment, Percent: 60})
	require.Len(t, cur, 11)
	assert.Equal(t, 1, cur[0].Pose.Segment)
	assert.Equal(t, 0.0, cur[0].Pose.T)
	assert.Len(t, DefaultRobot.Sweep(path, Options{}), 2*DefaultSteps+1)
	assert.Nil(t, DefaultRobot.Sweep(trajectory.Begin(trajectory.At(1, 1, trajectory.Constant{})), Options{}))
}

func TestCenterLineCrossing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	crossing := trajectory.Begin(trajectory.At(10, 20, trajectory.Constant{})).
		LineTo(trajectory.At(40, 20, trajectory.Constant{})).
		LineTo(trajectory.At(80, 20, trajectory.Constant{}))
	fp, crossed := DefaultRobot.CenterLineCrossing(crossing)
	assert.True(t, crossed)
	assert.Equal(t, 1, fp.Pose.Segment)
	_, hi := fp.Box.MinMax()
	assert.Greater(t, hi, pedro.CenterLineX)

	// robot half-width 8 keeps x < 72
	confined := trajectory.Begin(trajectory.At(10, 20, trajectory.Constant{})).
		LineTo(trajectory.At(40, 60, trajectory.Tangential{})).
		LineTo(trajectory.At(63.9, 100, trajectory.Constant{}))
	_, crossed = DefaultRobot.CenterLineCrossing(confined)
	assert.False(t, crossed)

	right := trajectory.Begin(trajectory.At(130, 20, trajectory.Constant{})).
		LineTo(trajectory.At(70, 20, trajectory.Constant{}))
	_, crossed = DefaultRobot.CenterLineCrossing(right)
	assert.True(t, crossed)

	onLine := trajectory.Begin(trajectory.At(72, 20, trajectory.Constant{})).
		LineTo(trajectory.At(72, 60, trajectory.Constant{}))
	_, crossed = Robot{Length: 16, Width: 16}.CenterLineCrossing(onLine)
	assert.True(t, crossed)
}

func TestConvexHullSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []pedro.Pair{pedro.P(1, 1), pedro.P(0, 1), pedro.P(0.5, 0.5), pedro.P(1, 0), pedro.P(0, 0)}
	keep := append([]pedro.Pair(nil), points...)
	hull := ConvexHull(points)
	assert.Equal(t, []pedro.Pair{pedro.P(0, 0), pedro.P(1, 0), pedro.P(1, 1), pedro.P(0, 1)}, hull)
	assert.Equal(t, keep, points)
	for i := range hull {
		a, b, c := hull[i], hull[(i+1)%len(hull)], hull[(i+2)%len(hull)]
		assert.Greater(t, cross(a, b, c), 0.0)
	}
}

func TestConvexHullCollinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	hull := ConvexHull([]pedro.Pair{pedro.P(1, 1), pedro.P(0, 0), pedro.P(2, 2)})
	assert.Equal(t, []pedro.Pair{pedro.P(0, 0), pedro.P(2, 2)}, hull)
	hull = ConvexHull([]pedro.Pair{pedro.P(0, 0), pedro.P(2, 0), pedro.P(1, 0), pedro.P(1, 2), pedro.P(0, 0)})
	assert.Equal(t, []pedro.Pair{pedro.P(0, 0), pedro.P(2, 0), pedro.P(1, 2)}, hull)
	assert.Len(t, ConvexHull([]pedro.Pair{pedro.P(3, 3)}), 1)
}

func TestOutOfField(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := trajectory.Begin(trajectory.At(120, 72, trajectory.Constant{})).
		LineTo(trajectory.At(140, 72, trajectory.Constant{}))
	fps := DefaultRobot.Sweep(path, Options{Steps: 10})
	out := OutOfField(fps)
	require.NotEmpty(t, out)
	assert.True(t, fps[0].Box.InField())
	assert.False(t, out[len(out)-1].Box.InField())
	assert.InDelta(t, 128, Area(Outside(Corners(pedro.P(144, 72), 16, 16, 0).Polygon())), 1e-6)
	assert.InDelta(t, 0, Area(Outside(Corners(pedro.P(72, 72), 16, 16, 30).Polygon())), 1e-6)
}

func TestOverlap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Corners(pedro.P(50, 50), 16, 16, 0)
	assert.True(t, Overlap(a, Corners(pedro.P(60, 53), 16, 16, 0)))
	assert.InDelta(t, 78, Area(a.Polygon().Construct(polyclip.INTERSECTION, Corners(pedro.P(60, 53), 16, 16, 0).Polygon())), 1e-6)
	assert.True(t, Overlap(Corners(pedro.P(50, 50), 16, 16, 45), Corners(pedro.P(60, 60), 16, 16, 0)))
	assert.False(t, Overlap(a, Corners(pedro.P(75, 53), 16, 16, 0)))

	poses := []trajectory.FleetPose{
		{ID: "a", Pose: trajectory.Pose{Pos: pedro.P(50, 50)}},
		{ID: "b", Pose: trajectory.Pose{Pos: pedro.P(60, 53)}},
		{ID: "c", Pose: trajectory.Pose{Pos: pedro.P(120, 120), Heading: 20}},
	}
	assert.Equal(t, [][2]string{{"a", "b"}}, DefaultRobot.Collisions(poses))
}

func TestCorridor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := trajectory.Begin(trajectory.At(30, 30, trajectory.Tangential{})).
		CurveTo(trajectory.At(100, 50, trajectory.Tangential{}), pedro.P(60, 90))
	fps := DefaultRobot.Sweep(path, Options{Steps: 4})
	corridor := Corridor(fps)
	require.NotEmpty(t, corridor)
	bb := corridor.BoundingBox()
	for _, fp := range fps {
		for _, c := range fp.Box {
			assert.LessOrEqual(t, bb.Min.X, c.X()+1e-6)
			assert.LessOrEqual(t, bb.Min.Y, c.Y()+1e-6)
			assert.GreaterOrEqual(t, bb.Max.X, c.X()-1e-6)
			assert.GreaterOrEqual(t, bb.Max.Y, c.Y()-1e-6)
		}
	}
	assert.Greater(t, Area(corridor), 256.0)
	assert.Nil(t, Corridor(nil))
	assert.Len(t, Corridor(fps[:1]), 1)
}
