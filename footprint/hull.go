package footprint

import (
	"sort"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
)

// cross is the z-component of (b-a)×(c-a): positive for a left turn.
func cross(a, b, c pedro.Pair) float64 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

func dist(a, b pedro.Pair) float64 {
	return pedro.C2P(b.C() - a.C()).Length()
}

// ConvexHull returns the convex hull of points by Graham scan. The hull
// starts at the lowest point (leftmost among equals) and proceeds
// counter-clockwise. Collinear points are not kept, so a hull of collinear
// points consists of the two extremes. The argument is not modified.
func ConvexHull(points []pedro.Pair) []pedro.Pair {
	if len(points) < 3 {
		return append([]pedro.Pair(nil), points...)
	}
	pts := append([]pedro.Pair(nil), points...)
	lowest := 0
	for i, p := range pts {
		q := pts[lowest]
		if p.Y() < q.Y() || (p.Y() == q.Y() && p.X() < q.X()) {
			lowest = i
		}
	}
	pts[0], pts[lowest] = pts[lowest], pts[0]
	start := pts[0]
	rest := pts[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		c := cross(start, rest[i], rest[j])
		if c != 0 {
			return c > 0
		}
		return dist(start, rest[i]) < dist(start, rest[j])
	})
	hull := []pedro.Pair{start}
	for _, p := range rest {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		if len(hull) == 1 && p == start {
			continue
		}
		hull = append(hull, p)
	}
	tracer().Debugf("hull of %d points has %d vertices", len(points), len(hull))
	return hull
}
