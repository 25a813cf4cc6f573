package footprint

import (
	"math"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
	polyclip "github.com/akavel/polyclip-go"
)

func contour(pts []pedro.Pair) polyclip.Contour {
	c := make(polyclip.Contour, len(pts))
	for i, p := range pts {
		c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return c
}

// Polygon converts a box to a polyclip polygon.
func (b Box) Polygon() polyclip.Polygon {
	return polyclip.Polygon{contour(b[:])}
}

// Field is the field square as a polyclip polygon.
func Field() polyclip.Polygon {
	lo, hi := float64(pedro.FieldMin), float64(pedro.FieldMax)
	return polyclip.Polygon{{{X: lo, Y: lo}, {X: hi, Y: lo}, {X: hi, Y: hi}, {X: lo, Y: hi}}}
}

// Corridor merges a sweep into the area covered by the robot. The hull of
// every pair of consecutive footprints bridges the gap between samples; the
// union of all hulls is the corridor.
func Corridor(fps []Footprint) polyclip.Polygon {
	switch len(fps) {
	case 0:
		return nil
	case 1:
		return fps[0].Box.Polygon()
	}
	var corridor polyclip.Polygon
	for i := 1; i < len(fps); i++ {
		pts := make([]pedro.Pair, 0, 8)
		pts = append(append(pts, fps[i-1].Box[:]...), fps[i].Box[:]...)
		hull := polyclip.Polygon{contour(ConvexHull(pts))}
		if corridor == nil {
			corridor = hull
			continue
		}
		corridor = corridor.Construct(polyclip.UNION, hull)
	}
	tracer().Debugf("corridor of %d footprints has %d contours", len(fps), len(corridor))
	return corridor
}

// Outside clips the part of polygon p which lies off the field.
func Outside(p polyclip.Polygon) polyclip.Polygon {
	return p.Construct(polyclip.DIFFERENCE, Field())
}

// Area is the area enclosed by the contours of p, each contour counted as
// an outer boundary.
func Area(p polyclip.Polygon) float64 {
	var area float64
	for _, c := range p {
		var a float64
		for i := range c {
			j := (i + 1) % len(c)
			a += c[i].X*c[j].Y - c[j].X*c[i].Y
		}
		area += math.Abs(a) / 2
	}
	return area
}

// Overlap is a predicate: do two footprints share an area larger than ε?
func Overlap(a, b Box) bool {
	return Area(a.Polygon().Construct(polyclip.INTERSECTION, b.Polygon())) > pedro.Epsilon
}

// Collisions evaluates the footprints of a set of robots at one instant and
// returns the pairs of ids whose footprints overlap.
func (r Robot) Collisions(poses []trajectory.FleetPose) [][2]string {
	boxes := make([]Box, len(poses))
	for i, fp := range poses {
		boxes[i] = r.At(fp.Pose)
	}
	var pairs [][2]string
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if Overlap(boxes[i], boxes[j]) {
				pairs = append(pairs, [2]string{poses[i].ID, poses[j].ID})
			}
		}
	}
	return pairs
}
