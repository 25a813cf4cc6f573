package trajectory

import "github.com/BryceTieu/Pedro-Visualzier-18127/smooth"

// Through builds a path from start which passes smoothly through all
// waypoints, one cubic segment per waypoint. Control points are found by
// Hobby's algorithm, so the path is tangent-continuous at every waypoint.
// The waypoints' heading rules are kept.
func Through(start Point, waypoints ...Point) (*Path, error) {
	skeleton := smooth.Nullpath().Knot(start.Pos)
	for _, wp := range waypoints {
		skeleton.Knot(wp.Pos)
	}
	controls, err := smooth.FindControls(skeleton.End())
	if err != nil {
		return nil, err
	}
	path := Begin(start)
	for i, wp := range waypoints {
		path.CurveTo(wp, controls.PostControl(i), controls.PreControl(i+1))
	}
	tracer().Debugf("smoothed path through %d waypoints", len(waypoints))
	return path, nil
}

// MustThrough is like Through, but panics on invalid waypoints.
func MustThrough(start Point, waypoints ...Point) *Path {
	path, err := Through(start, waypoints...)
	if err != nil {
		panic(err)
	}
	return path
}
