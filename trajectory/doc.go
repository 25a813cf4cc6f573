/*
Package trajectory holds the path data model of the visualizer and the rules
which turn a path position into a robot pose.

A Path is a start point followed by an ordered list of segments. Segment i
starts where segment i-1 ends (segment 0 at the start point) and bends
through its control points towards its own end point. Every point carries a
heading rule:

	Linear{StartDeg, EndDeg}   sweep along the shortest rotation
	Constant{Degrees}          fixed orientation
	Tangential{Reverse}        follow the direction of travel

The heading rule of a segment's end point governs the robot's orientation
along that segment. Headings are degrees, counter-clockwise positive, 0°
along +x, normalised to [0,360).

A position on the whole path is given as a percentage p in [0,100). With N
segments, p maps to segment floor(N·p/100) and a local parameter which is
eased in and out, so the robot accelerates and decelerates at every segment
boundary:

	path := Begin(At(10, 10, Constant{90})).
		CurveTo(At(60, 80, Tangential{}), pedro.P(10, 60)).
		LineTo(At(60, 120, Linear{0, 90})).Wait(2)
	pose := path.PoseAt(42, path.StartHeading())

Paths are plain values; Clone() gives an independent deep copy. Derived
geometry (sampled polylines, bounds) is cached by Geometry, which has to be
told about every mutation.

# BSD License

# Copyright (c) Bryce Tieu

All rights reserved.

Please refer to the license file for more information.
*/
package trajectory

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'pedro.trajectory'
func tracer() tracing.Trace {
	return tracing.Select("pedro.trajectory")
}
