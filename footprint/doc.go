/*
Package footprint computes the area a robot covers on the field.

A robot is an oriented rectangle, its Length running front to back along the
heading and its Width side to side. Corners returns the rectangle at a pose,
starting at the front-left corner and turning clockwise as seen from above:

	front-left, front-right, back-right, back-left

A Sweep samples footprints along a path with the raw, uneased curve
parameter. Derived checks operate on sweeps: CenterLineCrossing tests
whether the robot ever reaches the other half of the field, OutOfField
collects footprints which leave the field square. Corridor merges a sweep
into a single polygon set, with the help of polyclip.

ConvexHull is a general purpose Graham scan.

# BSD License

# Copyright (c) Bryce Tieu

All rights reserved.

Please refer to the license file for more information.
*/
package footprint

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'pedro.footprint'
func tracer() tracing.Trace {
	return tracing.Select("pedro.footprint")
}
