// Package smooth finds Bézier control points for a smooth curve through a
// sequence of waypoints, using John Hobby's spline interpolation.
/*

The trajectory editor lets a user click a few waypoints and get an
aesthetically pleasing, tangent-continuous path through them. Hobby's
algorithm is the one used by MetaFont/MetaPost and is described in

   Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
   Computer Science Dept. Stanford University
   Report No. STAN-CS-85-1047, Jan 1985

and, as a practical algorithm, in Computers & Typesetting, Vol. B & D.

Only open paths with neutral tension (1) and neutral end curl (1) are
supported; robot trajectories never close onto themselves. The first and
last knot may carry an explicit direction, which is how a smoothed chain is
made to leave the robot's start pose or arrive with a given heading.

Usage

   path := Nullpath().DirKnot(P(10,10), P(1,0)).Knot(P(40,50)).Knot(P(80,20)).End()
   controls, err := FindControls(path)

Segment i of the result runs from Z(i) through PostControl(i) and
PreControl(i+1) to Z(i+1).

BSD License

Copyright (c) Bryce Tieu

All rights reserved.

Please refer to the license file for more information.
*/
package smooth

import (
	"fmt"
	"strings"
)

// AsString returns
// a path -- optionally including spline control points -- as a (debugging)
// string, in a notation close to MetaFont's:
//
//	(10,10) .. controls (20.0000,10.0000) and (30.5000,41.2000)
//	  .. (40,50)
func AsString(path *Path, contr *Controls) string {
	var b strings.Builder
	for i := 0; i < path.N(); i++ {
		if i > 0 {
			if contr != nil {
				fmt.Fprintf(&b, " and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				b.WriteString(" .. ")
			}
		}
		b.WriteString(ptstring(path.Z(i), false))
		if contr != nil && i < path.N()-1 {
			fmt.Fprintf(&b, " .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	return b.String()
}
