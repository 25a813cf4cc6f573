package trajectory

import (
	"math"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/BryceTieu/Pedro-Visualzier-18127/bezier"
)

// Geometry caches render-ready geometry derived from a path. The cache is
// rebuilt lazily on the first read after Invalidate; mutations done through
// Edit invalidate automatically.
type Geometry struct {
	path      *Path
	dirty     bool
	polylines [][]pedro.Pair
	min, max  pedro.Pair
	rebuilds  int
}

// NewGeometry creates a geometry cache for path. The path stays owned by
// the caller.
func NewGeometry(path *Path) *Geometry {
	return &Geometry{path: path, dirty: true}
}

// Path returns the underlying path.
func (g *Geometry) Path() *Path {
	return g.path
}

// Invalidate marks all derived geometry stale.
func (g *Geometry) Invalidate() {
	g.dirty = true
}

// Edit applies a mutation to the path and invalidates the cache.
func (g *Geometry) Edit(mutate func(*Path)) {
	mutate(g.path)
	g.dirty = true
}

// Polyline returns the flattened curve of segment i. Straight segments are
// returned as their two end points.
func (g *Geometry) Polyline(i int) []pedro.Pair {
	g.refresh()
	return g.polylines[i]
}

// Polylines returns the flattened curves of all segments.
func (g *Geometry) Polylines() [][]pedro.Pair {
	g.refresh()
	return g.polylines
}

// Bounds returns the bounding box of all flattened segments and control
// points.
func (g *Geometry) Bounds() (pedro.Pair, pedro.Pair) {
	g.refresh()
	return g.min, g.max
}

func (g *Geometry) refresh() {
	if !g.dirty {
		return
	}
	n := g.path.N()
	g.polylines = make([][]pedro.Pair, n)
	minx, miny := g.path.Start.X(), g.path.Start.Y()
	maxx, maxy := minx, miny
	for i := 0; i < n; i++ {
		knots := g.path.Knots(i)
		g.polylines[i] = bezier.Polyline(knots, bezier.PolylineSamples)
		for _, pts := range [][]pedro.Pair{knots, g.polylines[i]} {
			for _, p := range pts {
				minx, maxx = math.Min(minx, p.X()), math.Max(maxx, p.X())
				miny, maxy = math.Min(miny, p.Y()), math.Max(maxy, p.Y())
			}
		}
	}
	g.min, g.max = pedro.P(minx, miny), pedro.P(maxx, maxy)
	g.dirty = false
	g.rebuilds++
	tracer().Debugf("rebuilt geometry of %d segments", n)
}
