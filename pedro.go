/*
Package pedro implements the geometric ground work for the path
visualizer: 2D points on the field, affine transformations, angle
helpers and the fixed field coordinate system.

Sub-packages build on it: bezier evaluates segment curves, trajectory holds
the path data model and heading rules, playback animates a robot along a
path, footprint computes the robot's oriented extent, history keeps
undo/redo snapshots, smooth finds Hobby control points for paths through
waypoints, and optimize talks to a curve optimisation service.

# Conventions

All coordinates are field units on the square [0,144]×[0,144]. All headings
are degrees, counter-clockwise positive, with 0° pointing along +x. Renderers
with a downward y-axis have to negate.

# BSD License

# Copyright (c) Bryce Tieu

All rights reserved.

Please refer to the license file for more information.
*/
package pedro

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pedro'
func tracer() tracing.Trace {
	return tracing.Select("pedro")
}

// === Field =================================================================

// Field bounds and the centre line, in field units.
const (
	FieldMin    float64 = 0
	FieldMax    float64 = 144
	CenterLineX float64 = 72
)

// InField is a predicate: does p lie within the field square (borders
// included)?
func InField(p Pair) bool {
	return p.X() >= FieldMin && p.X() <= FieldMax && p.Y() >= FieldMin && p.Y() <= FieldMax
}

// === Numeric helpers =======================================================

// Deg2Rad converts from DEG to RAD if multiplied, RAD to DEG if divided.
const Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// NormalizeDeg maps an angle in degrees to [0,360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 { // -tiny + 360 may round up
		a = 0
	}
	return a
}

// DeltaDeg returns the signed shortest rotation from a to b, in (-180,180].
func DeltaDeg(a, b float64) float64 {
	d := NormalizeDeg(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

// === Pairs =================================================================

// Pair is a point or a vector on the field, x in the real part and y in the
// imaginary part.
type Pair complex128

// Origin is (0,0).
var Origin = P(0, 0)

func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// P creates a pair from coordinates.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// C2P converts a complex number to a pair. NaN and Inf yield the origin.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("non-finite pair %v replaced by origin", c)
		return Origin
	}
	return Pair(c)
}

// C is the pair as a complex number.
func (p Pair) C() complex128 { return complex128(p) }

// X coordinate.
func (p Pair) X() float64 { return real(p) }

// Y coordinate.
func (p Pair) Y() float64 { return imag(p) }

// IsValid is a predicate: are both coordinates finite numbers?
func (p Pair) IsValid() bool {
	x, y := p.X(), p.Y()
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// Zap snaps near-zero coordinates to 0.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is p (0,0), up to Epsilon?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares coordinates up to Epsilon.
func (p Pair) Equal(q Pair) bool {
	return Is0(p.X()-q.X()) && Is0(p.Y()-q.Y())
}

// Length is the euclidean length of p taken as a vector.
func (p Pair) Length() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Angle returns the direction of vector p in degrees, counter-clockwise
// from +x, in (-180,180].
func (p Pair) Angle() float64 {
	return math.Atan2(p.Y(), p.X()) / Deg2Rad
}

// Scaled multiplies both coordinates by a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Lerp interpolates linearly between a and b. Lerp(a,b,0) == a and
// Lerp(a,b,1) == b hold exactly.
func Lerp(a, b Pair, t float64) Pair {
	mt := 1 - t
	return P(mt*a.X()+t*b.X(), mt*a.Y()+t*b.Y())
}

// Shifted moves p by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p)
}

// Rotated turns p about the origin by theta degrees, counter-clockwise.
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p).Zap()
}

// RotatedAround turns p about v by theta degrees, counter-clockwise.
func (p Pair) RotatedAround(v Pair, theta float64) Pair {
	return RotationAround(v, theta).Transform(p)
}

// === Affine transforms =====================================================

// AT is an affine transform of the plane, the upper two rows of a 3×3
// matrix:
//
//	| a b c |
//	| d e f |
//	| 0 0 1 |
type AT [6]float64

// Identity maps every point onto itself.
func Identity() AT {
	return AT{1, 0, 0, 0, 1, 0}
}

// Translation moves points by v.
func Translation(v Pair) AT {
	return AT{1, 0, v.X(), 0, 1, v.Y()}
}

// Rotation turns points about the origin by theta degrees,
// counter-clockwise.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta * Deg2Rad)
	return AT{cos, -sin, 0, sin, cos, 0}
}

// RotationAround turns points about c by theta degrees, counter-clockwise.
func RotationAround(c Pair, theta float64) AT {
	return Translation(-c).Combine(Rotation(theta)).Combine(Translation(c))
}

func (m AT) String() string {
	return fmt.Sprintf("[%g %g %g|%g %g %g]", m[0], m[1], m[2], m[3], m[4], m[5])
}

// Combine chains two transforms into one which applies m first, then n.
func (m AT) Combine(n AT) AT {
	return AT{
		n[0]*m[0] + n[1]*m[3], n[0]*m[1] + n[1]*m[4], n[0]*m[2] + n[1]*m[5] + n[2],
		n[3]*m[0] + n[4]*m[3], n[3]*m[1] + n[4]*m[4], n[3]*m[2] + n[4]*m[5] + n[5],
	}
}

// Transform maps point p.
func (m AT) Transform(p Pair) Pair {
	x, y := p.X(), p.Y()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}
