package smooth

import (
	"fmt"
	"math"
	"math/cmplx"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
)

// Validate checks if a path is solvable by Hobby interpolation.
func (path *Path) Validate() error {
	if path == nil {
		return ErrNilPath
	}
	n := path.N()
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	for i := 0; i < n; i++ {
		if !path.points[i].IsValid() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	for i := 0; i < n-1; i++ {
		if cmplx.Abs(path.delta(i).C()) <= _epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, i+1)
		}
	}
	return nil
}

// FindControls finds the Hobby-spline control points for a skeleton path.
// It validates the path and returns an error for empty/invalid geometry.
func FindControls(path *Path) (*Controls, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	n := path.N()
	u := make([]float64, n)
	v := make([]float64, n)
	theta := make([]float64, n)
	startOpen(path, u, v)
	buildEqs(path, u, v)
	endOpen(path, theta, u, v)
	controls := setControls(path, theta, &Controls{})
	tracer().Debugf("smooth path = %s", AsString(path, controls))
	return controls, nil
}

// MustFindControls is a helper which panics on validation errors.
func MustFindControls(path *Path) *Controls {
	c, err := FindControls(path)
	if err != nil {
		panic(err)
	}
	return c
}

// With neutral tension and curl the end conditions collapse to u.0 = 1,
// or to a fixed theta.0 if the first knot has a direction.
func startOpen(path *Path, u, v []float64) {
	if dir := path.Dir(0); !cmplx.IsNaN(dir.C()) {
		u[0] = 0
		v[0] = reduceAngle(angle(dir) - angle(path.delta(0)))
	} else {
		u[0] = 1
		v[0] = -u[0] * path.psi(1)
	}
	tracer().Debugf("u.0 = %.4g, v.0 = %.4g", u[0], v[0])
}

func buildEqs(path *Path, u, v []float64) {
	for i := 1; i < path.N()-1; i++ {
		dl, dr := path.d(i-1), path.d(i)
		A := 1 / dl
		B := 2 / dl
		C := 2 / dr
		D := 1 / dr
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*path.psi(i) - D*path.psi(i+1) - A*v[i-1]) / t
		tracer().Debugf("u.%d = %.4g, v.%d = %.4g", i, u[i], i, v[i])
	}
}

func endOpen(path *Path, theta, u, v []float64) {
	last := path.N() - 1
	if dir := path.Dir(last); !cmplx.IsNaN(dir.C()) {
		theta[last] = reduceAngle(angle(dir) - angle(path.delta(last-1)))
	} else {
		u[last] = 1
		den := u[last-1] - u[last]
		if math.Abs(den) <= _epsilon {
			theta[last] = 0 // curl against curl: a straight line
		} else {
			theta[last] = v[last-1] / den
		}
	}
	tracer().Debugf("theta.%d = %.4g", last, rad2deg(theta[last]))
	for i := last - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
}

func setControls(path *Path, theta []float64, controls *Controls) *Controls {
	for i := 0; i < path.N()-1; i++ {
		phi := -path.psi(i+1) - theta[i+1]
		p2, p3 := controlPoints(phi, theta[i], path.delta(i))
		controls.setPostControl(i, path.Z(i)+p2)
		controls.setPreControl(i+1, path.Z(i+1)-p3)
	}
	return controls
}

func (path *Path) delta(i int) pedro.Pair {
	return path.Z(i+1) - path.Z(i)
}

func (path *Path) d(i int) float64 {
	return cmplx.Abs(path.delta(i).C())
}

// Turning angle at z.i; zero at both ends of the path.
func (path *Path) psi(i int) float64 {
	if i <= 0 || i >= path.N()-1 {
		return 0
	}
	psi := cmplx.Phase(path.delta(i).C()) - cmplx.Phase(path.delta(i-1).C())
	return reduceAngle(psi)
}
