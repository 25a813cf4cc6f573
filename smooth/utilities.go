package smooth

import (
	"fmt"
	"math"
	"math/cmplx"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
)

func hobbyParamsAlphaBeta(theta, phi float64) (float64, float64) {
	constA := 1.41421356     // sqrt(2) -- empiric constants, as explained by J.Hobby
	constB := 0.0625         // 1/16
	constC := 0.38196601125  // (3 - sqrt(5)) / 2
	constCC := 0.61803398875 // 1 - c
	st, ct := math.Sincos(theta) // out-angle at z.i
	sf, cf := math.Sincos(phi)   // in-angle at z.i+1
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return alpha, beta
}

// Velocity factors for neutral tension.
func hobbyParamsRhoSigma(alpha, beta float64) (float64, float64) {
	return (2 + alpha) / beta, (2 - alpha) / beta
}

// Offsets of the two control points between z.i and z.[i+1], relative to
// z.i and z.[i+1] respectively.
func controlPoints(phi, theta float64, dvec pedro.Pair) (pedro.Pair, pedro.Pair) {
	rho, sigma := hobbyParamsRhoSigma(hobbyParamsAlphaBeta(theta, phi))
	st, ct := math.Sincos(theta)
	sf, cf := math.Sincos(phi)
	dx, dy := dvec.X(), dvec.Y()
	uv1 := pedro.P(dx*ct-dy*st, dx*st+dy*ct)
	uv2 := pedro.P(dx*cf+dy*sf, -dx*sf+dy*cf)
	return uv1.Scaled(rho / 3), uv2.Scaled(sigma / 3)
}

// Extend a slice of pairs to make room for index i, padding with NaN.
func extendC(arr []pedro.Pair, i int) []pedro.Pair {
	for len(arr) <= i {
		arr = append(arr, pedro.Pair(cmplx.NaN()))
	}
	return arr
}

// Get a value from a slice if present, NaN otherwise.
func getC(arr []pedro.Pair, i int) pedro.Pair {
	if i < 0 || i >= len(arr) {
		return pedro.Pair(cmplx.NaN())
	}
	return arr[i]
}

func angle(pr pedro.Pair) float64 {
	if cmplx.IsNaN(pr.C()) {
		return 0.0
	}
	return cmplx.Phase(pr.C())
}

// Reduce an angle to fit into -pi .. pi.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > math.Pi {
		if a > 0 {
			a -= 2 * math.Pi
		} else {
			a += 2 * math.Pi
		}
	}
	return a
}

func rad2deg(a float64) float64 {
	return a * 180 / math.Pi
}

func ptstring(p pedro.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	return math.Round(x*10000) / 10000
}
