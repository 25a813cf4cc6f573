package trajectory

import (
	"math"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
)

// Ease is the symmetric ease-in-out-quadratic remap of a local segment
// parameter u in [0,1].
func Ease(u float64) float64 {
	if u < 0.5 {
		return 2 * u * u
	}
	v := 1 - u
	return 1 - 2*v*v
}

// Locate maps an overall path position percent in [0,100) onto a path of n
// segments, returning the segment index and the (uneased) local parameter.
// Positions at or beyond 100 map to the end of the last segment.
func Locate(percent float64, n int) (int, float64) {
	if n <= 0 {
		return 0, 0
	}
	if percent <= 0 || math.IsNaN(percent) {
		return 0, 0
	}
	total := float64(n) * percent / 100
	whole := math.Floor(total)
	if whole >= float64(n) {
		return n - 1, 1
	}
	return int(whole), total - whole
}

// ShortestRotation interpolates from heading a to heading b (degrees) along
// the shorter way round; a sweep from 350° to 10° passes 0°, not 180°.
// The result is normalised to [0,360).
func ShortestRotation(a, b, t float64) float64 {
	return pedro.NormalizeDeg(a + pedro.DeltaDeg(a, b)*t)
}
