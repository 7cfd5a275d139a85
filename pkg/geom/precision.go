// Package geom provides the rounded point, plane, and bounding-box math
// used to compare faces of a solid model.
package geom

import "math"

// Precision is the number of decimal digits kept when comparing
// coordinates and distances.
const Precision = 10

var scale = math.Pow(10, Precision)

// Round rounds x to Precision decimal digits. Negative zero is
// normalized to zero so rounded tuples compare equal.
func Round(x float64) float64 {
	r := math.Round(x*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}
