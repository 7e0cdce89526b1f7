// Copyright © 2016 Geoff Holden <geoff@geoffholden.com>

package units

import (
	"math"
)

// floatEquals compares with a relative tolerance of 1e-5, which absorbs the
// rounding of a scale-and-unscale round trip.
func floatEquals(a, b float64) bool {
	diff := math.Abs(a - b)
	m := math.Max(math.Abs(a), math.Abs(b))
	return diff <= m*1e-5
}
