// Copyright © 2016 Geoff Holden <geoff@geoffholden.com>

// Package poly evaluates fixed-degree polynomials given as coefficient lists.
package poly

// Coefficients holds polynomial coefficients, index = degree.
type Coefficients []float64

// Eval returns the sum of c[i] * x^i. An empty coefficient list evaluates
// to 0.
//
// No range checking is done: approximations are only accurate inside the
// input range they were fitted for and extrapolate silently outside it.
func (c Coefficients) Eval(x float64) float64 {
	result := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		result = result*x + c[i]
	}
	return result
}

// Degree is the highest power represented, or -1 for an empty list.
func (c Coefficients) Degree() int {
	return len(c) - 1
}
