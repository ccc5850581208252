// Package core provides the small shared types of the demo runtime: colours,
// integer helpers, the controller pad, the frame clock and the terminal cell
// canvas. It has no dependencies on the render or platform layers.
package core

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// CeilDiv returns ceil(a/b) for positive b.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
