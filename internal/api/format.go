/*
Package api
File: format.go
Description:
    Display formatting for point totals sent in pulses and state
    responses. Mirrors the client's original formatter: millions and
    thousands get two decimals with an M/K suffix, anything smaller is
    floored to a whole number.
*/

package api

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPoints renders a point total for display.
func FormatPoints(n float64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.2fM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.2fK", n/1_000)
	default:
		return strconv.FormatFloat(math.Floor(n), 'f', -1, 64)
	}
}
