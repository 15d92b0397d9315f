package slider

import (
	"math"
	"strconv"
	"strings"
)

// maxDecimals caps the precision derived from step and min.
const maxDecimals = 15

// Snap rounds raw to the nearest step increment counted from lo, removes
// floating point drift by rounding to the precision implied by step and lo,
// and clamps the result to [lo, hi].
//
// A range with hi below lo collapses to lo. A step that is not a positive
// finite number disables snapping; the value is only clamped.
func Snap(raw, lo, hi, step float64) float64 {
	if hi < lo {
		hi = lo
	}
	v := raw
	if validStep(step) {
		v = math.Round((raw-lo)/step)*step + lo
		v = roundTo(v, max(decimals(step), decimals(lo)))
	}
	return clamp(v, lo, hi)
}

// Percentage is the position of v within [lo, hi] as 0..100. A degenerate
// range yields 0.
func Percentage(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return clamp((v-lo)/(hi-lo)*100, 0, 100)
}

func validStep(step float64) bool {
	return step > 0 && !math.IsInf(step, 0) && !math.IsNaN(step)
}

// decimals counts the digits after the decimal point in the shortest
// representation of x.
func decimals(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return min(len(s)-i-1, maxDecimals)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// formatValue renders v with the precision implied by step and lo.
func formatValue(v, lo, step float64) string {
	return strconv.FormatFloat(v, 'f', max(decimals(step), decimals(lo)), 64)
}
