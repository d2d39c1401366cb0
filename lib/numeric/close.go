package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Tolerances used by Close. A difference within either bound counts as equal.
const (
	RelTol = 1e-6
	AbsTol = 1e-9
)

// Close reports whether a and b are approximately equal:
// |a-b| <= max(RelTol*max(|a|, |b|), AbsTol).
func Close[T constraints.Float](a, b T) bool {
	x, y := float64(a), float64(b)
	if x == y {
		return true
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	diff := math.Abs(x - y)
	return diff <= math.Max(RelTol*math.Max(math.Abs(x), math.Abs(y)), AbsTol)
}
