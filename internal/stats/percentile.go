package stats

import (
	"math"
	"sort"
)

// percentile computes the p-th percentile (0-100) of values using linear
// interpolation between closest ranks. values is sorted in place.
func percentile(values []int, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Ints(values)
	if len(values) == 1 {
		return float64(values[0])
	}
	rank := p / 100 * float64(len(values)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return float64(values[lo])
	}
	frac := rank - float64(lo)
	return float64(values[lo]) + frac*float64(values[hi]-values[lo])
}
