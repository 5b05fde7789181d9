package quality

// Package quality converts Phred+33 encoded quality strings into numeric
// scores and computes per-read quality metrics. It is deliberately lenient:
// characters below the offset simply decode to negative scores, matching the
// tolerant parsing policy of the rest of the project.

import "math"

// Offset is the ASCII offset of the Phred+33 encoding.
const Offset = 33

// MaxScore is the upper end of the typical Phred+33 score range.
const MaxScore = 93

// errorProbs maps a raw quality character to its error probability,
// precomputed once for all 256 byte values.
var errorProbs [256]float64

func init() {
	for i := range errorProbs {
		errorProbs[i] = math.Pow(10, float64(i-Offset)/-10)
	}
}

// Score decodes a single quality character.
func Score(c byte) int {
	return int(c) - Offset
}

// Decode converts a quality string into one integer score per position.
func Decode(qual string) []int {
	scores := make([]int, len(qual))
	for i := 0; i < len(qual); i++ {
		scores[i] = Score(qual[i])
	}
	return scores
}

// Average returns the arithmetic mean of scores rounded to 2 decimal
// places, or 0.0 for an empty input.
func Average(scores []int) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return Round2(float64(sum) / float64(len(scores)))
}

// ExpectedErrors returns the sum of per-position error probabilities for a
// quality string (the absolute expected number of erroneous base calls).
func ExpectedErrors(qual string) float64 {
	var sum float64
	for i := 0; i < len(qual); i++ {
		sum += errorProbs[qual[i]]
	}
	return sum
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
