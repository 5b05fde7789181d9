package stats

// Package stats computes FastQC-style aggregate views over a populated
// fastq.Store: per-base quality distribution, per-base nucleotide content
// and sequence length distribution. Computation is pure; rendering belongs
// to the callers that consume the emitted structures.

import (
	"errors"
	"math/rand"
	"time"

	"github.com/solnyshko2009/qui-task/internal/fastq"
)

// ErrNoData is returned when statistics are requested before any record
// has been loaded.
var ErrNoData = errors.New("no data loaded")

// Quality bands used by downstream renderers to shade the per-base quality
// view. Scores in [0, PoorMax) are poor, [PoorMax, MediumMax) medium and
// [MediumMax, inf) good.
const (
	PoorMax   = 20
	MediumMax = 28
)

// DefaultSampleSize caps the number of records used for the per-position
// views on large inputs.
const DefaultSampleSize = 5000

// PositionQuality summarises the quality score distribution at one 1-based
// read position.
type PositionQuality struct {
	Position int     `json:"position"`
	Median   float64 `json:"median"`
	Q10      float64 `json:"q10"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Q90      float64 `json:"q90"`
}

// PositionContent holds the percentage of each canonical nucleotide at one
// 1-based read position, normalised over recognised symbols only.
type PositionContent struct {
	Position int     `json:"position"`
	PercentA float64 `json:"percent_a"`
	PercentT float64 `json:"percent_t"`
	PercentC float64 `json:"percent_c"`
	PercentG float64 `json:"percent_g"`
}

// LengthBin is one histogram bin of the sequence length distribution.
type LengthBin struct {
	Center float64 `json:"center"`
	Count  int     `json:"count"`
}

// Config tunes an Engine. The zero value yields the defaults.
type Config struct {
	// SampleSize bounds the record sample for the per-position views;
	// <= 0 means DefaultSampleSize.
	SampleSize int
	// Rand is the randomness source used for sampling. Injecting a
	// seeded source makes sampling reproducible; nil means a
	// time-seeded source.
	Rand *rand.Rand
}

// Engine computes the aggregate views over a single Store. It retains the
// Store reference only for its own lifetime and never mutates it.
type Engine struct {
	store      *fastq.Store
	sampleSize int
	rng        *rand.Rand
}

// New returns an Engine over store.
func New(store *fastq.Store, cfg Config) *Engine {
	size := cfg.SampleSize
	if size <= 0 {
		size = DefaultSampleSize
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{store: store, sampleSize: size, rng: rng}
}
