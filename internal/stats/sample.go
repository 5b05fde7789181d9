package stats

import "github.com/solnyshko2009/qui-task/internal/fastq"

// sample returns the records used for the per-position views: all of them
// when the store holds at most sampleSize records, otherwise a uniform
// random subset of exactly sampleSize drawn without replacement.
func (e *Engine) sample() []fastq.Record {
	records := e.store.Records()
	if len(records) <= e.sampleSize {
		return records
	}
	picked := make([]fastq.Record, e.sampleSize)
	for i, j := range e.rng.Perm(len(records))[:e.sampleSize] {
		picked[i] = records[j]
	}
	return picked
}
