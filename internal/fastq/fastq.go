package fastq

// Package fastq owns the parsed FASTQ records and the aggregate totals
// derived from them. A Store is rebuilt from scratch on every parse; the
// totals are maintained against the mapping so they can never drift.

import (
	"fmt"

	"github.com/solnyshko2009/qui-task/internal/quality"
)

// Record is a single FASTQ record: identifier (header without the '@'
// marker), nucleotide sequence and Phred+33 quality string. Records are
// immutable once stored.
type Record struct {
	ID       string `json:"id"`
	Sequence string `json:"sequence"`
	Quality  string `json:"quality"`
}

// Store maps record ids to records, preserving insertion order for
// deterministic iteration and sampling.
type Store struct {
	index       map[string]int
	records     []Record
	totalLength int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Add inserts a record keyed by its id. A duplicate id overwrites the
// earlier record in place, keeping its original position; the cumulative
// length is adjusted so the Store invariants hold.
func (s *Store) Add(rec Record) {
	if i, ok := s.index[rec.ID]; ok {
		s.totalLength += len(rec.Sequence) - len(s.records[i].Sequence)
		s.records[i] = rec
		return
	}
	s.index[rec.ID] = len(s.records)
	s.records = append(s.records, rec)
	s.totalLength += len(rec.Sequence)
}

// Count returns the number of stored records.
func (s *Store) Count() int {
	return len(s.records)
}

// TotalLength returns the summed length of all stored sequences.
func (s *Store) TotalLength() int {
	return s.totalLength
}

// Records returns the stored records in insertion order. Callers must not
// modify the returned slice.
func (s *Store) Records() []Record {
	return s.records
}

// Get looks up a record by id.
func (s *Store) Get(id string) (Record, error) {
	i, ok := s.index[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s.records[i], nil
}

// Sequence returns the nucleotide sequence for id.
func (s *Store) Sequence(id string) (string, error) {
	rec, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return rec.Sequence, nil
}

// SequenceLength returns the length of the sequence for id.
func (s *Store) SequenceLength(id string) (int, error) {
	rec, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	return len(rec.Sequence), nil
}

// AverageSequenceLength returns the mean sequence length rounded to 2
// decimal places, or 0.0 for an empty store.
func (s *Store) AverageSequenceLength() float64 {
	if len(s.records) == 0 {
		return 0.0
	}
	return quality.Round2(float64(s.totalLength) / float64(len(s.records)))
}

// AverageQuality returns the mean Phred score of the record's quality
// string rounded to 2 decimal places. A record with an empty quality
// string yields 0.0 rather than an error.
func (s *Store) AverageQuality(id string) (float64, error) {
	rec, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	return quality.Average(quality.Decode(rec.Quality)), nil
}

// GCContent returns the fraction of G and C symbols in the record's
// sequence, rounded to 2 decimal places as a percentage (0-100).
func (s *Store) GCContent(id string) (float64, error) {
	rec, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	if len(rec.Sequence) == 0 {
		return 0.0, nil
	}
	gc := 0
	for i := 0; i < len(rec.Sequence); i++ {
		if c := rec.Sequence[i]; c == 'G' || c == 'C' {
			gc++
		}
	}
	return quality.Round2(float64(gc) * 100 / float64(len(rec.Sequence))), nil
}
