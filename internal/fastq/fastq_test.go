package fastq

import (
	"compress/gzip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sample = "@r1\nACGT\n+\n!!!!\n@r2\nACGG\n+\nIIII\n"

func TestParseTwoRecords(t *testing.T) {
	store, err := NewReader().Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if store.Count() != 2 {
		t.Fatalf("expected 2 records, got %d", store.Count())
	}
	if store.TotalLength() != 8 {
		t.Fatalf("expected total length 8, got %d", store.TotalLength())
	}

	seq, err := store.Sequence("r1")
	if err != nil || seq != "ACGT" {
		t.Fatalf("unexpected r1 sequence: %q, %v", seq, err)
	}
	if n, _ := store.SequenceLength("r2"); n != 4 {
		t.Fatalf("expected r2 length 4, got %d", n)
	}

	// '!' decodes to 0, 'I' to 40
	if avg, _ := store.AverageQuality("r1"); avg != 0.0 {
		t.Fatalf("expected r1 average quality 0.0, got %v", avg)
	}
	if avg, _ := store.AverageQuality("r2"); avg != 40.0 {
		t.Fatalf("expected r2 average quality 40.0, got %v", avg)
	}
}

func TestParseSkipsInvalidSequences(t *testing.T) {
	input := "@ok\nACGT\n+\nIIII\n@bad\nacgt\n+\nIIII\n@amb\nACXT\n+\nIIII\n"
	store, err := NewReader().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if store.Count() != 1 {
		t.Fatalf("expected only the valid record, got %d", store.Count())
	}
	if _, err := store.Get("bad"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected skipped record to be absent, got %v", err)
	}
}

func TestParseCustomValidator(t *testing.T) {
	r := &Reader{Validate: func(string) bool { return true }}
	store, err := r.Parse(strings.NewReader("@x\nacgt\n+\nIIII\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if store.Count() != 1 {
		t.Fatalf("custom validator should accept lowercase, got %d records", store.Count())
	}
}

func TestParseTruncatedGroup(t *testing.T) {
	input := "@r1\nACGT\n+\nIIII\n@r2\nACGT\n"
	_, err := NewReader().Parse(strings.NewReader(input))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	store, err := NewReader().Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if store.Count() != 0 {
		t.Fatalf("expected empty store, got %d records", store.Count())
	}
	if avg := store.AverageSequenceLength(); avg != 0.0 {
		t.Fatalf("expected 0.0 average length on empty store, got %v", avg)
	}
}

func TestDuplicateIDOverwrites(t *testing.T) {
	input := "@a\nACGTACGT\n+\nIIIIIIII\n@b\nGGGG\n+\nIIII\n@a\nAC\n+\nII\n"
	store, err := NewReader().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if store.Count() != 2 {
		t.Fatalf("expected 2 records after overwrite, got %d", store.Count())
	}
	if store.TotalLength() != 6 {
		t.Fatalf("expected total length 6 after overwrite, got %d", store.TotalLength())
	}
	if seq, _ := store.Sequence("a"); seq != "AC" {
		t.Fatalf("expected later record to win, got %q", seq)
	}
	// overwrite keeps the original position
	if recs := store.Records(); recs[0].ID != "a" || recs[1].ID != "b" {
		t.Fatalf("unexpected record order: %v, %v", recs[0].ID, recs[1].ID)
	}
}

func TestLookupUnknownID(t *testing.T) {
	store, _ := NewReader().Parse(strings.NewReader(sample))
	if _, err := store.Sequence("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.AverageQuality("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAverageQualityEmptyQualityString(t *testing.T) {
	store := NewStore()
	store.Add(Record{ID: "x", Sequence: "ACGT", Quality: ""})
	avg, err := store.AverageQuality("x")
	if err != nil {
		t.Fatalf("average quality: %v", err)
	}
	if avg != 0.0 {
		t.Fatalf("expected 0.0 for empty quality, got %v", avg)
	}
}

func TestGCContent(t *testing.T) {
	store := NewStore()
	store.Add(Record{ID: "x", Sequence: "ACGT", Quality: "IIII"})
	gc, err := store.GCContent("x")
	if err != nil {
		t.Fatalf("gc content: %v", err)
	}
	if gc != 50.0 {
		t.Fatalf("expected 50.0, got %v", gc)
	}
}

// writeGz creates a gzipped FASTQ file with provided data, returns the path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fmt.Sprintf("test-%d.fastq.gz", time.Now().UnixNano()))
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestParseFileGzip(t *testing.T) {
	path := writeGz(t, sample)
	store, err := NewReader().ParseFile(path)
	if err != nil {
		t.Fatalf("parse gz: %v", err)
	}
	if store.Count() != 2 {
		t.Fatalf("expected 2 records from gzip input, got %d", store.Count())
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := NewReader().ParseFile(filepath.Join(t.TempDir(), "missing.fastq"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}
