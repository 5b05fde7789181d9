package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/solnyshko2009/qui-task/internal/stats"
)

func TestLoadReport(t *testing.T) {
	rep := stats.Report{
		Input:   "sample.fastq",
		Summary: stats.Summary{TotalSequences: 2, TotalLength: 8, AverageLength: 4.0},
		Quality: []stats.PositionQuality{{Position: 1, Median: 40, Q10: 40, Q25: 40, Q75: 40, Q90: 40}},
		Content: []stats.PositionContent{{Position: 1, PercentA: 50, PercentT: 50}},
		Lengths: []stats.LengthBin{{Center: 4, Count: 2}},
	}
	data, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := loadReport(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Summary.TotalSequences != 2 || len(got.Quality) != 1 {
		t.Fatalf("unexpected report: %+v", got)
	}

	m := initialModel(got)
	if len(m.list.Items()) != 4 {
		t.Fatalf("expected 4 views in list, got %d", len(m.list.Items()))
	}
}

func TestLoadReportMissing(t *testing.T) {
	if _, err := loadReport(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing report")
	}
}

func TestBar(t *testing.T) {
	if bar(0, 10, 20) != "" {
		t.Fatal("zero count should draw nothing")
	}
	if got := bar(1, 1000, 20); got != "█" {
		t.Fatalf("non-zero count should draw at least one block, got %q", got)
	}
	if got := bar(10, 10, 20); len([]rune(got)) != 20 {
		t.Fatalf("max count should fill the bar, got %d runes", len([]rune(got)))
	}
}

func TestBandStyleThresholds(t *testing.T) {
	if bandStyle(19.9).GetForeground() != poorStyle.GetForeground() {
		t.Fatal("scores below 20 belong to the poor band")
	}
	if bandStyle(20).GetForeground() != medStyle.GetForeground() {
		t.Fatal("20 belongs to the medium band")
	}
	if bandStyle(28).GetForeground() != goodStyle.GetForeground() {
		t.Fatal("28 belongs to the good band")
	}
}
