package stats

import "time"

// Summary carries the scalar totals of a parsed file.
type Summary struct {
	TotalSequences int     `json:"total_sequences"`
	TotalLength    int     `json:"total_length"`
	AverageLength  float64 `json:"average_length"`
}

// Report bundles the three aggregate views plus the scalar summary. It is
// the full data contract consumed by renderers such as the TUI browser;
// this package never draws anything itself.
type Report struct {
	Input       string            `json:"input,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
	Summary     Summary           `json:"summary"`
	Quality     []PositionQuality `json:"per_base_quality"`
	Content     []PositionContent `json:"per_base_content"`
	Lengths     []LengthBin       `json:"length_distribution"`
}

// BuildReport computes all three views and the summary in one pass. The
// same sampling configuration applies to the quality and content views.
func (e *Engine) BuildReport(input string) (*Report, error) {
	qual, err := e.PerBaseQuality()
	if err != nil {
		return nil, err
	}
	content, err := e.PerBaseContent()
	if err != nil {
		return nil, err
	}
	lengths, err := e.LengthDistribution(DefaultBins)
	if err != nil {
		return nil, err
	}
	return &Report{
		Input:       input,
		GeneratedAt: time.Now().UTC(),
		Summary: Summary{
			TotalSequences: e.store.Count(),
			TotalLength:    e.store.TotalLength(),
			AverageLength:  e.store.AverageSequenceLength(),
		},
		Quality: qual,
		Content: content,
		Lengths: lengths,
	}, nil
}
