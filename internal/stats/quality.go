package stats

import "github.com/solnyshko2009/qui-task/internal/quality"

// PerBaseQuality computes the quality score distribution per read
// position over a sample of the store. Records whose quality string is
// shorter than a position contribute nothing there; positions with no
// contributing values are omitted entirely.
func (e *Engine) PerBaseQuality() ([]PositionQuality, error) {
	if e.store.Count() == 0 {
		return nil, ErrNoData
	}

	records := e.sample()
	maxLen := 0
	for _, rec := range records {
		if len(rec.Quality) > maxLen {
			maxLen = len(rec.Quality)
		}
	}

	out := make([]PositionQuality, 0, maxLen)
	scores := make([]int, 0, len(records))
	for pos := 0; pos < maxLen; pos++ {
		scores = scores[:0]
		for _, rec := range records {
			if pos < len(rec.Quality) {
				scores = append(scores, quality.Score(rec.Quality[pos]))
			}
		}
		if len(scores) == 0 {
			continue
		}
		out = append(out, PositionQuality{
			Position: pos + 1,
			Median:   percentile(scores, 50),
			Q10:      percentile(scores, 10),
			Q25:      percentile(scores, 25),
			Q75:      percentile(scores, 75),
			Q90:      percentile(scores, 90),
		})
	}
	return out, nil
}
