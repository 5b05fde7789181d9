package stats

// DefaultBins is the histogram bin count for the length distribution.
const DefaultBins = 30

// LengthDistribution computes an equal-width histogram over the lengths of
// ALL stored records (this view is never sampled). It always emits exactly
// bins entries ordered by increasing bin center, including empty bins, so
// counts sum to the store's record count. bins <= 0 means DefaultBins.
func (e *Engine) LengthDistribution(bins int) ([]LengthBin, error) {
	if e.store.Count() == 0 {
		return nil, ErrNoData
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	records := e.store.Records()
	minLen, maxLen := len(records[0].Sequence), len(records[0].Sequence)
	for _, rec := range records[1:] {
		if n := len(rec.Sequence); n < minLen {
			minLen = n
		} else if n > maxLen {
			maxLen = n
		}
	}

	// Degenerate range: all lengths equal. Widen by half a unit each
	// side so every record lands in a well-defined bin.
	lo, hi := float64(minLen), float64(maxLen)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)

	out := make([]LengthBin, bins)
	for i := range out {
		out[i].Center = lo + width*(float64(i)+0.5)
	}
	for _, rec := range records {
		i := int((float64(len(rec.Sequence)) - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out, nil
}
