package stats

// PerBaseContent computes the percentage of A, T, C and G per read
// position over a sample of the store. Symbols outside the canonical four
// (ambiguity codes such as N) are excluded from both the counts and the
// normalisation total; positions where no recognised symbol occurs are
// omitted.
func (e *Engine) PerBaseContent() ([]PositionContent, error) {
	if e.store.Count() == 0 {
		return nil, ErrNoData
	}

	records := e.sample()
	maxLen := 0
	for _, rec := range records {
		if len(rec.Sequence) > maxLen {
			maxLen = len(rec.Sequence)
		}
	}

	type counts struct{ a, t, c, g int }
	perPos := make([]counts, maxLen)
	for _, rec := range records {
		for pos := 0; pos < len(rec.Sequence); pos++ {
			switch rec.Sequence[pos] {
			case 'A':
				perPos[pos].a++
			case 'T':
				perPos[pos].t++
			case 'C':
				perPos[pos].c++
			case 'G':
				perPos[pos].g++
			}
		}
	}

	out := make([]PositionContent, 0, maxLen)
	for pos, n := range perPos {
		total := n.a + n.t + n.c + n.g
		if total == 0 {
			continue
		}
		out = append(out, PositionContent{
			Position: pos + 1,
			PercentA: float64(n.a) * 100 / float64(total),
			PercentT: float64(n.t) * 100 / float64(total),
			PercentC: float64(n.c) * 100 / float64(total),
			PercentG: float64(n.g) * 100 / float64(total),
		})
	}
	return out, nil
}
