package scan

import (
	"github.com/aria-lang/motifscan-go/internal/hits"
	"github.com/aria-lang/motifscan-go/internal/matrix"
	"github.com/aria-lang/motifscan-go/internal/sequence"
)

// Naive scores every window in full, without pruning or lookahead, and
// skips windows holding an ambiguous symbol. It is the reference the
// compiled Plan is checked against.
func Naive(m *matrix.ScoringMatrix, threshold float64, enc *sequence.Encoded, strand hits.Strand) []hits.Hit {
	return naive(m, threshold, enc, strand, AmbiguitySkip)
}

func naive(m *matrix.ScoringMatrix, threshold float64, enc *sequence.Encoded, strand hits.Strand, policy AmbiguityPolicy) []hits.Hit {
	w := m.Width()
	var out []hits.Hit
	for i := 0; i+w <= enc.Len(); i++ {
		s := 0.0
		ambiguous := false
		for c := 0; c < w; c++ {
			sym := enc.Codes[i+c]
			if sym == sequence.Ambiguous {
				ambiguous = true
				s += m.ColumnMin(c)
				continue
			}
			s += m.Score(sym, c)
		}
		if ambiguous && policy != AmbiguityMinScore {
			continue
		}
		if s >= threshold {
			out = append(out, hits.Hit{Position: hits.Position{Offset: i, Strand: strand}, Score: s})
		}
	}
	return out
}
