package matrix

import (
	"fmt"
	"math"

	"github.com/aria-lang/motifscan-go/internal/background"
	"github.com/aria-lang/motifscan-go/internal/sequence"
	"github.com/aria-lang/motifscan-go/internal/validation"
)

// DefaultPseudocount is the pseudocount used when none is configured.
// It is spread over the symbols in proportion to the background.
const DefaultPseudocount = 1.0

// Column holds the scores of every symbol at one motif position.
type Column [sequence.AlphabetSize]float64

// Max returns the best score in the column.
func (c Column) Max() float64 {
	best := c[0]
	for _, v := range c[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// Min returns the worst score in the column.
func (c Column) Min() float64 {
	worst := c[0]
	for _, v := range c[1:] {
		if v < worst {
			worst = v
		}
	}
	return worst
}

// ScoringMatrix is a log-odds position-specific scoring matrix.
//
// Columns are stored contiguously so a window scan walks memory in order.
type ScoringMatrix struct {
	cols []Column
}

// NewScoringMatrix wraps precomputed log-odds rows (A, C, G, T order).
func NewScoringMatrix(rows [][]float64) (*ScoringMatrix, error) {
	width, err := checkRows(rows)
	if err != nil {
		return nil, err
	}

	m := &ScoringMatrix{cols: make([]Column, width)}
	for r := 0; r < sequence.AlphabetSize; r++ {
		for c, v := range rows[r] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, validation.Configf("scores", "score at row %c column %d must be finite, got %v",
					sequence.Letters[r], c, v)
			}
			m.cols[c][r] = v
		}
	}
	return m, nil
}

// LogOdds converts counts into log-odds scores against a background.
//
// For every column with total count N, symbol b scores
//
//	ln((count(b) + ps*bg(b)) / (N + ps)) - ln(bg(b))
//
// A column of all zeros is legal; its scores come from the pseudocount alone.
func LogOdds(counts *CountMatrix, bg background.Model, pseudocount float64) (*ScoringMatrix, error) {
	if counts == nil {
		return nil, validation.Configf("counts", "matrix is nil")
	}
	if pseudocount <= 0 || math.IsNaN(pseudocount) || math.IsInf(pseudocount, 0) {
		return nil, validation.Configf("pseudocount", "must be positive and finite, got %v", pseudocount)
	}
	if err := background.Validate(bg); err != nil {
		return nil, err
	}

	probs := background.Vector(bg)
	w := counts.Width()
	m := &ScoringMatrix{cols: make([]Column, w)}
	for c := 0; c < w; c++ {
		total := counts.ColumnTotal(c)
		for r := 0; r < sequence.AlphabetSize; r++ {
			adjusted := counts.Count(r, c) + pseudocount*probs[r]
			m.cols[c][r] = math.Log(adjusted/(total+pseudocount)) - math.Log(probs[r])
		}
	}
	return m, nil
}

// Width returns the number of motif positions.
func (m *ScoringMatrix) Width() int {
	return len(m.cols)
}

// Score returns the score of a symbol at a column.
func (m *ScoringMatrix) Score(symbol uint8, col int) float64 {
	return m.cols[col][symbol]
}

// Column returns the scores at one position.
func (m *ScoringMatrix) Column(col int) Column {
	return m.cols[col]
}

// ColumnMax returns the best score at one position.
func (m *ScoringMatrix) ColumnMax(col int) float64 {
	return m.cols[col].Max()
}

// ColumnMin returns the worst score at one position.
func (m *ScoringMatrix) ColumnMin(col int) float64 {
	return m.cols[col].Min()
}

// MaxScore returns the highest achievable window score.
func (m *ScoringMatrix) MaxScore() float64 {
	total := 0.0
	for _, c := range m.cols {
		total += c.Max()
	}
	return total
}

// MinScore returns the lowest achievable window score.
func (m *ScoringMatrix) MinScore() float64 {
	total := 0.0
	for _, c := range m.cols {
		total += c.Min()
	}
	return total
}

// ReverseComplement returns the matrix that scores the opposite strand.
func (m *ScoringMatrix) ReverseComplement() *ScoringMatrix {
	w := len(m.cols)
	rc := &ScoringMatrix{cols: make([]Column, w)}
	for c := 0; c < w; c++ {
		for r := 0; r < sequence.AlphabetSize; r++ {
			rc.cols[c][r] = m.cols[w-1-c][sequence.ComplementSymbol(uint8(r))]
		}
	}
	return rc
}

// Rows returns a copy of the scores as rows.
func (m *ScoringMatrix) Rows() [][]float64 {
	out := make([][]float64, sequence.AlphabetSize)
	for r := range out {
		out[r] = make([]float64, len(m.cols))
		for c, col := range m.cols {
			out[r][c] = col[r]
		}
	}
	return out
}

// String returns a string representation of the scoring matrix.
func (m *ScoringMatrix) String() string {
	return fmt.Sprintf("ScoringMatrix { width: %d, max: %.4f, min: %.4f }",
		m.Width(), m.MaxScore(), m.MinScore())
}
