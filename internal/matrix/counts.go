// Package matrix provides motif count matrices and the log-odds scoring
// matrices derived from them.
//
// Rows follow the canonical symbol order A, C, G, T; columns are motif
// positions. Both matrix types are immutable once built.
package matrix

import (
	"fmt"
	"math"

	"github.com/aria-lang/motifscan-go/internal/sequence"
	"github.com/aria-lang/motifscan-go/internal/validation"
)

// CountMatrix is a position frequency matrix of non-negative counts.
type CountMatrix struct {
	rows [sequence.AlphabetSize][]float64
}

// NewCountMatrix validates and copies rows of counts.
func NewCountMatrix(rows [][]float64) (*CountMatrix, error) {
	width, err := checkRows(rows)
	if err != nil {
		return nil, err
	}

	m := &CountMatrix{}
	for r := range m.rows {
		m.rows[r] = make([]float64, width)
		for c, v := range rows[r] {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, validation.Configf("counts",
					"count at row %c column %d must be non-negative and finite, got %v",
					sequence.Letters[r], c, v)
			}
			m.rows[r][c] = v
		}
	}
	return m, nil
}

// checkRows verifies the matrix is rectangular with one row per symbol.
func checkRows(rows [][]float64) (int, error) {
	if len(rows) != sequence.AlphabetSize {
		return 0, validation.Configf("counts", "expected %d rows, got %d", sequence.AlphabetSize, len(rows))
	}
	width := len(rows[0])
	if width == 0 {
		return 0, validation.Configf("counts", "matrix has no columns")
	}
	for r := 1; r < len(rows); r++ {
		if len(rows[r]) != width {
			return 0, validation.Configf("counts", "row %c has %d columns, row A has %d",
				sequence.Letters[r], len(rows[r]), width)
		}
	}
	return width, nil
}

// Width returns the number of motif positions.
func (m *CountMatrix) Width() int {
	return len(m.rows[0])
}

// Count returns the count of a symbol at a column.
func (m *CountMatrix) Count(symbol, col int) float64 {
	return m.rows[symbol][col]
}

// ColumnTotal returns the sum of counts in a column.
func (m *CountMatrix) ColumnTotal(col int) float64 {
	total := 0.0
	for r := range m.rows {
		total += m.rows[r][col]
	}
	return total
}

// Rows returns a copy of the counts as rows.
func (m *CountMatrix) Rows() [][]float64 {
	out := make([][]float64, sequence.AlphabetSize)
	for r := range m.rows {
		out[r] = append([]float64(nil), m.rows[r]...)
	}
	return out
}

// ReverseComplement returns the matrix of the opposite strand: columns are
// reversed and the rows of complementary symbols are swapped.
func (m *CountMatrix) ReverseComplement() *CountMatrix {
	w := m.Width()
	rc := &CountMatrix{}
	for r := range rc.rows {
		src := m.rows[sequence.ComplementSymbol(uint8(r))]
		rc.rows[r] = make([]float64, w)
		for c := 0; c < w; c++ {
			rc.rows[r][c] = src[w-1-c]
		}
	}
	return rc
}

func (m *CountMatrix) String() string {
	return fmt.Sprintf("CountMatrix { width: %d }", m.Width())
}
