// Package background provides the null symbol distributions that motif
// scores are measured against.
//
// A Model returns a strictly positive probability for each scoring symbol
// in canonical order (A, C, G, T). Two variants exist: Flat, the uniform
// distribution, and Empirical, an explicit distribution that is either
// supplied by the caller or estimated from a sequence.
package background

import (
	"fmt"
	"math"

	"github.com/aria-lang/motifscan-go/internal/sequence"
	"github.com/aria-lang/motifscan-go/internal/validation"
)

// SumTolerance is the allowed absolute deviation of a model's total
// probability from 1.
const SumTolerance = 1e-6

// DefaultPseudocount is the pseudocount suggested for FromSequence.
const DefaultPseudocount = 0.1

// Model supplies the baseline probability of each scoring symbol.
type Model interface {
	Prob(symbol int) float64
}

// Flat is the uniform background.
type Flat struct{}

// Prob returns 1/4 for every symbol.
func (Flat) Prob(int) float64 {
	return 1.0 / sequence.AlphabetSize
}

func (Flat) String() string {
	return "flat"
}

// Empirical is a background with explicit per-symbol probabilities.
type Empirical struct {
	probs [sequence.AlphabetSize]float64
}

// NewEmpirical creates a background from probabilities in A, C, G, T order.
func NewEmpirical(probs []float64) (*Empirical, error) {
	if len(probs) != sequence.AlphabetSize {
		return nil, validation.Configf("background", "expected %d probabilities, got %d",
			sequence.AlphabetSize, len(probs))
	}

	e := &Empirical{}
	copy(e.probs[:], probs)
	if err := Validate(e); err != nil {
		return nil, err
	}
	return e, nil
}

// FromSequence estimates a background from the symbol counts of a sequence.
//
// Each probability is (count + pseudocount) / (total + 4*pseudocount).
// Ambiguous symbols are not counted.
func FromSequence(enc *sequence.Encoded, pseudocount float64) (*Empirical, error) {
	if pseudocount < 0 || math.IsNaN(pseudocount) || math.IsInf(pseudocount, 0) {
		return nil, validation.Configf("pseudocount", "must be a non-negative finite number, got %v", pseudocount)
	}

	counts := enc.Counts()
	total := 0.0
	for _, c := range counts {
		total += float64(c)
	}

	denom := total + sequence.AlphabetSize*pseudocount
	if denom == 0 {
		return nil, validation.Configf("background", "sequence has no scoring symbols and pseudocount is zero")
	}

	probs := make([]float64, sequence.AlphabetSize)
	for i, c := range counts {
		probs[i] = (float64(c) + pseudocount) / denom
	}
	return NewEmpirical(probs)
}

// Prob returns the probability of a symbol.
func (e *Empirical) Prob(symbol int) float64 {
	return e.probs[symbol]
}

func (e *Empirical) String() string {
	return fmt.Sprintf("empirical{A: %.4f, C: %.4f, G: %.4f, T: %.4f}",
		e.probs[0], e.probs[1], e.probs[2], e.probs[3])
}

// Validate checks that a model gives strictly positive, finite
// probabilities summing to 1 within SumTolerance.
func Validate(m Model) error {
	if m == nil {
		return validation.Configf("background", "model is nil")
	}

	sum := 0.0
	for s := 0; s < sequence.AlphabetSize; s++ {
		p := m.Prob(s)
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return validation.Configf("background", "probability of %c must be positive and finite, got %v",
				sequence.Letters[s], p)
		}
		sum += p
	}

	if math.Abs(sum-1) > SumTolerance {
		return validation.Configf("background", "probabilities sum to %v, want 1", sum)
	}
	return nil
}

// Vector returns the model's probabilities in canonical order.
func Vector(m Model) []float64 {
	out := make([]float64, sequence.AlphabetSize)
	for s := range out {
		out[s] = m.Prob(s)
	}
	return out
}
