// Package sequence provides validated DNA sequences and their numeric
// encoding for motif scanning.
//
// Bases are case-insensitive. A, C, G and T (and U, read as T) are
// scoring symbols; the IUPAC ambiguity codes are accepted and encoded as
// the single Ambiguous symbol. Every other byte is rejected.
package sequence

import (
	"fmt"
	"strings"
)

// Sequence represents a validated DNA sequence.
//
// A Sequence is never modified after construction.
type Sequence struct {
	Bases       string
	ID          string
	Description string
}

// New creates a new sequence with validation.
func New(bases string) (*Sequence, error) {
	normalized := strings.ToUpper(bases)

	if err := Validate(normalized); err != nil {
		return nil, err
	}

	return &Sequence{Bases: normalized}, nil
}

// WithID creates a new sequence with an identifier.
func WithID(bases, id string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// WithMetadata creates a new sequence with full metadata.
func WithMetadata(bases, id, description string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	seq.Description = description
	return seq, nil
}

// Len returns the length of the sequence.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// CountAmbiguous counts the number of ambiguous bases.
func (s *Sequence) CountAmbiguous() int {
	count := 0
	for i := 0; i < len(s.Bases); i++ {
		if IsAmbiguous(s.Bases[i]) {
			count++
		}
	}
	return count
}

// Subsequence returns the bases in [start, end) as a new sequence.
func (s *Sequence) Subsequence(start, end int) (*Sequence, error) {
	if start < 0 {
		return nil, fmt.Errorf("start index must be non-negative")
	}
	if end < start {
		return nil, fmt.Errorf("end must not be less than start")
	}
	if end > len(s.Bases) {
		return nil, fmt.Errorf("end must not exceed sequence length")
	}

	return &Sequence{
		Bases:       s.Bases[start:end],
		ID:          s.ID,
		Description: s.Description,
	}, nil
}

// ReverseComplement returns the reverse complement of the sequence.
// Ambiguity codes map to their IUPAC complements.
func (s *Sequence) ReverseComplement() *Sequence {
	n := len(s.Bases)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s.Bases[n-1-i]]
	}

	return &Sequence{
		Bases:       string(out),
		ID:          s.ID,
		Description: s.Description,
	}
}

// Encode converts the sequence into scanning symbols.
func (s *Sequence) Encode() *Encoded {
	return encode(s.Bases)
}

// ToFASTA returns the sequence in FASTA format.
func (s *Sequence) ToFASTA() string {
	header := ">sequence"
	if s.ID != "" {
		header = ">" + s.ID
		if s.Description != "" {
			header += " " + s.Description
		}
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')

	// Split sequence into 80-character lines
	for i := 0; i < len(s.Bases); i += 80 {
		end := i + 80
		if end > len(s.Bases) {
			end = len(s.Bases)
		}
		sb.WriteString(s.Bases[i:end])
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return ">" + s.ID + "\n" + s.Bases
	}
	return s.Bases
}
