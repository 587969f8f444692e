// Package motifio reads motif sets and count matrix files.
//
// A motif set is a JSON document:
//
//	{"motifs": [{"name": "acuR", "threshold": 0.68, "counts": [[...], [...], [...], [...]]}]}
//
// A PFM file holds one count matrix as four rows of whitespace-separated
// numbers in A, C, G, T order.
package motifio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aria-lang/motifscan-go/internal/matrix"
	"github.com/aria-lang/motifscan-go/internal/sequence"
)

// Motif is one named count matrix with its score threshold.
type Motif struct {
	Name      string      `json:"name"`
	Threshold float64     `json:"threshold"`
	Counts    [][]float64 `json:"counts"`
}

// Set is an ordered collection of motifs.
type Set struct {
	Motifs []Motif `json:"motifs"`
}

// ReadJSON decodes a motif set.
func ReadJSON(r io.Reader) (*Set, error) {
	var set Set
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("decoding motif set: %w", err)
	}
	for i, m := range set.Motifs {
		if m.Name == "" {
			set.Motifs[i].Name = fmt.Sprintf("motif_%d", i+1)
		}
	}
	return &set, nil
}

// LoadJSON reads a motif set from a file.
func LoadJSON(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ReadJSON(file)
}

// WriteJSON encodes the set with indentation.
func (s *Set) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Len returns the number of motifs.
func (s *Set) Len() int {
	return len(s.Motifs)
}

// Names returns the motif names in set order.
func (s *Set) Names() []string {
	out := make([]string, len(s.Motifs))
	for i, m := range s.Motifs {
		out[i] = m.Name
	}
	return out
}

// Thresholds returns the thresholds in set order.
func (s *Set) Thresholds() []float64 {
	out := make([]float64, len(s.Motifs))
	for i, m := range s.Motifs {
		out[i] = m.Threshold
	}
	return out
}

// Matrices validates every motif and returns its count matrix.
func (s *Set) Matrices() ([]*matrix.CountMatrix, error) {
	out := make([]*matrix.CountMatrix, len(s.Motifs))
	for i, m := range s.Motifs {
		cm, err := matrix.NewCountMatrix(m.Counts)
		if err != nil {
			return nil, fmt.Errorf("motif %q: %w", m.Name, err)
		}
		out[i] = cm
	}
	return out, nil
}

// ReadPFM parses a single count matrix.
//
// Blank lines and lines starting with '#' are skipped. A row may carry a
// leading symbol label ("A", "A:" or "A [") and a trailing "]". Labelled
// rows may come in any order; unlabelled rows are taken as A, C, G, T.
func ReadPFM(r io.Reader) (*matrix.CountMatrix, error) {
	rows := make([][]float64, sequence.AlphabetSize)
	seen := 0
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if seen == sequence.AlphabetSize {
			return nil, fmt.Errorf("line %d: more than %d rows", lineNo, sequence.AlphabetSize)
		}

		row := seen
		fields := strings.Fields(strings.NewReplacer("[", " ", "]", " ", ":", " ").Replace(line))
		if len(fields) > 0 {
			if sym, ok := rowLabel(fields[0]); ok {
				row = sym
				fields = fields[1:]
			}
		}
		if rows[row] != nil {
			return nil, fmt.Errorf("line %d: duplicate row %c", lineNo, sequence.Letters[row])
		}

		values := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid count %q", lineNo, f)
			}
			values[i] = v
		}
		rows[row] = values
		seen++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if seen != sequence.AlphabetSize {
		return nil, fmt.Errorf("expected %d rows, got %d", sequence.AlphabetSize, seen)
	}
	return matrix.NewCountMatrix(rows)
}

// LoadPFM reads a count matrix from a file.
func LoadPFM(path string) (*matrix.CountMatrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ReadPFM(file)
}

func rowLabel(field string) (int, bool) {
	if len(field) != 1 {
		return 0, false
	}
	i := strings.IndexByte(sequence.Letters, field[0]&^0x20)
	return i, i >= 0
}
