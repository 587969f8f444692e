// Package motifscan provides a high-level API for scanning DNA sequences
// with position-specific scoring matrices.
//
// Example usage:
//
//	set, err := motifscan.LoadMotifs("motifs.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s, err := motifscan.NewSearchFromSet(set, motifscan.FlatBackground(), motifscan.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	seq, _ := motifscan.NewSequence("AAAAAGACAATGAAAAGCTTAGTCATGG")
//	results, err := s.Search(seq)
//	for i, hits := range results {
//	    fmt.Println(set.Motifs[i].Name, hits.Positions())
//	}
package motifscan

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aria-lang/motifscan-go/internal/background"
	"github.com/aria-lang/motifscan-go/internal/hits"
	"github.com/aria-lang/motifscan-go/internal/matrix"
	"github.com/aria-lang/motifscan-go/internal/motifio"
	"github.com/aria-lang/motifscan-go/internal/scan"
	"github.com/aria-lang/motifscan-go/internal/search"
	"github.com/aria-lang/motifscan-go/internal/sequence"
	"github.com/aria-lang/motifscan-go/internal/stats"
)

// Re-export types for convenience
type (
	Sequence           = sequence.Sequence
	CountMatrix        = matrix.CountMatrix
	ScoringMatrix      = matrix.ScoringMatrix
	Background         = background.Model
	Search             = search.Search
	Config             = search.Config
	AmbiguityPolicy    = scan.AmbiguityPolicy
	Hit                = hits.Hit
	HitList            = hits.List
	Position           = hits.Position
	Strand             = hits.Strand
	MotifSet           = motifio.Set
	Motif              = motifio.Motif
	MotifStats         = stats.MotifStats
	SearchStats        = stats.SearchStats
	SequenceStatistics = stats.SequenceStats
	ScoreHistogram     = stats.ScoreHistogram
)

// Constants
const (
	Forward           = hits.Forward
	Reverse           = hits.Reverse
	AmbiguitySkip     = scan.AmbiguitySkip
	AmbiguityMinScore = scan.AmbiguityMinScore
	AmbiguityStrict   = scan.AmbiguityStrict
	MaxLookahead      = scan.MaxLookahead

	// Alphabet is the symbol order of matrix rows and probabilities.
	Alphabet = sequence.Letters
	// DefaultBackgroundPseudocount is used by BackgroundFromSequence
	// callers that have no better value.
	DefaultBackgroundPseudocount = background.DefaultPseudocount
)

// NewSequence creates a new DNA sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a new sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// NewCountMatrix validates rows of counts in A, C, G, T order.
func NewCountMatrix(rows [][]float64) (*CountMatrix, error) {
	return matrix.NewCountMatrix(rows)
}

// LogOdds converts counts to a scoring matrix. A zero pseudocount selects
// the default.
func LogOdds(counts *CountMatrix, bg Background, pseudocount float64) (*ScoringMatrix, error) {
	if pseudocount == 0 {
		pseudocount = matrix.DefaultPseudocount
	}
	return matrix.LogOdds(counts, bg, pseudocount)
}

// FlatBackground returns the uniform background.
func FlatBackground() Background {
	return background.Flat{}
}

// EmpiricalBackground returns a background with explicit A, C, G, T
// probabilities.
func EmpiricalBackground(probs []float64) (Background, error) {
	bg, err := background.NewEmpirical(probs)
	if err != nil {
		return nil, err
	}
	return bg, nil
}

// BackgroundFromSequence estimates a background from base counts.
func BackgroundFromSequence(seq *Sequence, pseudocount float64) (Background, error) {
	bg, err := background.FromSequence(seq.Encode(), pseudocount)
	if err != nil {
		return nil, err
	}
	return bg, nil
}

// BackgroundProbabilities returns the probabilities of bg in Alphabet order.
func BackgroundProbabilities(bg Background) []float64 {
	return background.Vector(bg)
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return search.DefaultConfig()
}

// ParseAmbiguity parses "skip", "minscore" or "strict".
func ParseAmbiguity(s string) (AmbiguityPolicy, error) {
	return scan.ParseAmbiguity(s)
}

// NewSearch compiles count matrices and thresholds into a Search.
func NewSearch(counts []*CountMatrix, thresholds []float64, bg Background, cfg Config) (*Search, error) {
	return search.New(counts, thresholds, bg, cfg)
}

// NewSearchFromSet compiles a loaded motif set.
func NewSearchFromSet(set *MotifSet, bg Background, cfg Config) (*Search, error) {
	counts, err := set.Matrices()
	if err != nil {
		return nil, err
	}
	return search.New(counts, set.Thresholds(), bg, cfg)
}

// LoadMotifs reads a JSON motif set.
func LoadMotifs(filename string) (*MotifSet, error) {
	return motifio.LoadJSON(filename)
}

// ParseMotifs decodes a JSON motif set.
func ParseMotifs(r io.Reader) (*MotifSet, error) {
	return motifio.ReadJSON(r)
}

// LoadPFM reads a count matrix file.
func LoadPFM(filename string) (*CountMatrix, error) {
	return motifio.LoadPFM(filename)
}

// SequenceStats calculates base composition for a sequence.
func SequenceStats(seq *Sequence) *SequenceStatistics {
	return stats.FromSequence(seq)
}

// Summarize computes hit statistics for the results of a search over set.
func Summarize(set *MotifSet, results []HitList) (*SearchStats, error) {
	return stats.FromResults(set.Names(), results, set.Thresholds())
}

// Histogram bins the scores of one motif's hits above its threshold.
func Histogram(l HitList, threshold float64, bins int) (*ScoreHistogram, error) {
	return stats.NewScoreHistogram(l, threshold, bins)
}

// WriteMotifs encodes set as an indented JSON motif set.
func WriteMotifs(w io.Writer, set *MotifSet) error {
	return set.WriteJSON(w)
}

// ReadFASTA reads sequences from a FASTA file. Files ending in .gz are
// decompressed.
func ReadFASTA(filename string) ([]*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("opening gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	}
	return ParseFASTA(r)
}

// ParseFASTA parses FASTA format from a reader.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	sequences := make([]*Sequence, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)

	var currentID, currentDesc string
	var currentBases strings.Builder
	header := false

	flushSequence := func() error {
		if !header && currentBases.Len() == 0 {
			return nil
		}
		seq, err := sequence.WithMetadata(currentBases.String(), currentID, currentDesc)
		if err != nil {
			if currentID != "" {
				return fmt.Errorf("sequence %s: %w", currentID, err)
			}
			return err
		}
		sequences = append(sequences, seq)
		currentBases.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || line[0] == ';' {
			continue
		}

		if line[0] == '>' {
			if err := flushSequence(); err != nil {
				return nil, err
			}

			parts := strings.SplitN(line[1:], " ", 2)
			currentID = parts[0]
			currentDesc = ""
			if len(parts) > 1 {
				currentDesc = strings.TrimSpace(parts[1])
			}
			header = true
		} else {
			currentBases.WriteString(line)
		}
	}

	if err := flushSequence(); err != nil {
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return sequences, nil
}

// WriteFASTA writes sequences to w.
func WriteFASTA(w io.Writer, sequences []*Sequence) error {
	for _, seq := range sequences {
		if _, err := io.WriteString(w, seq.ToFASTA()); err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}
	return nil
}

// Version returns the motifscan version.
func Version() string {
	return "1.0.0"
}

// Info returns information about motifscan.
func Info() string {
	return fmt.Sprintf(`motifscan v%s - Motif Scanning Library

Finds every window of a DNA sequence where a position-specific scoring
matrix reaches its threshold.

Features:
  - Count to log-odds conversion against flat or empirical backgrounds
  - Background estimation from sequence composition
  - Branch-and-bound window scoring with a lookahead table
  - Forward and reverse complement strands
  - Parallel multi-motif search with deterministic results
  - JSON motif sets, PFM matrices and FASTA input
`, Version())
}
