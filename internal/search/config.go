package search

import (
	"math"
	"runtime"

	"github.com/aria-lang/motifscan-go/internal/matrix"
	"github.com/aria-lang/motifscan-go/internal/scan"
	"github.com/aria-lang/motifscan-go/internal/validation"
)

// Config controls how a Search scans.
type Config struct {
	// ScanBothStrands also scans the reverse complement strand.
	ScanBothStrands bool `json:"scan_both_strands"`
	// PValueThresholds marks the thresholds as p-values. Only absolute
	// score thresholds are supported, so setting it fails construction.
	PValueThresholds bool `json:"pvalue_thresholds,omitempty"`
	// Lookahead is the lookahead table width, in [0, scan.MaxLookahead].
	Lookahead int                  `json:"lookahead"`
	Ambiguity scan.AmbiguityPolicy `json:"ambiguity"`
	// Pseudocount for the count to log-odds conversion. Zero selects
	// matrix.DefaultPseudocount.
	Pseudocount float64 `json:"pseudocount,omitempty"`
	// Workers is the worker pool size. Zero selects runtime.NumCPU.
	Workers int `json:"workers,omitempty"`
	// ChunkSize splits each strand scan into ranges of this many window
	// starts. Zero scans each strand as one job.
	ChunkSize int `json:"chunk_size,omitempty"`
}

// DefaultConfig scans both strands with a 7-column lookahead table and
// skips ambiguous windows.
func DefaultConfig() Config {
	opt := scan.DefaultOptions()
	return Config{
		ScanBothStrands: true,
		Lookahead:       opt.Lookahead,
		Ambiguity:       opt.Ambiguity,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.PValueThresholds {
		return validation.Configf("pvalue_thresholds", "p-value thresholds are not supported, pass absolute scores")
	}
	if err := c.options().Validate(); err != nil {
		return err
	}
	if c.Pseudocount < 0 || math.IsNaN(c.Pseudocount) || math.IsInf(c.Pseudocount, 0) {
		return validation.Configf("pseudocount", "must be zero or positive and finite, got %v", c.Pseudocount)
	}
	if c.Workers < 0 {
		return validation.Configf("workers", "must not be negative, got %d", c.Workers)
	}
	if c.ChunkSize < 0 {
		return validation.Configf("chunk_size", "must not be negative, got %d", c.ChunkSize)
	}
	return nil
}

func (c Config) options() scan.Options {
	return scan.Options{Lookahead: c.Lookahead, Ambiguity: c.Ambiguity}
}

func (c Config) pseudocount() float64 {
	if c.Pseudocount == 0 {
		return matrix.DefaultPseudocount
	}
	return c.Pseudocount
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
