// Package search scans a sequence for many motifs at once.
//
// A Search compiles one scan.Plan per motif and strand up front. Each
// Search call splits the work into (motif, strand, chunk) jobs, runs them
// on a fixed worker pool and merges the results by job index, so the
// output never depends on scheduling.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aria-lang/motifscan-go/internal/background"
	"github.com/aria-lang/motifscan-go/internal/hits"
	"github.com/aria-lang/motifscan-go/internal/matrix"
	"github.com/aria-lang/motifscan-go/internal/scan"
	"github.com/aria-lang/motifscan-go/internal/sequence"
	"github.com/aria-lang/motifscan-go/internal/validation"
)

type motif struct {
	forward *scan.Plan
	reverse *scan.Plan // nil when only the forward strand is scanned
}

// Search is a compiled multi-motif scanner. It is reusable and safe for
// concurrent use.
type Search struct {
	cfg    Config
	motifs []motif
}

// New builds a Search from count matrices. thresholds[i] belongs to
// counts[i]. Every argument is checked before any plan is built.
func New(counts []*matrix.CountMatrix, thresholds []float64, bg background.Model, cfg Config) (*Search, error) {
	if err := precheck(len(counts), len(thresholds), bg, cfg); err != nil {
		return nil, err
	}
	s := &Search{cfg: cfg, motifs: make([]motif, len(counts))}
	ps := cfg.pseudocount()
	for i, c := range counts {
		if c == nil {
			return nil, fmt.Errorf("motif %d: %w", i, validation.Configf("counts", "matrix is nil"))
		}
		fwd, err := matrix.LogOdds(c, bg, ps)
		if err != nil {
			return nil, fmt.Errorf("motif %d: %w", i, err)
		}
		var rev *matrix.ScoringMatrix
		if cfg.ScanBothStrands {
			if rev, err = matrix.LogOdds(c.ReverseComplement(), bg, ps); err != nil {
				return nil, fmt.Errorf("motif %d: %w", i, err)
			}
		}
		if s.motifs[i], err = compile(fwd, rev, thresholds[i], bg, cfg); err != nil {
			return nil, fmt.Errorf("motif %d: %w", i, err)
		}
	}
	return s, nil
}

// NewFromScoring builds a Search from precomputed log-odds matrices. The
// Pseudocount setting is unused.
func NewFromScoring(matrices []*matrix.ScoringMatrix, thresholds []float64, bg background.Model, cfg Config) (*Search, error) {
	if err := precheck(len(matrices), len(thresholds), bg, cfg); err != nil {
		return nil, err
	}
	s := &Search{cfg: cfg, motifs: make([]motif, len(matrices))}
	for i, m := range matrices {
		if m == nil {
			return nil, fmt.Errorf("motif %d: %w", i, validation.Configf("matrix", "matrix is nil"))
		}
		var rev *matrix.ScoringMatrix
		if cfg.ScanBothStrands {
			rev = m.ReverseComplement()
		}
		var err error
		if s.motifs[i], err = compile(m, rev, thresholds[i], bg, cfg); err != nil {
			return nil, fmt.Errorf("motif %d: %w", i, err)
		}
	}
	return s, nil
}

func precheck(motifs, thresholds int, bg background.Model, cfg Config) error {
	if motifs != thresholds {
		return validation.Configf("thresholds", "got %d thresholds for %d matrices", thresholds, motifs)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return background.Validate(bg)
}

func compile(fwd, rev *matrix.ScoringMatrix, threshold float64, bg background.Model, cfg Config) (motif, error) {
	var m motif
	var err error
	if m.forward, err = scan.NewPlan(fwd, threshold, bg, cfg.options()); err != nil {
		return motif{}, err
	}
	if rev != nil {
		if m.reverse, err = scan.NewPlan(rev, threshold, bg, cfg.options()); err != nil {
			return motif{}, err
		}
	}
	return m, nil
}

// Len returns the number of motifs.
func (s *Search) Len() int {
	return len(s.motifs)
}

// Width returns the width of motif i.
func (s *Search) Width(i int) int {
	return s.motifs[i].forward.Width()
}

// Threshold returns the threshold of motif i.
func (s *Search) Threshold(i int) float64 {
	return s.motifs[i].forward.Threshold()
}

// Config returns the configuration the Search was built with.
func (s *Search) Config() Config {
	return s.cfg
}

// Search scans seq and returns one hit list per motif, in motif order.
func (s *Search) Search(seq *sequence.Sequence) ([]hits.List, error) {
	return s.SearchContext(context.Background(), seq)
}

type job struct {
	idx    int
	motif  int
	strand hits.Strand
	from   int
	to     int
}

type slot struct {
	hits []hits.Hit
	err  error
}

// SearchContext is Search with cancellation. Once ctx is done no further
// jobs start and ctx.Err() is returned; running jobs finish their range.
func (s *Search) SearchContext(ctx context.Context, seq *sequence.Sequence) ([]hits.List, error) {
	if seq == nil {
		return nil, errors.New("search: sequence is nil")
	}
	// Bases is exported, so a literal Sequence may hold bytes New rejects.
	enc, err := sequence.Parse(seq.Bases)
	if err != nil {
		return nil, err
	}
	if s.cfg.Ambiguity == scan.AmbiguityStrict {
		if i := enc.FirstAmbiguous(); i >= 0 {
			return nil, &validation.InputError{Position: i, Found: seq.Bases[i], Reason: "ambiguous base"}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jobs := s.plan(enc.Len())
	slots := make([]slot, len(jobs))

	workers := s.cfg.workers()
	if workers > len(jobs) {
		workers = len(jobs)
	}
	queue := make(chan job, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				p := s.motifs[j.motif].forward
				if j.strand == hits.Reverse {
					p = s.motifs[j.motif].reverse
				}
				found, err := p.Scan(enc, j.from, j.to, j.strand)
				// each slot has exactly one writer
				slots[j.idx] = slot{hits: found, err: err}
			}
		}()
	}

feed:
	for _, j := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case queue <- j:
		}
	}
	close(queue)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.merge(jobs, slots)
}

// plan lays out the jobs for a sequence of n bases. Jobs of one motif are
// contiguous: forward chunks in ascending order, then reverse chunks.
func (s *Search) plan(n int) []job {
	var jobs []job
	add := func(motif int, strand hits.Strand, starts int) {
		size := s.cfg.ChunkSize
		if size == 0 {
			size = starts
		}
		for from := 0; from < starts; from += size {
			jobs = append(jobs, job{idx: len(jobs), motif: motif, strand: strand, from: from, to: from + size})
		}
	}
	for i, m := range s.motifs {
		starts := n - m.forward.Width() + 1
		add(i, hits.Forward, starts)
		if m.reverse != nil {
			add(i, hits.Reverse, starts)
		}
	}
	return jobs
}

func (s *Search) merge(jobs []job, slots []slot) ([]hits.List, error) {
	forward := make([][]hits.Hit, len(s.motifs))
	reverse := make([][]hits.Hit, len(s.motifs))
	for _, j := range jobs {
		sl := slots[j.idx]
		if sl.err != nil {
			return nil, fmt.Errorf("motif %d: %w", j.motif, sl.err)
		}
		if j.strand == hits.Reverse {
			reverse[j.motif] = append(reverse[j.motif], sl.hits...)
		} else {
			forward[j.motif] = append(forward[j.motif], sl.hits...)
		}
	}

	out := make([]hits.List, len(s.motifs))
	for i := range out {
		out[i] = hits.Aggregate(forward[i], reverse[i])
	}
	return out, nil
}
