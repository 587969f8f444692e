// Package stats summarises sequences and motif hit lists.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/aria-lang/motifscan-go/internal/hits"
	"github.com/aria-lang/motifscan-go/internal/sequence"
)

// SequenceStats holds base composition of a single sequence.
type SequenceStats struct {
	Length         int     `json:"length"`
	GCContent      float64 `json:"gc_content"`
	ACount         int     `json:"a"`
	CCount         int     `json:"c"`
	GCount         int     `json:"g"`
	TCount         int     `json:"t"`
	AmbiguousCount int     `json:"ambiguous"`
}

// FromSequence counts the bases of seq. GC content is measured over the
// unambiguous bases only.
func FromSequence(seq *sequence.Sequence) *SequenceStats {
	counts := seq.Encode().Counts()
	st := &SequenceStats{
		Length:         seq.Len(),
		ACount:         counts[sequence.A],
		CCount:         counts[sequence.C],
		GCount:         counts[sequence.G],
		TCount:         counts[sequence.T],
		AmbiguousCount: seq.CountAmbiguous(),
	}
	if known := st.Length - st.AmbiguousCount; known > 0 {
		st.GCContent = float64(st.CCount+st.GCount) / float64(known)
	}
	return st
}

func (s *SequenceStats) String() string {
	return fmt.Sprintf(`SequenceStats {
  length: %d
  GC content: %.1f%%
  A: %d, C: %d, G: %d, T: %d, ambiguous: %d
}`, s.Length, s.GCContent*100, s.ACount, s.CCount, s.GCount, s.TCount, s.AmbiguousCount)
}

// MotifStats summarises the hits of one motif.
type MotifStats struct {
	Name         string         `json:"name"`
	Threshold    float64        `json:"threshold"`
	Hits         int            `json:"hits"`
	Forward      int            `json:"forward"`
	Reverse      int            `json:"reverse"`
	BestScore    float64        `json:"best_score,omitempty"`
	BestPosition *hits.Position `json:"best_position,omitempty"`
	MeanScore    float64        `json:"mean_score,omitempty"`
	MedianScore  float64        `json:"median_score,omitempty"`
}

// FromList summarises l. Ties for the best score go to the earliest hit in
// list order.
func FromList(name string, l hits.List, threshold float64) MotifStats {
	st := MotifStats{Name: name, Threshold: threshold, Hits: len(l)}
	if len(l) == 0 {
		return st
	}

	scores := make([]float64, len(l))
	sum := 0.0
	best := 0
	for i, h := range l {
		if h.Position.IsReverse() {
			st.Reverse++
		} else {
			st.Forward++
		}
		scores[i] = h.Score
		sum += h.Score
		if h.Score > l[best].Score {
			best = i
		}
	}

	pos := l[best].Position
	st.BestScore = l[best].Score
	st.BestPosition = &pos
	st.MeanScore = sum / float64(len(l))

	sort.Float64s(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		st.MedianScore = (scores[mid-1] + scores[mid]) / 2
	} else {
		st.MedianScore = scores[mid]
	}
	return st
}

func (s MotifStats) String() string {
	if s.Hits == 0 {
		return fmt.Sprintf("%s: no hits (threshold %.4f)", s.Name, s.Threshold)
	}
	return fmt.Sprintf("%s: %d hits (+%d/-%d), best %.4f at %s, mean %.4f",
		s.Name, s.Hits, s.Forward, s.Reverse, s.BestScore, s.BestPosition, s.MeanScore)
}

// SearchStats summarises the results of one multi-motif search.
type SearchStats struct {
	Motifs         []MotifStats `json:"motifs"`
	TotalHits      int          `json:"total_hits"`
	ForwardHits    int          `json:"forward_hits"`
	ReverseHits    int          `json:"reverse_hits"`
	MotifsWithHits int          `json:"motifs_with_hits"`
	BestMotif      string       `json:"best_motif,omitempty"`
	BestScore      float64      `json:"best_score,omitempty"`
}

// FromResults summarises per-motif lists. names and thresholds must line
// up with lists.
func FromResults(names []string, lists []hits.List, thresholds []float64) (*SearchStats, error) {
	if len(names) != len(lists) || len(thresholds) != len(lists) {
		return nil, fmt.Errorf("names (%d), lists (%d) and thresholds (%d) must have the same length",
			len(names), len(lists), len(thresholds))
	}

	st := &SearchStats{Motifs: make([]MotifStats, len(lists))}
	best := math.Inf(-1)
	for i, l := range lists {
		ms := FromList(names[i], l, thresholds[i])
		st.Motifs[i] = ms
		st.TotalHits += ms.Hits
		st.ForwardHits += ms.Forward
		st.ReverseHits += ms.Reverse
		if ms.Hits == 0 {
			continue
		}
		st.MotifsWithHits++
		if ms.BestScore > best {
			best = ms.BestScore
			st.BestMotif = ms.Name
			st.BestScore = ms.BestScore
		}
	}
	return st, nil
}

func (s *SearchStats) String() string {
	return fmt.Sprintf(`SearchStats {
  motifs: %d (%d with hits)
  hits: %d (+%d/-%d)
  best: %s %.4f
}`, len(s.Motifs), s.MotifsWithHits, s.TotalHits, s.ForwardHits, s.ReverseHits, s.BestMotif, s.BestScore)
}

// ScoreHistogram bins hit scores between a threshold and the best score.
type ScoreHistogram struct {
	Bins    []int   `json:"bins"`
	Min     float64 `json:"min"`
	BinSize float64 `json:"bin_size"`
}

// NewScoreHistogram bins the scores of l into numBins equal bins starting
// at threshold.
func NewScoreHistogram(l hits.List, threshold float64, numBins int) (*ScoreHistogram, error) {
	if numBins <= 0 {
		return nil, fmt.Errorf("number of bins must be positive, got %d", numBins)
	}
	if len(l) == 0 {
		return nil, fmt.Errorf("hit list cannot be empty")
	}

	top := threshold
	for _, h := range l {
		if h.Score > top {
			top = h.Score
		}
	}
	binSize := (top - threshold) / float64(numBins)
	h := &ScoreHistogram{Bins: make([]int, numBins), Min: threshold, BinSize: binSize}
	for _, hit := range l {
		idx := 0
		if binSize > 0 {
			idx = int((hit.Score - threshold) / binSize)
		}
		if idx >= numBins {
			idx = numBins - 1
		}
		if idx < 0 {
			idx = 0
		}
		h.Bins[idx]++
	}
	return h, nil
}

// Mode returns the index of the fullest bin.
func (h *ScoreHistogram) Mode() int {
	best := 0
	for i, c := range h.Bins {
		if c > h.Bins[best] {
			best = i
		}
	}
	return best
}
