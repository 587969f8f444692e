// Package scan finds every window of a sequence where one scoring matrix
// reaches its threshold.
//
// A Plan is compiled once per matrix and threshold. It holds a lookahead
// table, which scores the most discriminating run of columns in a single
// lookup, and a suffix bound table, which lets a window be abandoned as soon
// as the remaining columns can no longer lift it over the threshold.
// Neither changes which windows are reported.
package scan

import (
	"math"
	"sort"

	"github.com/aria-lang/motifscan-go/internal/background"
	"github.com/aria-lang/motifscan-go/internal/hits"
	"github.com/aria-lang/motifscan-go/internal/matrix"
	"github.com/aria-lang/motifscan-go/internal/sequence"
	"github.com/aria-lang/motifscan-go/internal/validation"
)

// boundSlack absorbs rounding between the bound sums and the running sum.
// Acceptance never uses it.
const boundSlack = 1e-9

// column holds a matrix column plus the score used for an ambiguous symbol
// at index sequence.Ambiguous.
type column [sequence.Ambiguous + 1]float64

// Plan is a compiled single-matrix scanner. It is read-only and safe for
// concurrent use.
type Plan struct {
	width       int
	threshold   float64
	ambiguity   AmbiguityPolicy
	unreachable bool

	cols []column

	// Lookahead window [laStart, laStart+q) and its 4^q partial scores.
	laStart int
	q       int
	mask    int
	table   []float64

	// Remaining columns in scoring order and need[k] = threshold minus the
	// best total the columns tail[k:] can add.
	tail []int
	need []float64
}

// NewPlan compiles m for scanning at threshold. bg weighs the column
// powers that choose the lookahead window and the tail order.
func NewPlan(m *matrix.ScoringMatrix, threshold float64, bg background.Model, opt Options) (*Plan, error) {
	if m == nil {
		return nil, validation.Configf("matrix", "matrix is nil")
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, validation.Configf("threshold", "must be finite, got %v", threshold)
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	if err := background.Validate(bg); err != nil {
		return nil, err
	}

	w := m.Width()
	p := &Plan{
		width:       w,
		threshold:   threshold,
		ambiguity:   opt.Ambiguity,
		unreachable: m.MaxScore() < threshold,
		cols:        make([]column, w),
	}
	for c := 0; c < w; c++ {
		col := m.Column(c)
		copy(p.cols[c][:], col[:])
		p.cols[c][sequence.Ambiguous] = col.Min()
	}

	power := columnPower(m, bg)
	p.q = opt.Lookahead
	if p.q > w {
		p.q = w
	}
	p.laStart = bestRun(power, p.q)
	p.buildTable()
	p.buildTail(power)
	return p, nil
}

// columnPower returns, per column, the gap between its best score and the
// score expected under the background.
func columnPower(m *matrix.ScoringMatrix, bg background.Model) []float64 {
	probs := background.Vector(bg)
	power := make([]float64, m.Width())
	for c := range power {
		col := m.Column(c)
		expected := 0.0
		for r, v := range col {
			expected += probs[r] * v
		}
		power[c] = m.ColumnMax(c) - expected
	}
	return power
}

// bestRun returns the start of the leftmost run of q columns with the
// largest total power.
func bestRun(power []float64, q int) int {
	if q == 0 {
		return 0
	}
	sum := 0.0
	for c := 0; c < q; c++ {
		sum += power[c]
	}
	best, start := sum, 0
	for c := q; c < len(power); c++ {
		sum += power[c] - power[c-q]
		if sum > best {
			best, start = sum, c-q+1
		}
	}
	return start
}

func (p *Plan) buildTable() {
	if p.q == 0 {
		return
	}
	size := 1 << (2 * p.q)
	p.mask = size - 1
	p.table = make([]float64, 1, size)
	for j := 0; j < p.q; j++ {
		col := &p.cols[p.laStart+j]
		next := make([]float64, len(p.table)*sequence.AlphabetSize)
		for idx, v := range p.table {
			for b := 0; b < sequence.AlphabetSize; b++ {
				next[idx<<2|b] = v + col[b]
			}
		}
		p.table = next
	}
}

func (p *Plan) buildTail(power []float64) {
	p.tail = make([]int, 0, p.width-p.q)
	for c := 0; c < p.width; c++ {
		if c < p.laStart || c >= p.laStart+p.q {
			p.tail = append(p.tail, c)
		}
	}
	sort.SliceStable(p.tail, func(i, j int) bool {
		return power[p.tail[i]] > power[p.tail[j]]
	})

	p.need = make([]float64, len(p.tail)+1)
	bound := 0.0
	p.need[len(p.tail)] = p.threshold
	for k := len(p.tail) - 1; k >= 0; k-- {
		col := p.cols[p.tail[k]]
		bound += matrix.Column{col[0], col[1], col[2], col[3]}.Max()
		p.need[k] = p.threshold - bound
	}
}

// Width returns the motif width.
func (p *Plan) Width() int {
	return p.width
}

// Threshold returns the acceptance threshold.
func (p *Plan) Threshold() float64 {
	return p.threshold
}

// Lookahead returns the number of columns covered by the lookahead table.
func (p *Plan) Lookahead() int {
	return p.q
}

// Unreachable reports whether no window can reach the threshold.
func (p *Plan) Unreachable() bool {
	return p.unreachable
}

// Scan scores every window start in [from, to), clipped to the starts that
// fit in enc, and returns the hits in ascending offset order tagged with
// strand.
func (p *Plan) Scan(enc *sequence.Encoded, from, to int, strand hits.Strand) ([]hits.Hit, error) {
	if p.ambiguity == AmbiguityStrict {
		if i := enc.FirstAmbiguous(); i >= 0 {
			return nil, &validation.InputError{Position: i, Reason: "ambiguous base"}
		}
	}

	if from < 0 {
		from = 0
	}
	if last := enc.Len() - p.width + 1; to > last {
		to = last
	}
	if p.unreachable || from >= to {
		return nil, nil
	}

	codes := enc.Codes
	skip := p.ambiguity == AmbiguitySkip
	var out []hits.Hit
	code := 0
	if p.q > 0 {
		// Prime the rolling code so the first step in the loop completes it.
		for j := 0; j < p.q-1; j++ {
			code = code<<2 | int(codes[from+p.laStart+j]&3)
		}
	}

	for i := from; i < to; i++ {
		s := 0.0
		if p.q > 0 {
			la := i + p.laStart
			code = (code<<2 | int(codes[la+p.q-1]&3)) & p.mask
			if skip && enc.AmbiguousIn(i, i+p.width) {
				continue
			}
			if enc.AmbiguousIn(la, la+p.q) {
				for j := 0; j < p.q; j++ {
					s += p.cols[p.laStart+j][codes[la+j]]
				}
			} else {
				s = p.table[code]
			}
			if s < p.need[0]-boundSlack {
				continue
			}
		} else if skip && enc.AmbiguousIn(i, i+p.width) {
			continue
		}

		pruned := false
		for k, c := range p.tail {
			s += p.cols[c][codes[i+c]]
			if s < p.need[k+1]-boundSlack {
				pruned = true
				break
			}
		}
		if pruned {
			continue
		}

		// The reported score is summed in column order so it does not
		// depend on the lookahead window or the tail order.
		if score := p.score(codes[i : i+p.width]); score >= p.threshold {
			out = append(out, hits.Hit{
				Position: hits.Position{Offset: i, Strand: strand},
				Score:    score,
			})
		}
	}
	return out, nil
}

func (p *Plan) score(window []uint8) float64 {
	s := 0.0
	for c, sym := range window {
		s += p.cols[c][sym]
	}
	return s
}
