// Package hits defines motif hits, their strand-signed positions and the
// ordering contract of per-motif hit lists.
package hits

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Strand tells which strand a hit was found on.
type Strand uint8

const (
	// Forward is the strand given to the scanner.
	Forward Strand = iota
	// Reverse is the reverse complement strand.
	Reverse
)

func (s Strand) String() string {
	if s == Reverse {
		return "-"
	}
	return "+"
}

// MarshalText encodes the strand as "+" or "-".
func (s Strand) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes "+" or "-".
func (s *Strand) UnmarshalText(text []byte) error {
	switch string(text) {
	case "+":
		*s = Forward
	case "-":
		*s = Reverse
	default:
		return fmt.Errorf("unknown strand %q", text)
	}
	return nil
}

// Position is a window start offset tagged with its strand.
//
// The offset is always measured from the start of the forward sequence.
// A reverse hit at offset 0 is distinct from a forward hit at offset 0.
type Position struct {
	Offset int    `json:"offset"`
	Strand Strand `json:"strand"`
}

// At returns a forward position.
func At(offset int) Position {
	return Position{Offset: offset, Strand: Forward}
}

// ReverseAt returns a reverse-strand position.
func ReverseAt(offset int) Position {
	return Position{Offset: offset, Strand: Reverse}
}

// IsReverse reports whether the position is on the reverse strand.
func (p Position) IsReverse() bool {
	return p.Strand == Reverse
}

// String renders reverse positions with a leading minus, including -0.
func (p Position) String() string {
	if p.Strand == Reverse {
		return "-" + strconv.Itoa(p.Offset)
	}
	return strconv.Itoa(p.Offset)
}

// Less orders forward positions before reverse ones, then by ascending
// signed offset.
func (p Position) Less(q Position) bool {
	if p.Strand != q.Strand {
		return p.Strand == Forward
	}
	if p.Strand == Forward {
		return p.Offset < q.Offset
	}
	return p.Offset > q.Offset
}

// Hit is one window scoring at or above its motif's threshold.
type Hit struct {
	Position Position `json:"position"`
	Score    float64  `json:"score"`
}

func (h Hit) String() string {
	return fmt.Sprintf("(%s, %g)", h.Position, h.Score)
}

// List is the ordered hit list of one motif.
type List []Hit

// Aggregate builds a List from unordered forward and reverse hits.
//
// Forward hits come first in ascending offset order, followed by reverse
// hits in ascending signed order (largest offset first).
func Aggregate(forward, reverse []Hit) List {
	out := make(List, 0, len(forward)+len(reverse))
	out = append(out, forward...)
	out = append(out, reverse...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position.Less(out[j].Position)
	})
	return out
}

// Len returns the number of hits.
func (l List) Len() int {
	return len(l)
}

// IsOrdered reports whether the list satisfies the ordering contract.
func (l List) IsOrdered() bool {
	for i := 1; i < len(l); i++ {
		if l[i].Position.Less(l[i-1].Position) {
			return false
		}
	}
	return true
}

// Forward returns the forward-strand hits.
func (l List) Forward() List {
	return l.filter(Forward)
}

// Reverse returns the reverse-strand hits.
func (l List) Reverse() List {
	return l.filter(Reverse)
}

func (l List) filter(s Strand) List {
	out := make(List, 0)
	for _, h := range l {
		if h.Position.Strand == s {
			out = append(out, h)
		}
	}
	return out
}

// Positions returns the positions in list order.
func (l List) Positions() []Position {
	out := make([]Position, len(l))
	for i, h := range l {
		out[i] = h.Position
	}
	return out
}

// MarshalJSON encodes a nil list as an empty array.
func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Hit(l))
}
