package sequence

// Encoded is a sequence converted to symbol codes for scanning.
//
// Codes holds one of A, C, G, T or Ambiguous per base. An Encoded value is
// read-only after construction and may be shared by concurrent scans.
type Encoded struct {
	Codes []uint8
	// ambig[i] is the number of ambiguous symbols in Codes[:i].
	ambig []int32
}

func encode(bases string) *Encoded {
	e := &Encoded{
		Codes: make([]uint8, len(bases)),
		ambig: make([]int32, len(bases)+1),
	}
	for i := 0; i < len(bases); i++ {
		s := symbolOf[bases[i]]
		if s == invalid {
			// Callers validate first; see Parse.
			s = Ambiguous
		}
		e.Codes[i] = s
		e.ambig[i+1] = e.ambig[i]
		if s == Ambiguous {
			e.ambig[i+1]++
		}
	}
	return e
}

// Parse validates raw bases and encodes them. Unlike Sequence.Encode it
// does not trust its input, so it is the entry point for bases that did not
// come through New.
func Parse(bases string) (*Encoded, error) {
	if err := Validate(bases); err != nil {
		return nil, err
	}
	return encode(bases), nil
}

// Len returns the number of symbols.
func (e *Encoded) Len() int {
	return len(e.Codes)
}

// AmbiguousIn reports whether any symbol in [start, end) is ambiguous.
func (e *Encoded) AmbiguousIn(start, end int) bool {
	return e.ambig[end] != e.ambig[start]
}

// FirstAmbiguous returns the index of the first ambiguous symbol, or -1.
func (e *Encoded) FirstAmbiguous() int {
	if e.ambig[len(e.Codes)] == 0 {
		return -1
	}
	for i, c := range e.Codes {
		if c == Ambiguous {
			return i
		}
	}
	return -1
}

// Counts returns how many times each scoring symbol occurs.
func (e *Encoded) Counts() [AlphabetSize]int {
	var counts [AlphabetSize]int
	for _, c := range e.Codes {
		if c < AlphabetSize {
			counts[c]++
		}
	}
	return counts
}
