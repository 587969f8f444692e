package sequence

import "github.com/aria-lang/motifscan-go/internal/validation"

// Symbol codes in canonical matrix row order.
const (
	A uint8 = iota
	C
	G
	T
	// Ambiguous stands for any IUPAC ambiguity code, including N.
	Ambiguous
	invalid uint8 = 0xff
)

// AlphabetSize is the number of scoring symbols (matrix rows).
const AlphabetSize = 4

// Letters lists the scoring symbols in canonical order.
const Letters = "ACGT"

var (
	symbolOf   [256]uint8
	complement [256]byte
)

func init() {
	for i := range symbolOf {
		symbolOf[i] = invalid
	}
	set := func(code uint8, letters string) {
		for i := 0; i < len(letters); i++ {
			symbolOf[letters[i]] = code
		}
	}
	set(A, "Aa")
	set(C, "Cc")
	set(G, "Gg")
	set(T, "TtUu")
	set(Ambiguous, "NnRrYySsWwKkMmBbDdHhVv")

	pairs := []string{"AT", "CG", "GC", "TA", "UA", "RY", "YR", "SS", "WW", "KM", "MK", "BV", "VB", "DH", "HD", "NN"}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[0]+'a'-'A'] = p[1] + 'a' - 'A'
	}
}

// SymbolOf returns the scanning symbol for a base and whether it is valid.
func SymbolOf(b byte) (uint8, bool) {
	s := symbolOf[b]
	return s, s != invalid
}

// ComplementSymbol returns the Watson-Crick partner of a scoring symbol.
// Ambiguous maps to itself.
func ComplementSymbol(s uint8) uint8 {
	if s >= AlphabetSize {
		return s
	}
	return T - s
}

// IsAmbiguous reports whether b is an accepted ambiguity code.
func IsAmbiguous(b byte) bool {
	return symbolOf[b] == Ambiguous
}

// Validate checks that every base is a nucleotide or an ambiguity code.
func Validate(bases string) error {
	for i := 0; i < len(bases); i++ {
		if _, ok := SymbolOf(bases[i]); !ok {
			return &validation.InputError{Position: i, Found: bases[i]}
		}
	}
	return nil
}
