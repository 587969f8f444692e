package scan

import (
	"fmt"
	"strings"

	"github.com/aria-lang/motifscan-go/internal/validation"
)

// MaxLookahead bounds the lookahead window. A table of 4^10 entries is
// 8 MiB per plan.
const MaxLookahead = 10

// DefaultLookahead is the lookahead window used by DefaultOptions.
const DefaultLookahead = 7

// AmbiguityPolicy decides how windows holding an ambiguity code are scored.
type AmbiguityPolicy uint8

const (
	// AmbiguitySkip drops every window that holds an ambiguous symbol.
	AmbiguitySkip AmbiguityPolicy = iota
	// AmbiguityMinScore scores an ambiguous symbol as the worst symbol of
	// its column.
	AmbiguityMinScore
	// AmbiguityStrict rejects sequences holding any ambiguous symbol.
	AmbiguityStrict
)

var policyNames = [...]string{
	AmbiguitySkip:     "skip",
	AmbiguityMinScore: "minscore",
	AmbiguityStrict:   "strict",
}

func (p AmbiguityPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("AmbiguityPolicy(%d)", p)
}

// ParseAmbiguity maps "skip", "minscore" or "strict" to a policy.
func ParseAmbiguity(s string) (AmbiguityPolicy, error) {
	for i, name := range policyNames {
		if strings.EqualFold(s, name) {
			return AmbiguityPolicy(i), nil
		}
	}
	return 0, validation.Configf("ambiguity", "unknown policy %q", s)
}

// MarshalText encodes the policy by name.
func (p AmbiguityPolicy) MarshalText() ([]byte, error) {
	if int(p) >= len(policyNames) {
		return nil, validation.Configf("ambiguity", "unknown policy %d", p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a policy name.
func (p *AmbiguityPolicy) UnmarshalText(text []byte) error {
	v, err := ParseAmbiguity(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Options tune a Plan.
type Options struct {
	// Lookahead is the number of columns precomputed into the lookahead
	// table. Zero disables the table.
	Lookahead int
	Ambiguity AmbiguityPolicy
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Lookahead: DefaultLookahead, Ambiguity: AmbiguitySkip}
}

// Validate checks the option ranges.
func (o Options) Validate() error {
	if o.Lookahead < 0 || o.Lookahead > MaxLookahead {
		return validation.Configf("lookahead", "must be in [0, %d], got %d", MaxLookahead, o.Lookahead)
	}
	if int(o.Ambiguity) >= len(policyNames) {
		return validation.Configf("ambiguity", "unknown policy %d", o.Ambiguity)
	}
	return nil
}
