// Package engine implements the rule-matching and composition core of quanta.
//
// The engine takes a declarative rule set (each rule a sequence of pattern
// items plus a production function) and a document, and produces the set of
// matched, composed, and disambiguated tokens. Locale rule tables, payload
// types, and value converters are supplied by callers; the engine itself is
// pure mechanism and knows nothing about any particular language or
// dimension.
package engine

import "fmt"

// Span is a half-open interval [Start, End) of byte offsets into the
// document. Invariant: 0 <= Start < End <= len(document).
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether s covers all of o (equal spans contain each other).
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// StrictlyContains reports whether s covers all of o and is larger than o.
func (s Span) StrictlyContains(o Span) bool {
	return s.Contains(o) && s != o
}

// Intersects reports whether s and o share at least one offset.
func (s Span) Intersects(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
