package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/teranos/quanta/errors"
)

// matchTimeout bounds a single regex attempt as a guard against pathological
// patterns in rule configuration.
const matchTimeout = 250 * time.Millisecond

// PatternItem is one atomic matcher in a rule's pattern sequence. It matches
// either a slice of raw document text (RegexItem, LiteralSetItem) or a
// single already-produced token (TokenPredicateItem, NumericRangeItem).
//
// The variant set is closed: the matcher switches exhaustively over it.
type PatternItem interface {
	// compile performs load-time validation and prepares the item for
	// matching. Called once when a RuleSet is built.
	compile() error

	isPatternItem()
}

// RegexItem matches raw text at an offset. Patterns use the Perl-compatible
// regexp2 dialect, are case-insensitive by convention, and must contain at
// least one capture group; group captures are handed to the production.
// Matching is anchored: the item is tried exactly once per offset. A match
// that begins with a word character must also begin at a word boundary,
// unless the item was built with RegexSuffix.
type RegexItem struct {
	Pattern string

	suffix bool
	re     *regexp2.Regexp
}

// Regex builds a regex pattern item. The pattern is compiled and validated
// when the enclosing rule set is built, not at construction.
func Regex(pattern string) *RegexItem {
	return &RegexItem{Pattern: pattern}
}

// RegexSuffix builds a regex item exempt from the leading word-boundary
// guard, for suffix forms glued to the previous item like the "k" of "10k".
func RegexSuffix(pattern string) *RegexItem {
	return &RegexItem{Pattern: pattern, suffix: true}
}

func (r *RegexItem) compile() error {
	if r.re != nil {
		return nil
	}
	re, err := regexp2.Compile(`\A(?:`+r.Pattern+`)`, regexp2.IgnoreCase)
	if err != nil {
		return errors.Wrapf(err, "regex %q does not compile", r.Pattern)
	}
	if len(re.GetGroupNumbers()) < 2 { // group 0 is the whole match
		return errors.Newf("regex %q has no capture group", r.Pattern)
	}
	re.MatchTimeout = matchTimeout
	r.re = re
	return nil
}

// matchAt attempts the regex at exactly the given offset. On success it
// returns the matched span and the capture-group texts (group 1 onward).
func (r *RegexItem) matchAt(doc string, offset int) (Span, []string, bool) {
	m, err := r.re.FindStringMatch(doc[offset:])
	if err != nil || m == nil {
		// Timeouts are treated as no-match: the parse must not fail on
		// ordinary text.
		return Span{}, nil, false
	}
	text := m.String()
	// A match beginning mid-word is discarded: "now" must not fire inside
	// "snow". Suffix items attach to the previous character deliberately.
	if !r.suffix && offset > 0 && len(text) > 0 && isWordByte(text[0]) && isWordByte(doc[offset-1]) {
		return Span{}, nil, false
	}
	groups := m.Groups()
	caps := make([]string, 0, len(groups)-1)
	for _, g := range groups[1:] {
		caps = append(caps, g.String())
	}
	// The match is anchored at the offset; regexp2 lengths count runes, so
	// take the byte length of the matched text instead.
	return Span{Start: offset, End: offset + len(text)}, caps, true
}

func (*RegexItem) isPatternItem() {}

// TokenPredicateItem matches a token already in the pool that starts exactly
// at the offset, belongs to Dim, and satisfies Pred. A nil Pred accepts any
// payload.
type TokenPredicateItem struct {
	Dim  Dimension
	Pred func(payload any) bool
}

// TokenOf builds a token-predicate pattern item.
func TokenOf(dim Dimension, pred func(payload any) bool) *TokenPredicateItem {
	return &TokenPredicateItem{Dim: dim, Pred: pred}
}

// AnyToken matches any token of the given dimension.
func AnyToken(dim Dimension) *TokenPredicateItem {
	return &TokenPredicateItem{Dim: dim}
}

func (t *TokenPredicateItem) compile() error {
	if t.Dim == "" {
		return errors.New("token predicate item has no dimension")
	}
	return nil
}

func (t *TokenPredicateItem) accepts(tok Token) bool {
	if tok.Dim != t.Dim {
		return false
	}
	return t.Pred == nil || t.Pred(tok.Payload)
}

func (*TokenPredicateItem) isPatternItem() {}

// LiteralSetItem matches one of an enumeration of accepted surface forms,
// each mapped to a numeric value. Forms are matched case-insensitively,
// longest form first, and the mapped value is handed to the production.
type LiteralSetItem struct {
	Forms map[string]float64

	re *regexp2.Regexp
}

// Literals builds a literal-set pattern item. Form keys must be lowercase.
func Literals(forms map[string]float64) *LiteralSetItem {
	return &LiteralSetItem{Forms: forms}
}

func (l *LiteralSetItem) compile() error {
	if l.re != nil {
		return nil
	}
	if len(l.Forms) == 0 {
		return errors.New("literal set is empty")
	}
	forms := make([]string, 0, len(l.Forms))
	for f := range l.Forms {
		if f == "" {
			return errors.New("literal set contains an empty form")
		}
		if f != strings.ToLower(f) {
			return errors.Newf("literal form %q is not lowercase", f)
		}
		forms = append(forms, f)
	}
	// Longest first so "seventeen" is not clipped to "seven".
	sort.Slice(forms, func(i, j int) bool {
		if len(forms[i]) != len(forms[j]) {
			return len(forms[i]) > len(forms[j])
		}
		return forms[i] < forms[j]
	})
	escaped := make([]string, len(forms))
	for i, f := range forms {
		escaped[i] = regexp2.Escape(f)
	}
	re, err := regexp2.Compile(`\A(`+strings.Join(escaped, "|")+`)`, regexp2.IgnoreCase)
	if err != nil {
		return errors.Wrap(err, "literal set does not compile")
	}
	re.MatchTimeout = matchTimeout
	l.re = re
	return nil
}

// matchAt attempts the literal set at exactly the given offset, returning
// the matched span, surface text, and mapped value. Forms only match at
// word boundaries: "one" must not fire inside "money".
func (l *LiteralSetItem) matchAt(doc string, offset int) (Span, string, float64, bool) {
	if offset > 0 && isWordByte(doc[offset-1]) {
		return Span{}, "", 0, false
	}
	m, err := l.re.FindStringMatch(doc[offset:])
	if err != nil || m == nil {
		return Span{}, "", 0, false
	}
	end := offset + len(m.String())
	if end < len(doc) && isWordByte(doc[end]) {
		return Span{}, "", 0, false
	}
	text := m.String()
	value, ok := l.Forms[strings.ToLower(text)]
	if !ok {
		return Span{}, "", 0, false
	}
	return Span{Start: offset, End: end}, text, value, true
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func (*LiteralSetItem) isPatternItem() {}

// NumericRangeItem matches a token of Dim whose payload exposes a numeric
// value v with Low <= v <= High.
type NumericRangeItem struct {
	Dim  Dimension
	Low  float64
	High float64
}

// NumberBetween builds a numeric-range pattern item.
func NumberBetween(dim Dimension, low, high float64) *NumericRangeItem {
	return &NumericRangeItem{Dim: dim, Low: low, High: high}
}

func (n *NumericRangeItem) compile() error {
	if n.Dim == "" {
		return errors.New("numeric range item has no dimension")
	}
	if n.Low > n.High {
		return errors.Newf("numeric range [%v,%v] is inverted", n.Low, n.High)
	}
	return nil
}

func (n *NumericRangeItem) accepts(tok Token) bool {
	if tok.Dim != n.Dim {
		return false
	}
	num, ok := tok.Payload.(NumericPayload)
	if !ok {
		return false
	}
	v := num.NumericValue()
	return n.Low <= v && v <= n.High
}

func (*NumericRangeItem) isPatternItem() {}
