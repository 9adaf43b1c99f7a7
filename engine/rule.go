package engine

import (
	"github.com/teranos/quanta/errors"
)

// Capture is one pattern item's contribution to a successful match.
// Text-matching items fill Text (and Groups or Value); token-matching items
// fill Token.
type Capture struct {
	Span Span

	// Text is the raw matched document slice.
	Text string
	// Groups holds regex capture-group texts, group 1 onward.
	Groups []string
	// Value is the mapped value of a literal-set form.
	Value float64
	// Token is the matched pool token for predicate and range items.
	Token *Token
}

// Group returns capture group i (0 = first group), or "" when absent.
func (c Capture) Group(i int) string {
	if i < 0 || i >= len(c.Groups) {
		return ""
	}
	return c.Groups[i]
}

// Match is the ordered evidence for one successful rule application,
// covering a single contiguous region of the document.
type Match struct {
	Rule     *Rule
	Span     Span
	Captures []Capture
}

// Production converts a successful match into an output payload. Returning
// nil declines the match: the attempt is discarded with no side effects.
// Productions must be pure. Payloads must be comparable values.
type Production func(m Match) any

// Rule is one grammar rule: an ordered pattern of items and a production.
// Rules are read-only configuration; the name is diagnostic only.
type Rule struct {
	Name    string
	Dim     Dimension
	Pattern []PatternItem
	Produce Production

	// Latent marks every token this rule emits as low-confidence.
	Latent bool
}

// RuleSet is the validated collection of rules active for one parse.
// Building a rule set compiles every pattern item; a rule set that fails to
// build must not be used. Rule declaration order is meaningful: it is the
// documented last-resort tie-break during resolution.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet validates rules and returns a rule set ready for parsing.
// Validation failures are configuration errors (errors.ErrInvalidRule or
// errors.ErrEmptyPattern), surfaced here at load time and never during a
// parse.
func NewRuleSet(rules []Rule) (*RuleSet, error) {
	for i := range rules {
		r := &rules[i]
		if len(r.Pattern) == 0 {
			return nil, errors.Wrapf(errors.ErrEmptyPattern, "rule %q", r.Name)
		}
		if r.Dim == "" {
			return nil, errors.NewInvalidRuleError(r.Name, "rule has no dimension")
		}
		if r.Produce == nil {
			return nil, errors.NewInvalidRuleError(r.Name, "rule has no production")
		}
		for _, item := range r.Pattern {
			if err := item.compile(); err != nil {
				return nil, errors.Wrapf(errors.ErrInvalidRule, "rule %q: %v", r.Name, err)
			}
		}
	}
	return &RuleSet{rules: rules}, nil
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Rules returns the rules in declaration order. The slice is shared; callers
// must treat it as read-only.
func (rs *RuleSet) Rules() []Rule {
	return rs.rules
}
