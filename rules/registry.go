// Package rules holds the locale/dimension dispatch table for quanta rule
// sets.
//
// The engine treats rules as opaque configuration; this package is the
// explicit registry that selects which rule collection applies to a parse
// request. It is constructed once at startup and threaded through every
// parse call — never ambient global state.
package rules

import (
	"golang.org/x/text/language"

	"github.com/teranos/quanta/engine"
	"github.com/teranos/quanta/errors"
)

// Registry maps locale and target dimension to rule collections.
type Registry struct {
	byLocale map[language.Tag]*localeRules
	order    []language.Tag // registration order, drives locale matching
}

type localeRules struct {
	byDim    map[engine.Dimension][]engine.Rule
	dimOrder []engine.Dimension
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byLocale: make(map[language.Tag]*localeRules)}
}

// Register adds rules producing dim for the given locale. Rules are
// validated immediately: malformed configuration surfaces here at load
// time, never during a parse.
func (r *Registry) Register(tag language.Tag, dim engine.Dimension, rules ...engine.Rule) error {
	if _, err := engine.NewRuleSet(rules); err != nil {
		return errors.Wrapf(err, "registering %s/%s", tag, dim)
	}
	lr, ok := r.byLocale[tag]
	if !ok {
		lr = &localeRules{byDim: make(map[engine.Dimension][]engine.Rule)}
		r.byLocale[tag] = lr
		r.order = append(r.order, tag)
	}
	if _, ok := lr.byDim[dim]; !ok {
		lr.dimOrder = append(lr.dimOrder, dim)
	}
	lr.byDim[dim] = append(lr.byDim[dim], rules...)
	return nil
}

// Locales returns the registered locales in registration order.
func (r *Registry) Locales() []language.Tag {
	out := make([]language.Tag, len(r.order))
	copy(out, r.order)
	return out
}

// Dimensions returns the dimensions registered for a locale, in
// registration order.
func (r *Registry) Dimensions(tag language.Tag) []engine.Dimension {
	lr, ok := r.byLocale[tag]
	if !ok {
		return nil
	}
	out := make([]engine.Dimension, len(lr.dimOrder))
	copy(out, lr.dimOrder)
	return out
}

// RuleSet assembles the validated rule set for a locale and requested
// dimension set. The locale is a BCP-47 identifier resolved against the
// registered locales ("en-US" falls back to "en"). Requested dimensions are
// expanded to their dependency closure: a rule whose pattern consumes
// tokens of another dimension pulls that dimension's rules in as inputs,
// even though only requested dimensions appear in the final output.
func (r *Registry) RuleSet(locale string, requested []engine.Dimension) (*engine.RuleSet, error) {
	if len(r.order) == 0 {
		return nil, errors.Wrap(errors.ErrUnknownLocale, "registry is empty")
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnknownLocale, "%q: %v", locale, err)
	}
	matcher := language.NewMatcher(r.order)
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return nil, errors.Wrapf(errors.ErrUnknownLocale, "%q", locale)
	}
	lr := r.byLocale[r.order[idx]]

	active := r.closure(lr, requested)

	var rules []engine.Rule
	for _, dim := range lr.dimOrder {
		if !active[dim] {
			continue
		}
		rules = append(rules, lr.byDim[dim]...)
	}
	return engine.NewRuleSet(rules)
}

// closure returns the dimensions whose rules must run: the requested set
// plus, transitively, every dimension consumed by an active rule's token
// items. An empty request activates everything.
func (r *Registry) closure(lr *localeRules, requested []engine.Dimension) map[engine.Dimension]bool {
	active := make(map[engine.Dimension]bool, len(lr.dimOrder))
	if len(requested) == 0 {
		for _, dim := range lr.dimOrder {
			active[dim] = true
		}
		return active
	}

	queue := make([]engine.Dimension, 0, len(requested))
	for _, dim := range requested {
		if !active[dim] {
			active[dim] = true
			queue = append(queue, dim)
		}
	}
	for len(queue) > 0 {
		dim := queue[0]
		queue = queue[1:]
		for _, rule := range lr.byDim[dim] {
			for _, item := range rule.Pattern {
				var dep engine.Dimension
				switch it := item.(type) {
				case *engine.TokenPredicateItem:
					dep = it.Dim
				case *engine.NumericRangeItem:
					dep = it.Dim
				default:
					continue
				}
				if !active[dep] {
					active[dep] = true
					queue = append(queue, dep)
				}
			}
		}
	}
	return active
}
