package engine

import (
	"fmt"
	"sort"
	"time"
)

// ResolutionContext is the read-only per-parse bundle used to anchor
// relative values: locale, reference instant, timezone, and the requested
// dimension set (nil or empty = all).
type ResolutionContext struct {
	Locale        string
	ReferenceTime time.Time
	Timezone      *time.Location
	Dimensions    []Dimension

	// IncludeLatent admits low-confidence tokens into resolution. Even
	// then a latent token survives only if no non-latent token covers any
	// part of its span.
	IncludeLatent bool
}

// Reference returns the reference instant in the context's timezone.
func (rc ResolutionContext) Reference() time.Time {
	if rc.Timezone == nil {
		return rc.ReferenceTime
	}
	return rc.ReferenceTime.In(rc.Timezone)
}

// wants reports whether dim is in the requested set.
func (rc ResolutionContext) wants(dim Dimension) bool {
	if len(rc.Dimensions) == 0 {
		return true
	}
	for _, d := range rc.Dimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// multiDimensional reports whether the caller left more than one dimension
// in play. Partially overlapping tokens of distinct dimensions may coexist
// in the output only in that case.
func (rc ResolutionContext) multiDimensional() bool {
	return len(rc.Dimensions) != 1
}

// Converter is a pure, dimension-specific function from an internal payload
// to a caller-facing resolved value. Returning nil drops the token.
// Converters must not mutate the pool or the context.
type Converter func(payload any, rctx ResolutionContext) any

// ResolvedSpan is one entry of the parse response.
type ResolvedSpan struct {
	Span   Span      `json:"span"`
	Dim    Dimension `json:"dimension"`
	Value  any       `json:"value"`
	Text   string    `json:"text"`
	Latent bool      `json:"latent,omitempty"`
}

// Resolve selects the final non-overlapping token set from the pool and
// converts payloads into resolved values, ordered by start offset.
//
// Overlaps are settled strongest first: longer span, then earliest start,
// then lowest rule declaration index (the configured last-resort tie-break).
// A token strictly contained in a kept token is dropped. Tokens that
// partially overlap are both kept only when they belong to different
// requested dimensions and the request was not restricted to a single
// dimension.
func Resolve(doc string, pool *Pool, rctx ResolutionContext, converters map[Dimension]Converter) []ResolvedSpan {
	var nonLatent, latent []Token
	for _, t := range pool.All() {
		if !rctx.wants(t.Dim) {
			continue
		}
		if _, ok := converters[t.Dim]; !ok {
			continue
		}
		if t.Latent {
			latent = append(latent, t)
		} else {
			nonLatent = append(nonLatent, t)
		}
	}

	sortByStrength(nonLatent)
	kept := selectCompatible(nonLatent, nil, rctx)

	if rctx.IncludeLatent {
		// Latent tokens are admitted only where no non-latent survivor
		// covers any part of them; among themselves they follow the same
		// overlap policy.
		candidates := latent[:0]
		for _, t := range latent {
			blocked := false
			for _, k := range kept {
				if k.Span.Intersects(t.Span) {
					blocked = true
					break
				}
			}
			if !blocked {
				candidates = append(candidates, t)
			}
		}
		sortByStrength(candidates)
		kept = selectCompatible(candidates, kept, rctx)
	}

	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End > b.Span.End
		}
		return a.Dim < b.Dim
	})

	out := make([]ResolvedSpan, 0, len(kept))
	for _, t := range kept {
		value := converters[t.Dim](t.Payload, rctx)
		if value == nil {
			continue
		}
		out = append(out, ResolvedSpan{
			Span:   t.Span,
			Dim:    t.Dim,
			Value:  value,
			Text:   doc[t.Span.Start:t.Span.End],
			Latent: t.Latent,
		})
	}
	return out
}

// selectCompatible greedily keeps candidates (already sorted strongest
// first) that do not conflict with anything kept so far.
func selectCompatible(candidates, kept []Token, rctx ResolutionContext) []Token {
	for _, c := range candidates {
		if compatible(c, kept, rctx) {
			kept = append(kept, c)
		}
	}
	return kept
}

func compatible(c Token, kept []Token, rctx ResolutionContext) bool {
	for _, k := range kept {
		if !k.Span.Intersects(c.Span) {
			continue
		}
		if k.Span == c.Span {
			// Equal spans: distinct requested dimensions coexist when
			// the request is multi-dimensional; otherwise first kept
			// wins.
			if k.Dim != c.Dim && rctx.multiDimensional() {
				continue
			}
			return false
		}
		if k.Span.StrictlyContains(c.Span) {
			// Strictly contained tokens always lose to an enclosing
			// token of any requested dimension.
			return false
		}
		// Partial overlap.
		if k.Dim != c.Dim && rctx.multiDimensional() {
			continue
		}
		return false
	}
	return true
}

// sortByStrength orders tokens strongest first: longer span, earlier start,
// lower rule declaration index, then a stable payload rendering so the
// order is total.
func sortByStrength(ts []Token) {
	sort.Slice(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		if a.Span.Len() != b.Span.Len() {
			return a.Span.Len() > b.Span.Len()
		}
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.RuleIndex != b.RuleIndex {
			return a.RuleIndex < b.RuleIndex
		}
		if a.Dim != b.Dim {
			return a.Dim < b.Dim
		}
		return fmt.Sprint(a.Payload) < fmt.Sprint(b.Payload)
	})
}
