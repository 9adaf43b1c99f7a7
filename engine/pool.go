package engine

import (
	"fmt"
	"sort"
)

// Pool is the stash of all tokens discovered so far for one document. It is
// scoped to a single parse, only grows, and collapses duplicate tokens.
// The pool is not safe for concurrent mutation; the pass driver serializes
// all inserts at pass boundaries.
type Pool struct {
	tokens map[tokenKey]Token
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{tokens: make(map[tokenKey]Token, 32)}
}

// Size returns the number of distinct tokens in the pool.
func (p *Pool) Size() int {
	return len(p.tokens)
}

// Insert adds a token to the pool. Inserting a token whose
// (span, dimension, payload) identity is already present is a no-op and
// reports false. When a duplicate arrives with stronger provenance (an
// earlier-declared rule, or a non-latent rule where the stored token was
// latent) the stored token's metadata is upgraded; that still does not count
// as an insertion.
func (p *Pool) Insert(t Token) bool {
	k := t.key()
	prev, ok := p.tokens[k]
	if !ok {
		p.tokens[k] = t
		return true
	}
	upgraded := prev
	if prev.Latent && !t.Latent {
		upgraded.Latent = false
	}
	if t.RuleIndex < prev.RuleIndex {
		upgraded.Rule = t.Rule
		upgraded.RuleIndex = t.RuleIndex
	}
	if upgraded != prev {
		p.tokens[k] = upgraded
	}
	return false
}

// All returns every token in the pool in a deterministic order: by start
// offset, then longer span first, then dimension, then rule declaration
// index, then payload rendering as a last resort.
func (p *Pool) All() []Token {
	out := make([]Token, 0, len(p.tokens))
	for _, t := range p.tokens {
		out = append(out, t)
	}
	sortTokens(out)
	return out
}

// Snapshot returns an immutable view of the current pool contents, indexed
// by start offset. Matcher invocations within one pass all read the same
// snapshot, so no invocation observes another's output mid-pass.
func (p *Pool) Snapshot() *Snapshot {
	byStart := make(map[int][]Token, len(p.tokens))
	for _, t := range p.tokens {
		byStart[t.Span.Start] = append(byStart[t.Span.Start], t)
	}
	starts := make([]int, 0, len(byStart))
	for s, ts := range byStart {
		sortTokens(ts)
		starts = append(starts, s)
	}
	sort.Ints(starts)
	return &Snapshot{byStart: byStart, starts: starts, size: len(p.tokens)}
}

// Snapshot is a read-only view of a pool taken at a pass boundary.
type Snapshot struct {
	byStart map[int][]Token
	starts  []int
	size    int
}

// Size returns the number of tokens in the snapshot.
func (s *Snapshot) Size() int {
	return s.size
}

// Starts returns the distinct start offsets of tokens in the snapshot, in
// ascending order.
func (s *Snapshot) Starts() []int {
	return s.starts
}

// StartingAt returns the tokens whose span begins exactly at offset.
func (s *Snapshot) StartingAt(offset int) []Token {
	return s.byStart[offset]
}

func sortTokens(ts []Token) {
	sort.Slice(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End > b.Span.End
		}
		if a.Dim != b.Dim {
			return a.Dim < b.Dim
		}
		if a.RuleIndex != b.RuleIndex {
			return a.RuleIndex < b.RuleIndex
		}
		return fmt.Sprint(a.Payload) < fmt.Sprint(b.Payload)
	})
}
