package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passThrough(payload any, _ ResolutionContext) any {
	return payload
}

func testConverters(dims ...Dimension) map[Dimension]Converter {
	out := make(map[Dimension]Converter, len(dims))
	for _, d := range dims {
		out[d] = passThrough
	}
	return out
}

func poolOf(tokens ...Token) *Pool {
	pool := NewPool()
	for _, t := range tokens {
		pool.Insert(t)
	}
	return pool
}

func spansOf(resolved []ResolvedSpan) []Span {
	var out []Span
	for _, r := range resolved {
		out = append(out, r.Span)
	}
	return out
}

func TestResolveDropsContainedTokens(t *testing.T) {
	// "thirty three": the parts lose to the whole.
	doc := "thirty three"
	pool := poolOf(
		Token{Span: Span{0, 6}, Dim: "numeral", Payload: numPayload{v: 30}},
		Token{Span: Span{7, 12}, Dim: "numeral", Payload: numPayload{v: 3}},
		Token{Span: Span{0, 12}, Dim: "numeral", Payload: numPayload{v: 33}},
	)

	got := Resolve(doc, pool, ResolutionContext{}, testConverters("numeral"))
	require.Len(t, got, 1)
	assert.Equal(t, Span{0, 12}, got[0].Span)
	assert.Equal(t, numPayload{v: 33}, got[0].Value)
	assert.Equal(t, doc, got[0].Text)
}

func TestResolveContainmentCrossesDimensions(t *testing.T) {
	// A numeral inside a time span is swallowed by it.
	pool := poolOf(
		Token{Span: Span{3, 4}, Dim: "numeral", Payload: numPayload{v: 6}},
		Token{Span: Span{0, 7}, Dim: "time", Payload: numPayload{v: 18}},
	)

	got := Resolve("at 6 pm", pool, ResolutionContext{}, testConverters("numeral", "time"))
	require.Len(t, got, 1)
	assert.Equal(t, Dimension("time"), got[0].Dim)
}

func TestResolveEqualSpansDistinctDimensionsCoexist(t *testing.T) {
	pool := poolOf(
		Token{Span: Span{0, 3}, Dim: "numeral", Payload: numPayload{v: 3}},
		Token{Span: Span{0, 3}, Dim: "time", Payload: numPayload{v: 3}},
	)

	got := Resolve("3pm", pool, ResolutionContext{}, testConverters("numeral", "time"))
	require.Len(t, got, 2)
	assert.Equal(t, Dimension("numeral"), got[0].Dim)
	assert.Equal(t, Dimension("time"), got[1].Dim)
}

func TestResolveEqualSpansSameDimensionTieBreakByRuleOrder(t *testing.T) {
	pool := poolOf(
		Token{Span: Span{0, 3}, Dim: "numeral", Payload: numPayload{v: 1}, RuleIndex: 4},
		Token{Span: Span{0, 3}, Dim: "numeral", Payload: numPayload{v: 2}, RuleIndex: 1},
	)

	got := Resolve("two", pool, ResolutionContext{}, testConverters("numeral"))
	require.Len(t, got, 1)
	assert.Equal(t, numPayload{v: 2}, got[0].Value, "earlier-declared rule wins the tie")
}

func TestResolvePartialOverlapSameDimension(t *testing.T) {
	pool := poolOf(
		Token{Span: Span{0, 8}, Dim: "time", Payload: numPayload{v: 1}},
		Token{Span: Span{5, 12}, Dim: "time", Payload: numPayload{v: 2}},
	)

	got := Resolve("abcdefghijkl", pool, ResolutionContext{}, testConverters("time"))
	require.Len(t, got, 1)
	assert.Equal(t, Span{0, 8}, got[0].Span, "longer-or-earlier span wins")
}

func TestResolvePartialOverlapDistinctDimensions(t *testing.T) {
	pool := poolOf(
		Token{Span: Span{0, 8}, Dim: "time", Payload: numPayload{v: 1}},
		Token{Span: Span{5, 12}, Dim: "quantity", Payload: numPayload{v: 2}},
	)
	converters := testConverters("time", "quantity")

	// Multi-dimensional request: both survive.
	got := Resolve("abcdefghijkl", pool, ResolutionContext{}, converters)
	assert.Equal(t, []Span{{0, 8}, {5, 12}}, spansOf(got))

	// Restricted to one dimension: only that dimension's token is
	// considered at all.
	got = Resolve("abcdefghijkl", pool, ResolutionContext{Dimensions: []Dimension{"quantity"}}, converters)
	assert.Equal(t, []Span{{5, 12}}, spansOf(got))
}

func TestResolveLatentExcludedByDefault(t *testing.T) {
	pool := poolOf(
		Token{Span: Span{0, 1}, Dim: "numeral", Payload: numPayload{v: 5}},
		Token{Span: Span{0, 1}, Dim: "time", Payload: numPayload{v: 5}, Latent: true},
	)
	converters := testConverters("numeral", "time")

	// A time-only request finds nothing: the only time token is latent.
	got := Resolve("5", pool, ResolutionContext{Dimensions: []Dimension{"time"}}, converters)
	assert.Empty(t, got)

	// With latent admitted it surfaces, flagged.
	got = Resolve("5", pool, ResolutionContext{Dimensions: []Dimension{"time"}, IncludeLatent: true}, converters)
	require.Len(t, got, 1)
	assert.True(t, got[0].Latent)
}

func TestResolveLatentLosesToAnyNonLatentOverlap(t *testing.T) {
	pool := poolOf(
		Token{Span: Span{0, 5}, Dim: "numeral", Payload: numPayload{v: 30}},
		Token{Span: Span{0, 2}, Dim: "time", Payload: numPayload{v: 3}, Latent: true},
	)

	got := Resolve("30min", pool, ResolutionContext{IncludeLatent: true}, testConverters("numeral", "time"))
	require.Len(t, got, 1)
	assert.Equal(t, Dimension("numeral"), got[0].Dim)
}

func TestResolveSkipsDimensionsWithoutConverter(t *testing.T) {
	pool := poolOf(
		Token{Span: Span{0, 3}, Dim: "numeral", Payload: numPayload{v: 1}},
		Token{Span: Span{4, 7}, Dim: "custom", Payload: numPayload{v: 2}},
	)

	got := Resolve("abc def", pool, ResolutionContext{}, testConverters("numeral"))
	require.Len(t, got, 1)
	assert.Equal(t, Dimension("numeral"), got[0].Dim)
}

func TestResolveNilConverterResultDropsSpan(t *testing.T) {
	pool := poolOf(
		Token{Span: Span{0, 3}, Dim: "numeral", Payload: numPayload{v: 1}},
	)
	converters := map[Dimension]Converter{
		"numeral": func(any, ResolutionContext) any { return nil },
	}

	got := Resolve("abc", pool, ResolutionContext{}, converters)
	assert.Empty(t, got)
}

func TestResolveOrdersByStartOffset(t *testing.T) {
	pool := poolOf(
		Token{Span: Span{10, 12}, Dim: "numeral", Payload: numPayload{v: 2}},
		Token{Span: Span{0, 3}, Dim: "numeral", Payload: numPayload{v: 1}},
		Token{Span: Span{20, 25}, Dim: "numeral", Payload: numPayload{v: 3}},
	)

	got := Resolve("abcdefghijklmnopqrstuvwxy", pool, ResolutionContext{}, testConverters("numeral"))
	assert.Equal(t, []Span{{0, 3}, {10, 12}, {20, 25}}, spansOf(got))
}
