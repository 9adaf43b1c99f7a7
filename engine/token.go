package engine

// Dimension is a semantic category of extracted value ("numeral", "time",
// "duration", ...). The built-in set lives in the dims package; callers may
// register additional dimensions without touching the engine.
type Dimension string

// NumericPayload is implemented by payloads that expose a single numeric
// value. Numeric-range pattern items accept only tokens whose payload
// implements it.
type NumericPayload interface {
	NumericValue() float64
}

// Token is one discovered interpretation of a region of the document.
//
// Tokens are immutable once created. Identity is (Span, Dim, Payload);
// provenance fields (Rule, RuleIndex, Pass) are diagnostic only and excluded
// from identity. Payload must be a comparable value (no slices or maps) so
// the pool can collapse duplicates.
type Token struct {
	Span    Span
	Dim     Dimension
	Payload any

	// Latent marks a low-confidence candidate surfaced only absent a
	// stronger overlapping candidate.
	Latent bool

	// Provenance.
	Rule      string // name of the producing rule
	RuleIndex int    // declaration index within the rule set
	Pass      int    // pass that produced the token
}

// key returns the identity of the token within a pool.
func (t Token) key() tokenKey {
	return tokenKey{span: t.Span, dim: t.Dim, payload: t.Payload}
}

type tokenKey struct {
	span    Span
	dim     Dimension
	payload any
}
