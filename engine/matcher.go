package engine

// matcher attempts rules against one document plus a pool snapshot. All
// fields are read-only during a pass, so a matcher may be shared across
// workers.
type matcher struct {
	doc  string
	snap *Snapshot
}

// tryRule attempts one rule at one start offset and returns every token the
// rule produces there. Several pool tokens may satisfy a token item at the
// same offset, so a single attempt can succeed in more than one way; each
// complete way is offered to the production independently.
func (m *matcher) tryRule(rule *Rule, ruleIndex, offset, pass int) []Token {
	var out []Token
	caps := make([]Capture, 0, len(rule.Pattern))
	m.explore(rule, ruleIndex, offset, pass, offset, caps, &out)
	return out
}

// explore satisfies rule.Pattern[len(caps):] starting at pos, each item
// beginning exactly where the previous one ended. Completed capture lists
// are handed to the production; a nil production result discards that
// alternative with no side effects.
func (m *matcher) explore(rule *Rule, ruleIndex, start, pass, pos int, caps []Capture, out *[]Token) {
	if len(caps) == len(rule.Pattern) {
		match := Match{
			Rule:     rule,
			Span:     Span{Start: start, End: pos},
			Captures: caps,
		}
		payload := rule.Produce(match)
		if payload == nil {
			return
		}
		*out = append(*out, Token{
			Span:      match.Span,
			Dim:       rule.Dim,
			Payload:   payload,
			Latent:    rule.Latent,
			Rule:      rule.Name,
			RuleIndex: ruleIndex,
			Pass:      pass,
		})
		return
	}

	if pos > len(m.doc) {
		return
	}

	switch item := rule.Pattern[len(caps)].(type) {
	case *RegexItem:
		if pos == len(m.doc) {
			return
		}
		span, groups, ok := item.matchAt(m.doc, pos)
		if !ok || span.Len() == 0 {
			return
		}
		c := Capture{Span: span, Text: m.doc[span.Start:span.End], Groups: groups}
		m.explore(rule, ruleIndex, start, pass, span.End, append(caps, c), out)

	case *LiteralSetItem:
		if pos == len(m.doc) {
			return
		}
		span, text, value, ok := item.matchAt(m.doc, pos)
		if !ok {
			return
		}
		c := Capture{Span: span, Text: text, Value: value}
		m.explore(rule, ruleIndex, start, pass, span.End, append(caps, c), out)

	case *TokenPredicateItem:
		for _, tok := range m.snap.StartingAt(pos) {
			if !item.accepts(tok) {
				continue
			}
			tok := tok
			c := Capture{Span: tok.Span, Text: m.doc[tok.Span.Start:tok.Span.End], Token: &tok}
			m.explore(rule, ruleIndex, start, pass, tok.Span.End, append(caps, c), out)
		}

	case *NumericRangeItem:
		for _, tok := range m.snap.StartingAt(pos) {
			if !item.accepts(tok) {
				continue
			}
			tok := tok
			c := Capture{Span: tok.Span, Text: m.doc[tok.Span.Start:tok.Span.End], Token: &tok}
			m.explore(rule, ruleIndex, start, pass, tok.Span.End, append(caps, c), out)
		}

	default:
		// The pattern item set is closed; reaching this is a programming
		// error caught by the engine tests.
		panic("engine: unhandled pattern item variant")
	}
}

// feasibleStarts returns the offsets where the rule's first item could
// plausibly start: every document offset for text items, token starts from
// the snapshot for token items.
func (m *matcher) feasibleStarts(rule *Rule) []int {
	switch rule.Pattern[0].(type) {
	case *TokenPredicateItem, *NumericRangeItem:
		return m.snap.Starts()
	default:
		starts := make([]int, len(m.doc))
		for i := range starts {
			starts[i] = i
		}
		return starts
	}
}
