package rules

import (
	"strings"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
)

// identProduction builds a production returning the full matched text as an
// IdentData payload, optionally normalized.
func identProduction(normalize func(string) string) engine.Production {
	return func(m engine.Match) any {
		v := m.Captures[0].Text
		if normalize != nil {
			v = normalize(v)
		}
		return dims.IdentData{Value: v}
	}
}

// CommonRules are the locale-agnostic rule tables: email addresses, URLs,
// and phone numbers have the same surface shape everywhere, so every locale
// registers them alongside its own tables.
func CommonRules() map[engine.Dimension][]engine.Rule {
	return map[engine.Dimension][]engine.Rule{
		dims.Email: {
			{
				Name:    "email address",
				Dim:     dims.Email,
				Pattern: []engine.PatternItem{engine.Regex(`([a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,})`)},
				Produce: identProduction(strings.ToLower),
			},
		},
		dims.Url: {
			{
				Name:    "url",
				Dim:     dims.Url,
				Pattern: []engine.PatternItem{engine.Regex(`((?:https?://|www\.)[^\s<>"]+)`)},
				Produce: identProduction(nil),
			},
		},
		dims.PhoneNumber: {
			{
				Name: "phone number (international)",
				Dim:  dims.PhoneNumber,
				Pattern: []engine.PatternItem{
					engine.Regex(`(\+[1-9]\d{0,2}[\s.-]?(?:\(\d{1,4}\)[\s.-]?)?\d(?:[\s.-]?\d){5,11})`),
				},
				Produce: identProduction(nil),
			},
			{
				Name: "phone number (local)",
				Dim:  dims.PhoneNumber,
				Pattern: []engine.PatternItem{
					engine.Regex(`(\(?\d{3}\)?[\s.-]\d{3}[\s.-]\d{4})`),
				},
				Produce: identProduction(nil),
			},
		},
	}
}
