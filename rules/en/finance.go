package en

import (
	"strings"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
)

// currencyOf normalizes an English currency marker to an ISO-ish code.
// Cents stay distinct so the dollars-and-cents rule can recombine them.
func currencyOf(marker string) string {
	switch strings.TrimSuffix(strings.ToLower(marker), "s") {
	case "$", "dollar", "buck", "usd":
		return "USD"
	case "€", "euro", "eur":
		return "EUR"
	case "£", "pound", "gbp":
		return "GBP"
	case "cent", "¢":
		return "cent"
	default:
		return strings.ToUpper(marker)
	}
}

// FinanceRules are the English currency-amount tables.
func FinanceRules() []engine.Rule {
	return []engine.Rule{
		{
			Name: "<currency symbol> <numeral>",
			Dim:  dims.Finance,
			Pattern: []engine.PatternItem{
				engine.Regex(`([$€£])\s*`),
				num(func(n dims.NumeralData) bool { return n.Value >= 0 }),
			},
			Produce: func(m engine.Match) any {
				return dims.FinanceData{
					Value:    numeralAt(m, 1).Value,
					Currency: currencyOf(m.Captures[0].Group(0)),
				}
			},
		},
		{
			Name: "<numeral> <currency word>",
			Dim:  dims.Finance,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool { return n.Value >= 0 }),
				engine.Regex(`\s*(dollars?|bucks?|usd|euros?|eur|pounds?|gbp|cents?|¢)(?![a-z])`),
			},
			Produce: func(m engine.Match) any {
				return dims.FinanceData{
					Value:    numeralAt(m, 0).Value,
					Currency: currencyOf(m.Captures[1].Group(0)),
				}
			},
		},
		{
			Name: "<amount> and <cents> cents",
			Dim:  dims.Finance,
			Pattern: []engine.PatternItem{
				engine.TokenOf(dims.Finance, func(p any) bool {
					f, ok := p.(dims.FinanceData)
					return ok && f.Currency != "cent"
				}),
				engine.Regex(`(\s+and\s+)`),
				engine.TokenOf(dims.Finance, func(p any) bool {
					f, ok := p.(dims.FinanceData)
					return ok && f.Currency == "cent" && f.Value < 100
				}),
			},
			Produce: func(m engine.Match) any {
				main := m.Captures[0].Token.Payload.(dims.FinanceData)
				cents := m.Captures[2].Token.Payload.(dims.FinanceData)
				return dims.FinanceData{
					Value:    main.Value + cents.Value/100,
					Currency: main.Currency,
				}
			},
		},
	}
}
