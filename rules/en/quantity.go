package en

import (
	"strings"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
)

// quantityUnit normalizes an English measure word.
func quantityUnit(word string) string {
	w := strings.TrimSuffix(strings.ToLower(word), "s")
	switch w {
	case "cup":
		return "cup"
	case "tablespoon", "tbsp":
		return "tablespoon"
	case "teaspoon", "tsp":
		return "teaspoon"
	case "gram":
		return "gram"
	case "kilogram", "kg":
		return "kilogram"
	case "pound", "lb":
		return "pound"
	case "ounce", "oz":
		return "ounce"
	default:
		return w
	}
}

// QuantityRules are the English quantity tables: measured amounts with an
// optional "of <product>" tail.
func QuantityRules() []engine.Rule {
	return []engine.Rule{
		{
			Name: "<numeral> <measure unit>",
			Dim:  dims.Quantity,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool { return n.Value >= 0 }),
				engine.Regex(`\s*(cups?|tablespoons?|tbsp|teaspoons?|tsp|grams?|kilograms?|kgs?|pounds?|lbs?|ounces?|oz)(?![a-z])`),
			},
			Produce: func(m engine.Match) any {
				return dims.QuantityData{
					Value: numeralAt(m, 0).Value,
					Unit:  quantityUnit(m.Captures[1].Group(0)),
				}
			},
		},
		{
			Name: "<quantity> of <product>",
			Dim:  dims.Quantity,
			Pattern: []engine.PatternItem{
				engine.TokenOf(dims.Quantity, func(p any) bool {
					q, ok := p.(dims.QuantityData)
					return ok && q.Product == ""
				}),
				engine.Regex(`\s+of\s+([a-z]+)(?![a-z])`),
			},
			Produce: func(m engine.Match) any {
				q := m.Captures[0].Token.Payload.(dims.QuantityData)
				q.Product = strings.ToLower(m.Captures[1].Group(0))
				return q
			},
		},
	}
}
