package en

import (
	"strconv"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
)

var ordinalWords = map[string]float64{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
	"nineteenth": 19, "twentieth": 20, "thirtieth": 30, "fortieth": 40,
	"fiftieth": 50, "sixtieth": 60, "seventieth": 70, "eightieth": 80,
	"ninetieth": 90,
}

// OrdinalRules are the English ordinal tables.
func OrdinalRules() []engine.Rule {
	return []engine.Rule{
		{
			Name:    "ordinal (words)",
			Dim:     dims.Ordinal,
			Pattern: []engine.PatternItem{engine.Literals(ordinalWords)},
			Produce: func(m engine.Match) any {
				return dims.OrdinalData{Value: int(m.Captures[0].Value)}
			},
		},
		{
			Name: "ordinal 21..99 (tens + units)",
			Dim:  dims.Ordinal,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool {
					return n.Grain == 1 && n.Value >= 20 && n.Value <= 90
				}),
				sep(),
				ordBetween(1, 9),
			},
			Produce: func(m engine.Match) any {
				t := numeralAt(m, 0).Value
				u := m.Captures[2].Token.Payload.(dims.OrdinalData).Value
				return dims.OrdinalData{Value: int(t) + u}
			},
		},
		{
			Name:    "ordinal (digits)",
			Dim:     dims.Ordinal,
			Pattern: []engine.PatternItem{engine.Regex(`(\d+)(?:st|nd|rd|th)(?![a-z])`)},
			Produce: func(m engine.Match) any {
				v, err := strconv.Atoi(m.Captures[0].Group(0))
				if err != nil {
					return nil
				}
				return dims.OrdinalData{Value: v}
			},
		},
	}
}
