package en

import (
	"math"
	"strconv"
	"strings"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
)

var zeroToNineteen = map[string]float64{
	"zero": 0, "naught": 0, "nought": 0,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19,
}

var tens = map[string]float64{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var magnitudes = map[string]float64{
	"hundred":  100,
	"thousand": 1000,
	"million":  1e6,
	"billion":  1e9,
}

// NumeralRules are the English numeral tables: number words, digit forms,
// and the composition rules that assemble multi-word values.
func NumeralRules() []engine.Rule {
	return []engine.Rule{
		{
			Name:    "integer (0..19)",
			Dim:     dims.Numeral,
			Pattern: []engine.PatternItem{engine.Literals(zeroToNineteen)},
			Produce: func(m engine.Match) any {
				v := m.Captures[0].Value
				return dims.NumeralData{Value: v, Grain: zerosOf(v), Multipliable: true}
			},
		},
		{
			Name:    "integer (20..90)",
			Dim:     dims.Numeral,
			Pattern: []engine.PatternItem{engine.Literals(tens)},
			Produce: func(m engine.Match) any {
				return dims.NumeralData{Value: m.Captures[0].Value, Grain: 1}
			},
		},
		{
			Name: "integer 21..99 (tens + units)",
			Dim:  dims.Numeral,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool {
					return n.Grain == 1 && n.Value >= 20 && n.Value <= 90
				}),
				sep(),
				intBetween(1, 9),
			},
			Produce: func(m engine.Match) any {
				v := numeralAt(m, 0).Value + numeralAt(m, 2).Value
				return dims.NumeralData{Value: v}
			},
		},
		{
			Name:    "integer (numeric)",
			Dim:     dims.Numeral,
			Pattern: []engine.PatternItem{engine.Regex(`(\d{1,18})(?![\d.])`)},
			Produce: func(m engine.Match) any {
				v, err := strconv.ParseFloat(m.Captures[0].Group(0), 64)
				if err != nil {
					return nil
				}
				return dims.NumeralData{Value: v, Grain: zerosOf(v), Multipliable: true}
			},
		},
		{
			Name:    "integer with thousands separator",
			Dim:     dims.Numeral,
			Pattern: []engine.PatternItem{engine.Regex(`(\d{1,3}(?:,\d{3})+)(?![\d,])`)},
			Produce: func(m engine.Match) any {
				raw := strings.ReplaceAll(m.Captures[0].Group(0), ",", "")
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil
				}
				return dims.NumeralData{Value: v, Grain: zerosOf(v)}
			},
		},
		{
			Name:    "decimal number",
			Dim:     dims.Numeral,
			Pattern: []engine.PatternItem{engine.Regex(`(\d*\.\d+)(?!\d)`)},
			Produce: func(m engine.Match) any {
				v, err := strconv.ParseFloat(m.Captures[0].Group(0), 64)
				if err != nil {
					return nil
				}
				return dims.NumeralData{Value: v}
			},
		},
		{
			Name: "number point number",
			Dim:  dims.Numeral,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool { return isInt(n.Value) }),
				engine.Regex(`(\s+(?:point|dot)\s+)`),
				intBetween(0, 9),
			},
			Produce: func(m engine.Match) any {
				v := numeralAt(m, 0).Value + numeralAt(m, 2).Value/10
				return dims.NumeralData{Value: v}
			},
		},
		{
			Name: "negative number",
			Dim:  dims.Numeral,
			Pattern: []engine.PatternItem{
				engine.Regex(`(-|minus\s+|negative\s+)`),
				num(func(n dims.NumeralData) bool { return n.Value > 0 }),
			},
			Produce: func(m engine.Match) any {
				return dims.NumeralData{Value: -numeralAt(m, 1).Value}
			},
		},
		{
			Name:    "magnitude word",
			Dim:     dims.Numeral,
			Pattern: []engine.PatternItem{engine.Literals(magnitudes)},
			Produce: func(m engine.Match) any {
				v := m.Captures[0].Value
				return dims.NumeralData{Value: v, Grain: zerosOf(v)}
			},
		},
		{
			Name: "number times magnitude",
			Dim:  dims.Numeral,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool { return n.Multipliable && n.Value >= 1 }),
				sep(),
				num(func(n dims.NumeralData) bool {
					return n.Grain >= 2 && isPowerOfTen(n.Value)
				}),
			},
			Produce: func(m engine.Match) any {
				left, mag := numeralAt(m, 0), numeralAt(m, 2)
				// "hundred hundred" and the like never compose.
				if left.Value >= mag.Value {
					return nil
				}
				v := left.Value * mag.Value
				return dims.NumeralData{Value: v, Grain: zerosOf(v), Multipliable: true}
			},
		},
		{
			Name: "intersect magnitude with remainder",
			Dim:  dims.Numeral,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool { return n.Grain > 1 }),
				engine.Regex(`(\s+(?:and\s+)?)`),
				num(func(n dims.NumeralData) bool { return n.Value > 0 && isInt(n.Value) }),
			},
			Produce: func(m engine.Match) any {
				left, right := numeralAt(m, 0), numeralAt(m, 2)
				// Guard: the remainder must fit under the magnitude's
				// grain, otherwise this is not an intersection.
				if right.Value >= math.Pow(10, float64(left.Grain)) {
					return nil
				}
				return dims.NumeralData{Value: left.Value + right.Value}
			},
		},
		{
			Name: "number with suffix multiplier",
			Dim:  dims.Numeral,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool { return n.Value > 0 }),
				engine.RegexSuffix(`([kmg])(?![a-z0-9])`),
			},
			Produce: func(m engine.Match) any {
				mult := map[string]float64{"k": 1e3, "m": 1e6, "g": 1e9}
				v := numeralAt(m, 0).Value * mult[strings.ToLower(m.Captures[1].Group(0))]
				return dims.NumeralData{Value: v, Grain: zerosOf(v)}
			},
		},
	}
}

func isPowerOfTen(v float64) bool {
	if v < 1 || !isInt(v) {
		return false
	}
	n := int64(v)
	for n%10 == 0 {
		n /= 10
	}
	return n == 1
}
