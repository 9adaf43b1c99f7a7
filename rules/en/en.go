// Package en holds the English rule tables for quanta.
//
// Everything here is data consumed by the engine: ordered rule slices per
// dimension, with pattern items over English surface forms and productions
// building dims payloads. Rule order within a slice is the declaration
// order the resolver uses as its last-resort tie-break.
package en

import (
	"math"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
)

// Rules returns every English rule table keyed by target dimension.
func Rules() map[engine.Dimension][]engine.Rule {
	return map[engine.Dimension][]engine.Rule{
		dims.Numeral:     NumeralRules(),
		dims.Ordinal:     OrdinalRules(),
		dims.Time:        TimeRules(),
		dims.Duration:    DurationRules(),
		dims.Distance:    DistanceRules(),
		dims.Temperature: TemperatureRules(),
		dims.Volume:      VolumeRules(),
		dims.Finance:     FinanceRules(),
		dims.Quantity:    QuantityRules(),
	}
}

// sep matches the separators allowed between composed number words:
// whitespace or a hyphen ("twenty one", "twenty-one").
func sep() engine.PatternItem {
	return engine.Regex(`([\s-]+)`)
}

// num matches a numeral token whose payload satisfies pred (nil = any).
func num(pred func(dims.NumeralData) bool) engine.PatternItem {
	return engine.TokenOf(dims.Numeral, func(p any) bool {
		n, ok := p.(dims.NumeralData)
		if !ok {
			return false
		}
		return pred == nil || pred(n)
	})
}

// intBetween matches a numeral token holding an integer in [lo, hi].
func intBetween(lo, hi float64) engine.PatternItem {
	return num(func(n dims.NumeralData) bool {
		return isInt(n.Value) && lo <= n.Value && n.Value <= hi
	})
}

// ordBetween matches an ordinal token with value in [lo, hi].
func ordBetween(lo, hi int) engine.PatternItem {
	return engine.TokenOf(dims.Ordinal, func(p any) bool {
		o, ok := p.(dims.OrdinalData)
		return ok && lo <= o.Value && o.Value <= hi
	})
}

// numeralAt returns the numeral payload captured at position i.
func numeralAt(m engine.Match, i int) dims.NumeralData {
	return m.Captures[i].Token.Payload.(dims.NumeralData)
}

func isInt(v float64) bool {
	return v == math.Trunc(v)
}

// zerosOf counts the trailing decimal zeros of v's integer part, the
// base-10 grain of magnitude words and round numbers.
func zerosOf(v float64) int {
	n := int64(math.Abs(math.Trunc(v)))
	if n == 0 {
		return 0
	}
	zeros := 0
	for n%10 == 0 {
		zeros++
		n /= 10
	}
	return zeros
}
