package en

import (
	"strings"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
)

// canonicalUnit normalizes an English unit word to its canonical name.
func canonicalUnit(word string) string {
	w := strings.TrimSuffix(strings.ToLower(word), "s")
	switch w {
	case "kilometer", "kilometre", "km":
		return "km"
	case "meter", "metre":
		return "m"
	case "centimeter", "centimetre", "cm":
		return "cm"
	case "mile", "mi":
		return "mile"
	case "foot", "feet", "ft":
		return "foot"
	case "inch", "inche":
		return "inch"
	case "liter", "litre":
		return "litre"
	case "milliliter", "millilitre", "ml":
		return "ml"
	case "gallon", "gal":
		return "gallon"
	case "pint":
		return "pint"
	default:
		return w
	}
}

// amountRule builds the usual "<numeral> <unit>" rule shared by the
// unit-bearing dimensions.
func amountRule(name string, dim engine.Dimension, unitsPattern string) engine.Rule {
	return engine.Rule{
		Name: name,
		Dim:  dim,
		Pattern: []engine.PatternItem{
			num(nil),
			engine.Regex(`\s*` + unitsPattern),
		},
		Produce: func(m engine.Match) any {
			return dims.AmountData{
				Value: numeralAt(m, 0).Value,
				Unit:  canonicalUnit(m.Captures[1].Group(0)),
			}
		},
	}
}

// DistanceRules are the English distance tables.
func DistanceRules() []engine.Rule {
	return []engine.Rule{
		amountRule("<numeral> <distance unit>", dims.Distance,
			`(kilometers?|kilometres?|km|miles?|mi|meters?|metres?|centimeters?|centimetres?|cm|feet|foot|ft|inches|inch)(?![a-z])`),
	}
}

// TemperatureRules are the English temperature tables.
func TemperatureRules() []engine.Rule {
	return []engine.Rule{
		{
			Name: "<numeral> degrees",
			Dim:  dims.Temperature,
			Pattern: []engine.PatternItem{
				num(nil),
				engine.Regex(`\s*(?:°\s*|degrees?\s*)(celsius|fahrenheit|c|f)?(?![a-z])`),
			},
			Produce: func(m engine.Match) any {
				unit := "degrees"
				switch strings.ToLower(m.Captures[1].Group(0)) {
				case "celsius", "c":
					unit = "celsius"
				case "fahrenheit", "f":
					unit = "fahrenheit"
				}
				return dims.AmountData{Value: numeralAt(m, 0).Value, Unit: unit}
			},
		},
		{
			Name: "<temperature> below zero",
			Dim:  dims.Temperature,
			Pattern: []engine.PatternItem{
				engine.AnyToken(dims.Temperature),
				engine.Regex(`\s+(below\s+zero)(?![a-z])`),
			},
			Produce: func(m engine.Match) any {
				t := m.Captures[0].Token.Payload.(dims.AmountData)
				if t.Value <= 0 {
					return nil
				}
				return dims.AmountData{Value: -t.Value, Unit: t.Unit}
			},
		},
	}
}

// VolumeRules are the English volume tables.
func VolumeRules() []engine.Rule {
	return []engine.Rule{
		amountRule("<numeral> <volume unit>", dims.Volume,
			`(liters?|litres?|milliliters?|millilitres?|ml|gallons?|gal|pints?)(?![a-z])`),
	}
}
