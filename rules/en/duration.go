package en

import (
	"strings"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
)

// grainOfUnit normalizes an English duration-unit word to its grain.
func grainOfUnit(word string) (dims.Grain, bool) {
	w := strings.TrimSuffix(strings.ToLower(word), "s")
	switch w {
	case "second", "sec":
		return dims.GrainSecond, true
	case "minute", "min":
		return dims.GrainMinute, true
	case "hour", "hr":
		return dims.GrainHour, true
	case "day":
		return dims.GrainDay, true
	case "week":
		return dims.GrainWeek, true
	case "month":
		return dims.GrainMonth, true
	case "year", "yr":
		return dims.GrainYear, true
	default:
		return "", false
	}
}

const durationUnits = `(seconds?|secs?|minutes?|mins?|hours?|hrs?|days?|weeks?|months?|years?|yrs?)(?![a-z])`

// DurationRules are the English duration tables.
func DurationRules() []engine.Rule {
	return []engine.Rule{
		{
			Name: "<numeral> <duration unit>",
			Dim:  dims.Duration,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool { return n.Value >= 0 }),
				engine.Regex(`\s*` + durationUnits),
			},
			Produce: func(m engine.Match) any {
				g, ok := grainOfUnit(m.Captures[1].Group(0))
				if !ok {
					return nil
				}
				return dims.DurationData{Value: numeralAt(m, 0).Value, Unit: g}
			},
		},
		{
			Name:    "one <duration unit> (article)",
			Dim:     dims.Duration,
			Pattern: []engine.PatternItem{engine.Regex(`an?\s+(second|minute|hour|day|week|month|year)(?![a-z])`)},
			Produce: func(m engine.Match) any {
				g, ok := grainOfUnit(m.Captures[0].Group(0))
				if !ok {
					return nil
				}
				return dims.DurationData{Value: 1, Unit: g}
			},
		},
		{
			Name:    "half an hour",
			Dim:     dims.Duration,
			Pattern: []engine.PatternItem{engine.Regex(`(half\s+an?\s+hour)(?![a-z])`)},
			Produce: func(m engine.Match) any {
				return dims.DurationData{Value: 0.5, Unit: dims.GrainHour}
			},
		},
		{
			Name: "<numeral> and a half <duration unit>",
			Dim:  dims.Duration,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool { return isInt(n.Value) && n.Value >= 0 }),
				engine.Regex(`\s+and\s+a\s+half\s+(hours?|minutes?|days?)(?![a-z])`),
			},
			Produce: func(m engine.Match) any {
				g, ok := grainOfUnit(m.Captures[1].Group(0))
				if !ok {
					return nil
				}
				return dims.DurationData{Value: numeralAt(m, 0).Value + 0.5, Unit: g}
			},
		},
	}
}
