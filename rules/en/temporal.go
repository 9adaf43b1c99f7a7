package en

import (
	"strconv"
	"strings"
	"time"

	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/engine"
)

var months = map[string]float64{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5,
	"june": 6, "july": 7, "august": 8, "september": 9, "october": 10,
	"november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7,
	"aug": 8, "sep": 9, "sept": 9, "oct": 10, "nov": 11, "dec": 12,
}

// weekdayOf maps a day name, full or abbreviated, to its weekday. Abbrevs
// share the full name's first three letters.
func weekdayOf(word string) (time.Weekday, bool) {
	key := strings.ToLower(word)
	if len(key) > 3 {
		key = key[:3]
	}
	wd, ok := map[string]time.Weekday{
		"mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
		"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
		"sun": time.Sunday,
	}[key]
	return wd, ok
}

func relOf(word string) dims.Rel {
	switch strings.ToLower(word) {
	case "next":
		return dims.RelNext
	case "last":
		return dims.RelLast
	default:
		return dims.RelThis
	}
}

// isWeekday matches a time token carrying a bare (unqualified) weekday.
func isBareWeekday(p any) bool {
	d, ok := p.(dims.TimeData)
	return ok && d.Form == dims.FormWeekday && d.Rel == dims.RelNone
}

// isClock matches a time token carrying a time of day.
func isClock(p any) bool {
	d, ok := p.(dims.TimeData)
	return ok && d.Form == dims.FormClock
}

// TimeRules are the English time tables. Several rules compose tokens of
// other dimensions (numerals, ordinals, durations), so requesting Time
// activates those tables as inputs too.
func TimeRules() []engine.Rule {
	return []engine.Rule{
		{
			Name:    "right now",
			Dim:     dims.Time,
			Pattern: []engine.PatternItem{engine.Regex(`(right\s+now|now|at\s+the\s+moment|today)(?![a-z])`)},
			Produce: func(m engine.Match) any {
				return dims.TimeData{Form: dims.FormNow}
			},
		},
		{
			Name:    "tomorrow",
			Dim:     dims.Time,
			Pattern: []engine.PatternItem{engine.Regex(`(tomorrow)(?![a-z])`)},
			Produce: func(m engine.Match) any {
				return dims.TimeData{Form: dims.FormRelative, Direction: 1, N: 1, Grain: dims.GrainDay}
			},
		},
		{
			Name:    "yesterday",
			Dim:     dims.Time,
			Pattern: []engine.PatternItem{engine.Regex(`(yesterday)(?![a-z])`)},
			Produce: func(m engine.Match) any {
				return dims.TimeData{Form: dims.FormRelative, Direction: -1, N: 1, Grain: dims.GrainDay}
			},
		},
		{
			Name:    "this | next | last <calendar unit>",
			Dim:     dims.Time,
			Pattern: []engine.PatternItem{engine.Regex(`(this|next|last)\s+(week|month|year)(?![a-z])`)},
			Produce: func(m engine.Match) any {
				c := m.Captures[0]
				direction := 0
				switch strings.ToLower(c.Group(0)) {
				case "next":
					direction = 1
				case "last":
					direction = -1
				}
				return dims.TimeData{
					Form:      dims.FormRelative,
					Direction: direction,
					N:         1,
					Grain:     dims.Grain(strings.ToLower(c.Group(1))),
				}
			},
		},
		{
			Name: "named weekday",
			Dim:  dims.Time,
			Pattern: []engine.PatternItem{
				engine.Regex(`(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tues?|wed|thu(?:rs?)?|fri|sat|sun)(?![a-z])`),
			},
			Produce: func(m engine.Match) any {
				wd, ok := weekdayOf(m.Captures[0].Group(0))
				if !ok {
					return nil
				}
				return dims.TimeData{Form: dims.FormWeekday, Weekday: wd}
			},
		},
		{
			Name: "this | next | last <weekday>",
			Dim:  dims.Time,
			Pattern: []engine.PatternItem{
				engine.Regex(`(this|next|last)\s+`),
				engine.TokenOf(dims.Time, isBareWeekday),
			},
			Produce: func(m engine.Match) any {
				d := m.Captures[1].Token.Payload.(dims.TimeData)
				d.Rel = relOf(m.Captures[0].Group(0))
				return d
			},
		},
		{
			Name:    "clock time hh:mm",
			Dim:     dims.Time,
			Pattern: []engine.PatternItem{engine.Regex(`([01]?\d|2[0-3]):([0-5]\d)(?!\d)`)},
			Produce: func(m engine.Match) any {
				c := m.Captures[0]
				hour, _ := strconv.Atoi(c.Group(0))
				minute, _ := strconv.Atoi(c.Group(1))
				return dims.TimeData{Form: dims.FormClock, Hour: hour, Minute: minute, HasClock: true}
			},
		},
		{
			Name:    "<hour> am|pm",
			Dim:     dims.Time,
			Pattern: []engine.PatternItem{engine.Regex(`(0?[1-9]|1[0-2])(?::([0-5]\d))?\s*([ap])\.?m\.?(?![a-z])`)},
			Produce: func(m engine.Match) any {
				c := m.Captures[0]
				hour, _ := strconv.Atoi(c.Group(0))
				minute := 0
				if c.Group(1) != "" {
					minute, _ = strconv.Atoi(c.Group(1))
				}
				if strings.EqualFold(c.Group(2), "p") {
					if hour != 12 {
						hour += 12
					}
				} else if hour == 12 {
					hour = 0
				}
				return dims.TimeData{Form: dims.FormClock, Hour: hour, Minute: minute, HasClock: true}
			},
		},
		{
			Name: "at <time-of-day>",
			Dim:  dims.Time,
			Pattern: []engine.PatternItem{
				engine.Regex(`(at)\s+`),
				engine.TokenOf(dims.Time, isClock),
			},
			Produce: func(m engine.Match) any {
				return m.Captures[1].Token.Payload
			},
		},
		{
			Name:   "bare hour (latent)",
			Dim:    dims.Time,
			Latent: true,
			Pattern: []engine.PatternItem{
				num(func(n dims.NumeralData) bool {
					return isInt(n.Value) && n.Value >= 0 && n.Value <= 23
				}),
			},
			Produce: func(m engine.Match) any {
				return dims.TimeData{Form: dims.FormClock, Hour: int(numeralAt(m, 0).Value), HasClock: true}
			},
		},
		{
			Name:    "iso date",
			Dim:     dims.Time,
			Pattern: []engine.PatternItem{engine.Regex(`(\d{4})-(\d{1,2})-(\d{1,2})(?!\d)`)},
			Produce: func(m engine.Match) any {
				c := m.Captures[0]
				year, _ := strconv.Atoi(c.Group(0))
				month, _ := strconv.Atoi(c.Group(1))
				day, _ := strconv.Atoi(c.Group(2))
				if month < 1 || month > 12 || day < 1 || day > 31 {
					return nil
				}
				return dims.TimeData{Form: dims.FormDate, Year: year, Month: time.Month(month), Day: day}
			},
		},
		{
			Name: "<month> <day>",
			Dim:  dims.Time,
			Pattern: []engine.PatternItem{
				engine.Literals(months),
				engine.Regex(`(\s+)`),
				intBetween(1, 31),
			},
			Produce: func(m engine.Match) any {
				return dims.TimeData{
					Form:  dims.FormDate,
					Month: time.Month(int(m.Captures[0].Value)),
					Day:   int(numeralAt(m, 2).Value),
				}
			},
		},
		{
			Name: "<month> <day-ordinal>",
			Dim:  dims.Time,
			Pattern: []engine.PatternItem{
				engine.Literals(months),
				engine.Regex(`(\s+)`),
				ordBetween(1, 31),
			},
			Produce: func(m engine.Match) any {
				day := m.Captures[2].Token.Payload.(dims.OrdinalData).Value
				return dims.TimeData{
					Form:  dims.FormDate,
					Month: time.Month(int(m.Captures[0].Value)),
					Day:   day,
				}
			},
		},
		{
			Name: "<day-ordinal> of <month>",
			Dim:  dims.Time,
			Pattern: []engine.PatternItem{
				ordBetween(1, 31),
				engine.Regex(`(\s+of\s+)`),
				engine.Literals(months),
			},
			Produce: func(m engine.Match) any {
				return dims.TimeData{
					Form:  dims.FormDate,
					Month: time.Month(int(m.Captures[2].Value)),
					Day:   m.Captures[0].Token.Payload.(dims.OrdinalData).Value,
				}
			},
		},
		{
			Name: "<month> <year>",
			Dim:  dims.Time,
			Pattern: []engine.PatternItem{
				engine.Literals(months),
				engine.Regex(`(\s+)(\d{4})(?!\d)`),
			},
			Produce: func(m engine.Match) any {
				year, _ := strconv.Atoi(m.Captures[1].Group(1))
				return dims.TimeData{
					Form:  dims.FormDate,
					Year:  year,
					Month: time.Month(int(m.Captures[0].Value)),
					Day:   1,
				}
			},
		},
		{
			Name:    "day part",
			Dim:     dims.Time,
			Pattern: []engine.PatternItem{engine.Regex(`(tonight|(?:this\s+)?(morning|afternoon|evening))(?![a-z])`)},
			Produce: func(m engine.Match) any {
				c := m.Captures[0]
				word := strings.ToLower(c.Group(1))
				if strings.ToLower(c.Group(0)) == "tonight" {
					word = "night"
				}
				parts := map[string][2]int{
					"morning":   {4, 12},
					"afternoon": {12, 18},
					"evening":   {18, 22},
					"night":     {18, 0},
				}
				p, ok := parts[word]
				if !ok {
					return nil
				}
				return dims.TimeData{Form: dims.FormDayPart, PartStart: p[0], PartEnd: p[1]}
			},
		},
		{
			Name: "in <duration>",
			Dim:  dims.Time,
			Pattern: []engine.PatternItem{
				engine.Regex(`(in)\s+`),
				engine.AnyToken(dims.Duration),
			},
			Produce: func(m engine.Match) any {
				d := m.Captures[1].Token.Payload.(dims.DurationData)
				if !isInt(d.Value) {
					return nil
				}
				return dims.TimeData{Form: dims.FormRelative, Direction: 1, N: int(d.Value), Grain: d.Unit}
			},
		},
		{
			Name: "<duration> ago",
			Dim:  dims.Time,
			Pattern: []engine.PatternItem{
				engine.AnyToken(dims.Duration),
				engine.Regex(`\s+(ago)(?![a-z])`),
			},
			Produce: func(m engine.Match) any {
				d := m.Captures[0].Token.Payload.(dims.DurationData)
				if !isInt(d.Value) {
					return nil
				}
				return dims.TimeData{Form: dims.FormRelative, Direction: -1, N: int(d.Value), Grain: d.Unit}
			},
		},
	}
}
