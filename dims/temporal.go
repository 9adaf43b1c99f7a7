package dims

import (
	"time"

	"github.com/teranos/quanta/engine"
)

// TimeForm discriminates the shapes a time payload can take.
type TimeForm string

const (
	// FormNow is the reference instant itself ("now", "today").
	FormNow TimeForm = "now"
	// FormDate is an absolute calendar date, year optional.
	FormDate TimeForm = "date"
	// FormClock is a time of day ("14:30", "at 7", "7pm").
	FormClock TimeForm = "clock"
	// FormRelative is an offset from the reference instant
	// ("in 3 days", "2 weeks ago").
	FormRelative TimeForm = "relative"
	// FormWeekday is a named day, possibly recurring ("friday",
	// "next monday").
	FormWeekday TimeForm = "weekday"
	// FormDayPart is an open interval within a day ("tonight",
	// "this morning").
	FormDayPart TimeForm = "day-part"
)

// Rel qualifies weekday and calendar-unit references.
type Rel string

const (
	RelNone Rel = ""
	RelThis Rel = "this"
	RelNext Rel = "next"
	RelLast Rel = "last"
)

// TimeData is the payload of a time token. Only the fields relevant to its
// Form are set; everything is scalar so the payload stays comparable.
type TimeData struct {
	Form TimeForm

	// FormDate.
	Year  int // 0 = unset, resolved against the reference year
	Month time.Month
	Day   int

	// Clock fields, used by FormClock and optionally FormDate.
	Hour     int
	Minute   int
	HasClock bool

	// FormRelative.
	Direction int // +1 future, -1 past
	N         int
	Grain     Grain

	// FormWeekday.
	Weekday time.Weekday
	Rel     Rel

	// FormDayPart, hours of day.
	PartStart int
	PartEnd   int
}

// TimeValue is the resolved value of a time span: a concrete instant
// anchored to the reference time, with its grain, an optional interval end,
// and optional further future candidates for recurring expressions.
type TimeValue struct {
	Instant    time.Time   `json:"instant"`
	Grain      Grain       `json:"grain"`
	End        *time.Time  `json:"end,omitempty"`
	Candidates []time.Time `json:"candidates,omitempty"`
}

func convertTime(payload any, rctx engine.ResolutionContext) any {
	d, ok := payload.(TimeData)
	if !ok {
		return nil
	}
	ref := rctx.Reference()

	switch d.Form {
	case FormNow:
		return TimeValue{Instant: ref, Grain: GrainSecond}

	case FormDate:
		year := d.Year
		if year == 0 {
			year = ref.Year()
			date := time.Date(year, d.Month, d.Day, 0, 0, 0, 0, ref.Location())
			// Year-less dates are forward-looking: a date already past
			// means next year's occurrence.
			if date.Before(midnight(ref)) {
				year++
			}
		}
		grain := GrainDay
		hour, minute := 0, 0
		if d.HasClock {
			hour, minute = d.Hour, d.Minute
			grain = GrainMinute
		}
		return TimeValue{
			Instant: time.Date(year, d.Month, d.Day, hour, minute, 0, 0, ref.Location()),
			Grain:   grain,
		}

	case FormClock:
		at := time.Date(ref.Year(), ref.Month(), ref.Day(), d.Hour, d.Minute, 0, 0, ref.Location())
		// Clock times are forward-looking: a time already past today
		// means tomorrow.
		if !at.After(ref) {
			at = at.AddDate(0, 0, 1)
		}
		grain := GrainHour
		if d.Minute != 0 {
			grain = GrainMinute
		}
		return TimeValue{Instant: at, Grain: grain}

	case FormRelative:
		return TimeValue{Instant: shift(ref, d.Direction, d.N, d.Grain), Grain: d.Grain}

	case FormWeekday:
		switch d.Rel {
		case RelLast:
			back := int(ref.Weekday() - d.Weekday)
			if back <= 0 {
				back += 7
			}
			return TimeValue{Instant: midnight(ref).AddDate(0, 0, -back), Grain: GrainDay}
		case RelNext:
			fwd := int(d.Weekday - ref.Weekday())
			if fwd <= 0 {
				fwd += 7
			}
			return TimeValue{Instant: midnight(ref).AddDate(0, 0, fwd), Grain: GrainDay}
		case RelThis:
			return TimeValue{
				Instant: midnight(ref).AddDate(0, 0, int(d.Weekday-ref.Weekday())),
				Grain:   GrainDay,
			}
		default:
			// A bare weekday is recurring: anchor to the next future
			// occurrence and surface the one after it as a further
			// candidate.
			fwd := int(d.Weekday - ref.Weekday())
			if fwd <= 0 {
				fwd += 7
			}
			first := midnight(ref).AddDate(0, 0, fwd)
			return TimeValue{
				Instant:    first,
				Grain:      GrainDay,
				Candidates: []time.Time{first, first.AddDate(0, 0, 7)},
			}
		}

	case FormDayPart:
		start := time.Date(ref.Year(), ref.Month(), ref.Day(), d.PartStart, 0, 0, 0, ref.Location())
		end := time.Date(ref.Year(), ref.Month(), ref.Day(), d.PartEnd, 0, 0, 0, ref.Location())
		if d.PartEnd <= d.PartStart {
			end = end.AddDate(0, 0, 1)
		}
		if !end.After(ref) {
			start = start.AddDate(0, 0, 1)
			end = end.AddDate(0, 0, 1)
		}
		return TimeValue{Instant: start, Grain: GrainHour, End: &end}

	default:
		return nil
	}
}

// shift moves the reference by n grain steps in the given direction,
// calendar-aware for day and coarser grains.
func shift(ref time.Time, direction, n int, grain Grain) time.Time {
	steps := direction * n
	switch grain {
	case GrainDay:
		return ref.AddDate(0, 0, steps)
	case GrainWeek:
		return ref.AddDate(0, 0, 7*steps)
	case GrainMonth:
		return ref.AddDate(0, steps, 0)
	case GrainYear:
		return ref.AddDate(steps, 0, 0)
	default:
		return ref.Add(time.Duration(steps) * grain.unit())
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
