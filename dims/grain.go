package dims

import "time"

// Grain is a calendar granularity shared by time and duration payloads.
type Grain string

const (
	GrainSecond Grain = "second"
	GrainMinute Grain = "minute"
	GrainHour   Grain = "hour"
	GrainDay    Grain = "day"
	GrainWeek   Grain = "week"
	GrainMonth  Grain = "month"
	GrainYear   Grain = "year"
)

// unit returns the fixed-length duration of one grain step. Months and
// years are approximated (30 and 365 days) for duration normalization;
// calendar-aware time anchoring uses AddDate instead.
func (g Grain) unit() time.Duration {
	switch g {
	case GrainSecond:
		return time.Second
	case GrainMinute:
		return time.Minute
	case GrainHour:
		return time.Hour
	case GrainDay:
		return 24 * time.Hour
	case GrainWeek:
		return 7 * 24 * time.Hour
	case GrainMonth:
		return 30 * 24 * time.Hour
	case GrainYear:
		return 365 * 24 * time.Hour
	default:
		return 0
	}
}
