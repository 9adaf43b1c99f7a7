package dims

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/quanta/engine"
)

// refTime is a Tuesday, 04:30 UTC. Every temporal expectation below is
// anchored to it.
var refTime = time.Date(2013, time.February, 12, 4, 30, 0, 0, time.UTC)

func refCtx() engine.ResolutionContext {
	return engine.ResolutionContext{ReferenceTime: refTime, Timezone: time.UTC}
}

func resolveTime(t *testing.T, d TimeData) TimeValue {
	t.Helper()
	v := convertTime(d, refCtx())
	require.NotNil(t, v)
	tv, ok := v.(TimeValue)
	require.True(t, ok)
	return tv
}

func TestConvertTimeNow(t *testing.T) {
	tv := resolveTime(t, TimeData{Form: FormNow})
	assert.True(t, tv.Instant.Equal(refTime))
	assert.Equal(t, GrainSecond, tv.Grain)
}

func TestConvertTimeDate(t *testing.T) {
	tests := []struct {
		name string
		data TimeData
		want time.Time
		grain Grain
	}{
		{
			name:  "explicit year",
			data:  TimeData{Form: FormDate, Year: 2013, Month: time.February, Day: 15},
			want:  time.Date(2013, time.February, 15, 0, 0, 0, 0, time.UTC),
			grain: GrainDay,
		},
		{
			name:  "yearless future date stays this year",
			data:  TimeData{Form: FormDate, Month: time.March, Day: 3},
			want:  time.Date(2013, time.March, 3, 0, 0, 0, 0, time.UTC),
			grain: GrainDay,
		},
		{
			name:  "yearless past date rolls to next year",
			data:  TimeData{Form: FormDate, Month: time.January, Day: 5},
			want:  time.Date(2014, time.January, 5, 0, 0, 0, 0, time.UTC),
			grain: GrainDay,
		},
		{
			name:  "today counts as not yet past",
			data:  TimeData{Form: FormDate, Month: time.February, Day: 12},
			want:  time.Date(2013, time.February, 12, 0, 0, 0, 0, time.UTC),
			grain: GrainDay,
		},
		{
			name:  "date with clock",
			data:  TimeData{Form: FormDate, Year: 2013, Month: time.February, Day: 15, Hour: 18, Minute: 15, HasClock: true},
			want:  time.Date(2013, time.February, 15, 18, 15, 0, 0, time.UTC),
			grain: GrainMinute,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := resolveTime(t, tt.data)
			assert.True(t, tv.Instant.Equal(tt.want), "got %v want %v", tv.Instant, tt.want)
			assert.Equal(t, tt.grain, tv.Grain)
		})
	}
}

func TestConvertTimeClockIsForwardLooking(t *testing.T) {
	// 06:00 is later today.
	tv := resolveTime(t, TimeData{Form: FormClock, Hour: 6})
	assert.True(t, tv.Instant.Equal(time.Date(2013, time.February, 12, 6, 0, 0, 0, time.UTC)))
	assert.Equal(t, GrainHour, tv.Grain)

	// 03:00 already passed; it means tomorrow.
	tv = resolveTime(t, TimeData{Form: FormClock, Hour: 3})
	assert.True(t, tv.Instant.Equal(time.Date(2013, time.February, 13, 3, 0, 0, 0, time.UTC)))

	// Minutes tighten the grain.
	tv = resolveTime(t, TimeData{Form: FormClock, Hour: 18, Minute: 30})
	assert.Equal(t, GrainMinute, tv.Grain)
}

func TestConvertTimeRelative(t *testing.T) {
	tests := []struct {
		name string
		data TimeData
		want time.Time
	}{
		{
			name: "in thirty minutes",
			data: TimeData{Form: FormRelative, Direction: 1, N: 30, Grain: GrainMinute},
			want: refTime.Add(30 * time.Minute),
		},
		{
			name: "two days ago",
			data: TimeData{Form: FormRelative, Direction: -1, N: 2, Grain: GrainDay},
			want: time.Date(2013, time.February, 10, 4, 30, 0, 0, time.UTC),
		},
		{
			name: "in one month is calendar aware",
			data: TimeData{Form: FormRelative, Direction: 1, N: 1, Grain: GrainMonth},
			want: time.Date(2013, time.March, 12, 4, 30, 0, 0, time.UTC),
		},
		{
			name: "a year ago",
			data: TimeData{Form: FormRelative, Direction: -1, N: 1, Grain: GrainYear},
			want: time.Date(2012, time.February, 12, 4, 30, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := resolveTime(t, tt.data)
			assert.True(t, tv.Instant.Equal(tt.want), "got %v want %v", tv.Instant, tt.want)
		})
	}
}

func TestConvertTimeWeekday(t *testing.T) {
	// Reference is a Tuesday.
	tests := []struct {
		name string
		data TimeData
		want time.Time
	}{
		{
			name: "bare friday is the coming friday",
			data: TimeData{Form: FormWeekday, Weekday: time.Friday},
			want: time.Date(2013, time.February, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "bare tuesday means next week",
			data: TimeData{Form: FormWeekday, Weekday: time.Tuesday},
			want: time.Date(2013, time.February, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "next monday",
			data: TimeData{Form: FormWeekday, Weekday: time.Monday, Rel: RelNext},
			want: time.Date(2013, time.February, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "last friday",
			data: TimeData{Form: FormWeekday, Weekday: time.Friday, Rel: RelLast},
			want: time.Date(2013, time.February, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "this wednesday stays in the current week",
			data: TimeData{Form: FormWeekday, Weekday: time.Wednesday, Rel: RelThis},
			want: time.Date(2013, time.February, 13, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv := resolveTime(t, tt.data)
			assert.True(t, tv.Instant.Equal(tt.want), "got %v want %v", tv.Instant, tt.want)
			assert.Equal(t, GrainDay, tv.Grain)
		})
	}
}

func TestConvertTimeBareWeekdayCandidates(t *testing.T) {
	tv := resolveTime(t, TimeData{Form: FormWeekday, Weekday: time.Friday})
	require.Len(t, tv.Candidates, 2)
	assert.True(t, tv.Candidates[0].Equal(tv.Instant))
	assert.True(t, tv.Candidates[1].Equal(tv.Instant.AddDate(0, 0, 7)))
}

func TestConvertTimeDayPart(t *testing.T) {
	// Evening 18:00-00:00, still ahead of the 04:30 reference.
	tv := resolveTime(t, TimeData{Form: FormDayPart, PartStart: 18, PartEnd: 0})
	assert.True(t, tv.Instant.Equal(time.Date(2013, time.February, 12, 18, 0, 0, 0, time.UTC)))
	require.NotNil(t, tv.End)
	assert.True(t, tv.End.Equal(time.Date(2013, time.February, 13, 0, 0, 0, 0, time.UTC)))

	// Morning 04:00-12:00: the interval is still running, keep today.
	tv = resolveTime(t, TimeData{Form: FormDayPart, PartStart: 4, PartEnd: 12})
	assert.True(t, tv.Instant.Equal(time.Date(2013, time.February, 12, 4, 0, 0, 0, time.UTC)))
}

func TestConvertTimeTimezone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	rctx := engine.ResolutionContext{ReferenceTime: refTime, Timezone: ny}
	v := convertTime(TimeData{Form: FormClock, Hour: 9}, rctx)
	tv := v.(TimeValue)

	// 04:30 UTC is 23:30 the previous day in New York; 9am is the coming
	// New York morning.
	want := time.Date(2013, time.February, 12, 9, 0, 0, 0, ny)
	assert.True(t, tv.Instant.Equal(want), "got %v want %v", tv.Instant, want)
}

func TestConvertTimeRejectsForeignPayload(t *testing.T) {
	assert.Nil(t, convertTime(NumeralData{Value: 3}, refCtx()))
}
