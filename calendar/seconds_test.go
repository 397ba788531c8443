package calendar_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reugn/go-proleptic/calendar"
	"github.com/reugn/go-proleptic/internal/assert"
)

func dateTime(year calendar.Year, month, day, hour, minute, second int) calendar.DateTime {
	return calendar.DateTime{
		Date:  calendar.Date{Year: year, Month: month, Day: day},
		Clock: calendar.Clock{Hour: hour, Minute: minute, Second: second},
	}
}

func TestDateTimeToSeconds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		dt   calendar.DateTime
		tick calendar.Tick
	}{
		{dateTime(1, 1, 1, 0, 0, 0), 0},
		{dateTime(1, 1, 1, 23, 59, 59), calendar.Tick(calendar.TickDay - 1)},
		{dateTime(1, 12, 31, 23, 59, 59), calendar.Tick(calendar.TickYear - 1)},
		{dateTime(2, 1, 1, 0, 0, 0), calendar.Tick(calendar.TickYear)},
		{dateTime(5, 1, 1, 0, 0, 0), calendar.Tick(3*calendar.TickYear + calendar.TickLeapYear)},
		{dateTime(1970, 1, 1, 0, 0, 0), 62135596800},
		{dateTime(-1, 12, 31, 23, 59, 59), -1},
		{dateTime(-1, 12, 31, 0, 0, 0), calendar.Tick(-calendar.TickDay)},
		{dateTime(-1, 1, 1, 0, 0, 0), calendar.Tick(-calendar.TickYear)},
		{dateTime(-2, 12, 31, 23, 59, 59), calendar.Tick(-calendar.TickYear - 1)},
		{dateTime(-4, 1, 1, 0, 0, 0), calendar.Tick(-3*calendar.TickYear - calendar.TickLeapYear)},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.dt.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, calendar.DateTimeToSeconds(test.dt.Date, test.dt.Clock), test.tick)
			assert.Equal(t, test.dt.Tick(), test.tick)
			if diff := cmp.Diff(test.dt, calendar.SecondsToDateTime(test.tick)); diff != "" {
				t.Fatalf("SecondsToDateTime(%d) mismatch (-want +got):\n%s", test.tick, diff)
			}
		})
	}
}

func TestSecondsToYears(t *testing.T) {
	t.Parallel()
	tests := []struct {
		tick            calendar.Tick
		year            calendar.Year
		secondsIntoYear int64
	}{
		{0, 1, 0},
		{calendar.Tick(calendar.TickYear), 2, 0},
		{calendar.Tick(calendar.TickYear - 1), 1, calendar.TickYear - 1},
		{-1, -1, calendar.TickYear - 1},
		{calendar.Tick(-calendar.TickYear), -1, 0},
		{calendar.Tick(-calendar.TickYear - 1), -2, calendar.TickYear - 1},
		{calendar.Tick(-1460 * calendar.TickDay), -4, calendar.TickDay},
		{calendar.Tick(-1461 * calendar.TickDay), -4, 0},
		{calendar.Tick(-146096 * calendar.TickDay), -400, calendar.TickDay},
		{calendar.Tick(-146097 * calendar.TickDay), -400, 0},
	}

	for _, tt := range tests {
		test := tt
		t.Run(fmt.Sprint(int64(test.tick)), func(t *testing.T) {
			t.Parallel()
			year, rem := calendar.SecondsToYears(test.tick)
			assert.Equal(t, year, test.year)
			assert.Equal(t, rem, test.secondsIntoYear)
		})
	}
}

func TestSecondsToDateTimeExtremes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		tick    calendar.Tick
		display string
	}{
		{math.MaxInt64, "292277024627 CE 12-06 15:30:07"},
		{math.MinInt64 + 1, "292277024627 BCE 01-26 08:29:53"},
		{math.MinInt64, "292277024627 BCE 01-26 08:29:52"},
	}

	for _, tt := range tests {
		test := tt
		t.Run(fmt.Sprint(int64(test.tick)), func(t *testing.T) {
			t.Parallel()
			dt := test.tick.DateTime()
			assert.IsNil(t, dt.Validate())
			assert.Equal(t, dt.Date, calendar.DaysToDate(test.tick.Days()))
			assert.Equal(t, test.tick.String(), test.display)
		})
	}

	year, rem := calendar.SecondsToYears(math.MinInt64)
	assert.Equal(t, year, -292277024627)
	assert.Equal(t, rem, 25*calendar.TickDay+8*calendar.TickHour+29*calendar.TickMinute+52)
}

func TestSecondsToMonthDayClock(t *testing.T) {
	month, rem := calendar.SecondsToMonth(59*calendar.TickDay, false)
	assert.Equal(t, month, 3)
	assert.Equal(t, rem, 0)

	month, rem = calendar.SecondsToMonth(59*calendar.TickDay, true)
	assert.Equal(t, month, 2)
	assert.Equal(t, rem, 28*calendar.TickDay)

	month, rem = calendar.SecondsToMonth(calendar.TickLeapYear-1, true)
	assert.Equal(t, month, 12)
	assert.Equal(t, rem, 31*calendar.TickDay-1)

	assert.Panics(t, func() { calendar.SecondsToMonth(calendar.TickYear, false) }, calendar.ErrOutOfRange)

	day, rem := calendar.SecondsToDay(2*calendar.TickDay + 5)
	assert.Equal(t, day, 3)
	assert.Equal(t, rem, 5)

	assert.Equal(t, calendar.SecondsToClock(3661), calendar.Clock{Hour: 1, Minute: 1, Second: 1})
	assert.Equal(t, calendar.SecondsToClock(calendar.TickDay-1), calendar.Clock{Hour: 23, Minute: 59, Second: 59})
	assert.Equal(t, calendar.ClockToSeconds(calendar.Clock{Hour: 23, Minute: 59, Second: 59}),
		calendar.Tick(calendar.TickDay-1))
	assert.Equal(t, calendar.DaysToSeconds(1), 0)
}

// clockGrid samples times of day, rotated through as the round trip walks
// the calendar.
var clockGrid = []calendar.Clock{
	{Hour: 0, Minute: 0, Second: 0},
	{Hour: 0, Minute: 0, Second: 1},
	{Hour: 1, Minute: 30, Second: 59},
	{Hour: 11, Minute: 59, Second: 59},
	{Hour: 12, Minute: 0, Second: 0},
	{Hour: 17, Minute: 45, Second: 7},
	{Hour: 23, Minute: 0, Second: 30},
	{Hour: 23, Minute: 59, Second: 58},
	{Hour: 23, Minute: 59, Second: 59},
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	n := 0
	for abs := 1; abs <= 3000; abs++ {
		for _, year := range []calendar.Year{calendar.Year(abs), calendar.Year(-abs)} {
			leap := calendar.IsLeapYear(year)
			for month := 1; month <= 12; month++ {
				last := int(calendar.MonthDays(month, leap))
				for _, day := range []int{1, 2, 15, last - 1, last} {
					c := clockGrid[n%len(clockGrid)]
					n++
					want := calendar.DateTime{
						Date:  calendar.Date{Year: year, Month: month, Day: day},
						Clock: c,
					}
					got := calendar.SecondsToDateTime(want.Tick())
					if got != want {
						t.Fatalf("round trip mismatch (-want +got):\n%s", cmp.Diff(want, got))
					}
				}
			}
		}
	}
}

func TestRoundTripEveryDay(t *testing.T) {
	t.Parallel()
	for _, year := range []calendar.Year{-401, -400, -100, -5, -4, -1, 1, 4, 100, 400, 1900, 2000, 2024} {
		leap := calendar.IsLeapYear(year)
		for month := 1; month <= 12; month++ {
			for day := 1; day <= int(calendar.MonthDays(month, leap)); day++ {
				for _, c := range clockGrid {
					want := calendar.DateTime{
						Date:  calendar.Date{Year: year, Month: month, Day: day},
						Clock: c,
					}
					if got := want.Tick().DateTime(); got != want {
						t.Fatalf("round trip mismatch (-want +got):\n%s", cmp.Diff(want, got))
					}
				}
			}
		}
	}
}

func TestSecondsAgreeWithDays(t *testing.T) {
	t.Parallel()
	for days := int64(-800_000); days <= 800_000; days += 37 {
		for _, secondsIntoDay := range []int64{0, 1, calendar.TickDay - 1} {
			tick := calendar.Tick(days*calendar.TickDay + secondsIntoDay)
			assert.Equal(t, tick.Days(), days)
			assert.Equal(t, tick.DateTime().Date, calendar.DaysToDate(days))
		}
	}
}

func TestTickContinuity(t *testing.T) {
	t.Parallel()
	// consecutive ticks across the epoch differ by exactly one second
	prev := calendar.Tick(-3 * calendar.TickDay).DateTime()
	for tick := calendar.Tick(-3*calendar.TickDay + 1); tick <= calendar.Tick(3*calendar.TickDay); tick++ {
		dt := tick.DateTime()
		if dt.Tick()-prev.Tick() != 1 {
			t.Fatalf("%s does not follow %s", dt, prev)
		}
		prev = dt
	}
}
