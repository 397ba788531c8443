package calendar

import (
	"fmt"
	"time"
)

// FromTime returns the tick of the UTC instant t, truncated to the second.
// Only CE instants are accepted: the time package numbers years
// astronomically, with a year zero and a different leap pattern before it.
func FromTime(t time.Time) (Tick, error) {
	t = t.UTC()
	if t.Year() < 1 {
		return 0, outOfRangeError(fmt.Sprintf("year %d precedes the Common Era", t.Year()))
	}

	return DateTimeToSeconds(
		Date{Year: Year(t.Year()), Month: int(t.Month()), Day: t.Day()},
		Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()},
	), nil
}

// Time returns the tick as a UTC time.Time. BCE ticks are rejected with
// ErrOutOfRange, see FromTime.
func (t Tick) Time() (time.Time, error) {
	if t < 0 {
		return time.Time{}, outOfRangeError(fmt.Sprintf("tick %d precedes the Common Era", t))
	}
	dt := SecondsToDateTime(t)
	return time.Date(int(dt.Year), time.Month(dt.Month), dt.Day,
		dt.Hour, dt.Minute, dt.Second, 0, time.UTC), nil
}
