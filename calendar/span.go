package calendar

import "fmt"

// Span is a half-open interval of ticks [Since, Until).
type Span struct {
	Since Tick
	Until Tick
}

// NewSpan returns a new Span. It fails with ErrIllegalArgument if since
// is after until.
func NewSpan(since, until Tick) (Span, error) {
	if since > until {
		return Span{}, illegalArgumentError(fmt.Sprintf("since %d is after until %d", since, until))
	}
	return Span{Since: since, Until: until}, nil
}

// YearSpan returns the span covering the whole civil year.
func YearSpan(year Year) (Span, error) {
	if year == 0 {
		return Span{}, invalidYearError("there is no year zero")
	}
	since := YearsToSeconds(year)
	return Span{Since: since, Until: since + Tick(YearTicks(IsLeapYear(year)))}, nil
}

// MonthSpan returns the span covering the given month of the civil year.
func MonthSpan(year Year, month int) (Span, error) {
	if year == 0 {
		return Span{}, invalidYearError("there is no year zero")
	}
	if month < 1 || month > 12 {
		return Span{}, invalidMonthError(fmt.Sprintf("%d", month))
	}
	since := DateToSeconds(Date{Year: year, Month: month, Day: 1})
	length := MonthDays(month, IsLeapYear(year)) * TickDay
	return Span{Since: since, Until: since + Tick(length)}, nil
}

// DaySpan returns the span covering the given date.
func DaySpan(d Date) (Span, error) {
	if err := d.Validate(); err != nil {
		return Span{}, err
	}
	since := DateToSeconds(d)
	return Span{Since: since, Until: since + Tick(TickDay)}, nil
}

// Contains reports whether the tick falls within the span.
func (s Span) Contains(t Tick) bool {
	return s.Since <= t && t < s.Until
}

// Seconds returns the length of the span in seconds.
func (s Span) Seconds() int64 {
	return int64(s.Until - s.Since)
}

func (s Span) String() string {
	return fmt.Sprintf("[%s, %s)", s.Since, s.Until)
}
