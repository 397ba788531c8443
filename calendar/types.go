package calendar

import "fmt"

// Year is a civil year. Positive values are years of the Common Era counted
// from 1, negative values are years before the Common Era counted from -1.
// There is no year zero: year -1 is immediately followed by year 1.
type Year int64

// NewYear returns a new Year, rejecting zero with ErrInvalidYear.
func NewYear(year int64) (Year, error) {
	if year == 0 {
		return 0, invalidYearError("there is no year zero")
	}
	return Year(year), nil
}

// CE reports whether the year belongs to the Common Era.
func (y Year) CE() bool {
	return y > 0
}

func (y Year) abs() int64 {
	if y < 0 {
		return -int64(y)
	}
	return int64(y)
}

func (y Year) sign() int64 {
	if y < 0 {
		return -1
	}
	return 1
}

// Date is a civil date.
type Date struct {
	Year  Year
	Month int
	Day   int
}

// NewDate returns a validated Date.
func NewDate(year Year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Validate checks the year is not zero, the month is within [1, 12] and
// the day exists in that month of that year.
func (d Date) Validate() error {
	if d.Year == 0 {
		return invalidYearError("there is no year zero")
	}
	if d.Month < 1 || d.Month > 12 {
		return invalidMonthError(fmt.Sprintf("%d", d.Month))
	}
	last := MonthDays(d.Month, IsLeapYear(d.Year))
	if d.Day < 1 || int64(d.Day) > last {
		return invalidDayError(fmt.Sprintf("%d not in [1, %d] for %d-%02d",
			d.Day, last, d.Year, d.Month))
	}
	return nil
}

func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Clock is a time of day.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// Validate checks every field of the clock is within range.
func (c Clock) Validate() error {
	switch {
	case c.Hour < 0 || c.Hour > 23:
		return invalidClockError(fmt.Sprintf("hour %d", c.Hour))
	case c.Minute < 0 || c.Minute > 59:
		return invalidClockError(fmt.Sprintf("minute %d", c.Minute))
	case c.Second < 0 || c.Second > 59:
		return invalidClockError(fmt.Sprintf("second %d", c.Second))
	}
	return nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// DateTime is the canonical human-facing representation of a tick.
type DateTime struct {
	Date
	Clock
}

// NewDateTime returns a validated DateTime.
func NewDateTime(year Year, month, day, hour, minute, second int) (DateTime, error) {
	dt := DateTime{
		Date:  Date{Year: year, Month: month, Day: day},
		Clock: Clock{Hour: hour, Minute: minute, Second: second},
	}
	if err := dt.Validate(); err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

// Validate validates both the date and the clock.
func (dt DateTime) Validate() error {
	if err := dt.Date.Validate(); err != nil {
		return err
	}
	return dt.Clock.Validate()
}

// Tick returns the tick of the date time.
func (dt DateTime) Tick() Tick {
	return DateTimeToSeconds(dt.Date, dt.Clock)
}

func (dt DateTime) String() string {
	return dt.Date.String() + " " + dt.Clock.String()
}

// Offset is a set of independent, unnormalized calendar deltas.
type Offset struct {
	Years   int64
	Months  int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// IsZero reports whether every delta of the offset is zero.
func (o Offset) IsZero() bool {
	return o == Offset{}
}

// Mul returns the offset with every delta multiplied by n.
func (o Offset) Mul(n int64) Offset {
	return Offset{
		Years:   o.Years * n,
		Months:  o.Months * n,
		Days:    o.Days * n,
		Hours:   o.Hours * n,
		Minutes: o.Minutes * n,
		Seconds: o.Seconds * n,
	}
}

// flatSeconds returns the calendar-independent part of the offset in ticks.
func (o Offset) flatSeconds() int64 {
	return o.Days*TickDay + o.Hours*TickHour + o.Minutes*TickMinute + o.Seconds*TickSecond
}

func (o Offset) String() string {
	return fmt.Sprintf("%+dY%+dM%+dD%+dh%+dm%+ds",
		o.Years, o.Months, o.Days, o.Hours, o.Minutes, o.Seconds)
}
