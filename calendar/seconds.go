package calendar

// Tick is the signed number of seconds elapsed since the epoch
// 0001-01-01 00:00:00 CE. Negative ticks count backward through the BCE
// years: tick -1 is 0001-12-31 23:59:59 BCE.
type Tick int64

// YearsToSeconds returns the tick of the first second of year.
func YearsToSeconds(year Year) Tick {
	return Tick(YearsToDays(year) * TickDay)
}

// MonthsToSeconds returns the ticks from the start of the year to the start
// of month.
func MonthsToSeconds(month int, leap bool) Tick {
	return Tick(MonthsToDays(month, leap) * TickDay)
}

// DaysToSeconds returns the ticks from the start of the month to the start
// of the 1-based day.
func DaysToSeconds(day int) Tick {
	return Tick(int64(day-1) * TickDay)
}

// ClockToSeconds returns the ticks from midnight to the clock time.
func ClockToSeconds(c Clock) Tick {
	return Tick(int64(c.Hour)*TickHour + int64(c.Minute)*TickMinute + int64(c.Second))
}

// DateToSeconds returns the tick of midnight at the start of the date.
func DateToSeconds(d Date) Tick {
	return YearsToSeconds(d.Year) + MonthsToSeconds(d.Month, IsLeapYear(d.Year)) + DaysToSeconds(d.Day)
}

// DateTimeToSeconds returns the tick of the given date and clock.
// The year must not be zero and the month must be within [1, 12].
func DateTimeToSeconds(d Date, c Clock) Tick {
	return DateToSeconds(d) + ClockToSeconds(c)
}

// SecondsToYears returns the year containing the tick and the number of
// seconds elapsed since the start of that year.
func SecondsToYears(tick Tick) (Year, int64) {
	if tick >= 0 {
		years, rem := splitYears(int64(tick), TickDay)
		return Year(years + 1), rem
	}
	// -(tick+1) is the zero-based backward index of the second; unlike -tick
	// it cannot overflow at math.MinInt64
	years, rem := splitYears(-(int64(tick) + 1), TickDay)
	return backwardYear(years+1, rem+1)
}

// backwardYear resolves a BCE tick, decomposed backward from the epoch into
// the 1-based count of years it reaches into and the seconds still missing
// to its start, into the year and the seconds elapsed since its start.
// A remainder of zero lies exactly on a year boundary, which is the first
// second of the previous whole year rather than of the one reached into;
// a remainder of a whole year is the same boundary seen from the other side.
func backwardYear(years, rem int64) (Year, int64) {
	if rem == 0 {
		return Year(-years + 1), 0
	}
	year := Year(-years)
	return year, YearTicks(IsLeapYear(year)) - rem
}

// SecondsToMonth returns the month containing the given seconds of the year
// and the number of seconds elapsed since the start of that month.
func SecondsToMonth(secondsIntoYear int64, leap bool) (int, int64) {
	if secondsIntoYear < 0 || secondsIntoYear >= YearTicks(leap) {
		panic(outOfRangeError("seconds of year"))
	}
	for m := 1; m <= 12; m++ {
		if secondsIntoYear < MonthCumulativeDays(m+1, leap)*TickDay {
			return m, secondsIntoYear - MonthCumulativeDays(m, leap)*TickDay
		}
	}
	return 12, secondsIntoYear - MonthCumulativeDays(12, leap)*TickDay
}

// SecondsToDay returns the 1-based day containing the given seconds of the
// month and the number of seconds elapsed since midnight.
func SecondsToDay(secondsIntoMonth int64) (int, int64) {
	return int(secondsIntoMonth/TickDay) + 1, secondsIntoMonth % TickDay
}

// SecondsToClock returns the clock time of the given seconds since midnight.
func SecondsToClock(secondsIntoDay int64) Clock {
	return Clock{
		Hour:   int(secondsIntoDay / TickHour),
		Minute: int(secondsIntoDay % TickHour / TickMinute),
		Second: int(secondsIntoDay % TickMinute),
	}
}

// SecondsToDateTime returns the civil date time of the tick.
func SecondsToDateTime(tick Tick) DateTime {
	date, secondsIntoDay := secondsToDate(tick)
	return DateTime{Date: date, Clock: SecondsToClock(secondsIntoDay)}
}

// secondsToDate returns the date of the tick and the seconds since midnight.
func secondsToDate(tick Tick) (Date, int64) {
	year, rem := SecondsToYears(tick)
	month, rem := SecondsToMonth(rem, IsLeapYear(year))
	day, rem := SecondsToDay(rem)
	return Date{Year: year, Month: month, Day: day}, rem
}

// DateTime returns the civil date time of the tick.
func (t Tick) DateTime() DateTime {
	return SecondsToDateTime(t)
}

// Days returns the day-count of the tick.
func (t Tick) Days() int64 {
	days := int64(t) / TickDay
	if int64(t)%TickDay < 0 {
		days--
	}
	return days
}
