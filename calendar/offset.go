package calendar

// AddOffset returns the tick shifted by the calendar offset.
//
// Days, hours, minutes and seconds do not depend on the calendar and are
// applied first as a flat number of seconds. Months are then normalized into
// [1, 12], carrying into the years, and the year is moved without ever
// landing on year zero. A day of month that does not exist in the target
// month is clamped to the last day of that month; it never rolls over.
// AddOffset does not check for int64 overflow.
func AddOffset(tick Tick, o Offset) Tick {
	tick += Tick(o.flatSeconds())
	if o.Years == 0 && o.Months == 0 {
		return tick
	}

	date, secondsIntoDay := secondsToDate(tick)

	month, carry := normalizeMonth(int64(date.Month) + o.Months)
	year := shiftYear(date.Year, o.Years+carry)

	day := int64(date.Day)
	if last := MonthDays(month, IsLeapYear(year)); day > last {
		day = last
	}

	return DateToSeconds(Date{Year: year, Month: month, Day: int(day)}) + Tick(secondsIntoDay)
}

// Add returns the tick shifted by the calendar offset, see AddOffset.
func (t Tick) Add(o Offset) Tick {
	return AddOffset(t, o)
}

// normalizeMonth folds an unbounded month number into [1, 12] and returns
// the number of years carried. Month 0 is December of the previous year.
func normalizeMonth(month int64) (int, int64) {
	if month > 0 {
		return int((month-1)%12 + 1), (month - 1) / 12
	}
	monthYear := -month/12 + 1
	return int(monthYear*12 + month), -monthYear
}

// shiftYear moves year by delta, skipping year zero when the BCE/CE
// boundary is crossed.
func shiftYear(year Year, delta int64) Year {
	y := int64(year)
	switch {
	case 0 < y && y <= -delta:
		return Year(y + delta - 1)
	case -delta <= y && y < 0:
		return Year(y + delta + 1)
	default:
		return Year(y + delta)
	}
}
