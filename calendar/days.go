package calendar

// A day-count is the signed number of days from 0001-01-01 CE, which is day 0.
// Day -1 is 0001-12-31 BCE and day -365 is 0001-01-01 BCE, so the day-count
// of a tick is floor(tick / TickDay).

// YearsToDays returns the day-count of the first day of a CE year, or the
// negated number of days from the first day of a BCE year to the epoch.
// It panics if year is zero.
func YearsToDays(year Year) int64 {
	mustYear(year)
	a := year.abs()
	if year.CE() {
		a--
	}
	return year.sign() * (365*a + a/4 - a/100 + a/400)
}

// MonthsToDays returns the number of days from the first day of the year to
// the first day of month.
func MonthsToDays(month int, leap bool) int64 {
	mustMonth(month, 1, 12)
	return MonthCumulativeDays(month, leap)
}

// DateToDays returns the day-count of the given date.
// The year must not be zero and the month must be within [1, 12].
func DateToDays(year Year, month, day int) int64 {
	return YearsToDays(year) + MonthsToDays(month, IsLeapYear(year)) + int64(day) - 1
}

// DaysToYears returns the year containing the day-count and the 1-based day
// of that year. For CE the day of year counts forward from January 1st,
// for BCE it counts backward from December 31st.
func DaysToYears(days int64) (Year, int64) {
	if days >= 0 {
		years, rem := splitYears(days, 1)
		return Year(years + 1), rem + 1
	}
	// -1 is the last day of year -1, the backward zero-based index is
	// -(days+1), which cannot overflow at math.MinInt64
	years, rem := splitYears(-(days + 1), 1)
	return Year(-(years + 1)), rem + 1
}

// splitYears decomposes a zero-based offset n, measured in units of which
// perDay make up a day, into the number of whole years preceding it and the
// offset within its own year. Years follow the CE leap pattern counted from
// year 1, which BCE years mirror.
func splitYears(n, perDay int64) (years, rem int64) {
	y400 := n / (DaysPer400Years * perDay)
	n -= y400 * DaysPer400Years * perDay

	// the last day of a 400-year cycle belongs to its 4th century
	y100 := n / (DaysPer100Years * perDay)
	if y100 == 4 {
		y100 = 3
	}
	n -= y100 * DaysPer100Years * perDay

	y4 := n / (DaysPer4Years * perDay)
	n -= y4 * DaysPer4Years * perDay

	// the leap day of a 4-year block belongs to its 4th year
	y1 := n / (365 * perDay)
	if y1 == 4 {
		y1 = 3
	}
	n -= y1 * 365 * perDay

	return 400*y400 + 100*y100 + 4*y4 + y1, n
}

// DaysToMonths returns the month and the day of month of the 1-based
// dayOfYear. dayOfYear must be at least 1, which DaysToYears guarantees.
func DaysToMonths(dayOfYear int64, leap bool) (month, day int) {
	if dayOfYear < 1 || dayOfYear > YearDays(leap) {
		panic(invalidDayError("day of year out of range"))
	}
	for m := 1; m <= 12; m++ {
		if dayOfYear-1 < MonthCumulativeDays(m+1, leap) {
			return m, int(dayOfYear - MonthCumulativeDays(m, leap))
		}
	}
	// unreachable, month 13 of the cumulative table covers the whole year
	return 12, int(dayOfYear - MonthCumulativeDays(12, leap))
}

// DaysToDate returns the civil date of the day-count.
func DaysToDate(days int64) Date {
	year, rem := DaysToYears(days)
	leap := IsLeapYear(year)
	if !year.CE() {
		rem = backwardDayOfYear(rem, leap)
	}
	month, day := DaysToMonths(rem, leap)
	return Date{Year: year, Month: month, Day: day}
}

// backwardDayOfYear converts a 1-based day of year counted backward from
// December 31st into one counted forward from January 1st.
func backwardDayOfYear(rem int64, leap bool) int64 {
	return YearDays(leap) - (rem - 1)
}
