package calendar

// Ticks per calendar unit.
const (
	TickSecond   int64 = 1
	TickMinute         = 60 * TickSecond
	TickHour           = 60 * TickMinute
	TickDay            = 24 * TickHour
	TickYear           = 365 * TickDay
	TickLeapYear       = 366 * TickDay
)

// Days in a given period of years, 365*N + N/4 - N/100 + N/400.
const (
	DaysPer4Years   int64 = 1461
	DaysPer100Years int64 = 36524
	DaysPer400Years int64 = 146097
)

// monthDays holds the month lengths for non-leap and leap years.
// Row 0 is a guard equal to zero, row 13 holds the length of the whole year.
var monthDays = [2][14]int64{
	{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 365},
	{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 366},
}

// cumulativeDays[leap][m] counts the days of the year before month m begins.
// Row 13 counts the days before January of the next year.
var cumulativeDays = [2][14]int64{
	{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
	{0, 0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
}

func leapIndex(leap bool) int {
	if leap {
		return 1
	}
	return 0
}

// IsLeapYear reports whether year is a leap year. BCE years mirror CE years,
// so the Gregorian rule is applied to the absolute value.
// It panics if year is zero.
func IsLeapYear(year Year) bool {
	mustYear(year)
	y := year.abs()
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// MonthDays returns the number of days in month for a leap or common year.
// Month 0 yields 0 and month 13 yields the length of the year.
func MonthDays(month int, leap bool) int64 {
	mustMonth(month, 0, 13)
	return monthDays[leapIndex(leap)][month]
}

// MonthCumulativeDays returns the number of days of the year that precede
// the first day of month. Month 13 yields the length of the year.
func MonthCumulativeDays(month int, leap bool) int64 {
	mustMonth(month, 0, 13)
	return cumulativeDays[leapIndex(leap)][month]
}

// YearDays returns the number of days in a leap or common year.
func YearDays(leap bool) int64 {
	return monthDays[leapIndex(leap)][13]
}

// YearTicks returns the number of ticks in a leap or common year.
func YearTicks(leap bool) int64 {
	if leap {
		return TickLeapYear
	}
	return TickYear
}
