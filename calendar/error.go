package calendar

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidYear     = errors.New("invalid year")
	ErrInvalidMonth    = errors.New("invalid month")
	ErrInvalidDay      = errors.New("invalid day")
	ErrInvalidClock    = errors.New("invalid clock")
	ErrOutOfRange      = errors.New("out of range")
	ErrIllegalArgument = errors.New("illegal argument")
)

// invalidYearError returns an invalid year error with a custom
// error message, which unwraps to ErrInvalidYear.
func invalidYearError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidYear, message)
}

// invalidMonthError returns an invalid month error with a custom
// error message, which unwraps to ErrInvalidMonth.
func invalidMonthError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidMonth, message)
}

// invalidDayError returns an invalid day error with a custom
// error message, which unwraps to ErrInvalidDay.
func invalidDayError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidDay, message)
}

// invalidClockError returns an invalid clock error with a custom
// error message, which unwraps to ErrInvalidClock.
func invalidClockError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidClock, message)
}

// outOfRangeError returns an out of range error with a custom
// error message, which unwraps to ErrOutOfRange.
func outOfRangeError(message string) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, message)
}

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// mustYear panics if year is zero. It guards the raw arithmetic, where a
// zero year is a caller bug rather than bad input.
func mustYear(year Year) {
	if year == 0 {
		panic(invalidYearError("there is no year zero"))
	}
}

// mustMonth panics if month is outside of [lo, hi].
func mustMonth(month, lo, hi int) {
	if month < lo || month > hi {
		panic(invalidMonthError(fmt.Sprintf("%d not in [%d, %d]", month, lo, hi)))
	}
}
