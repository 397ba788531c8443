package schedule

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument = errors.New("illegal argument")
	ErrCronParse       = errors.New("parse cron expression")
	ErrTriggerExpired  = errors.New("trigger expired")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// cronParseError returns a cron parse error wrapping the parser error,
// which unwraps to ErrCronParse.
func cronParseError(expr string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrCronParse, expr, err)
}

// triggerExpiredError returns a trigger expired error with a custom error
// message, which unwraps to ErrTriggerExpired.
func triggerExpiredError(message string) error {
	return fmt.Errorf("%w: %s", ErrTriggerExpired, message)
}
