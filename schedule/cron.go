package schedule

import (
	"fmt"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/reugn/go-proleptic/calendar"
)

// CronTrigger fires on the instants matched by a cron expression.
//
// Expressions are parsed by cronexpr: 5 fields (minute precision), 6 fields
// (a trailing year) or 7 fields (a leading second and a trailing year), and
// the @yearly, @monthly, @weekly, @daily and @hourly shorthands. Matching
// goes through time.Time, so only CE ticks are supported, and the years
// cronexpr knows about are 1970 through 2099.
type CronTrigger struct {
	expression string
	expr       *cronexpr.Expression
}

var _ Trigger = (*CronTrigger)(nil)

// NewCronTrigger returns a new CronTrigger for the given expression.
func NewCronTrigger(expression string) (*CronTrigger, error) {
	expr, err := cronexpr.Parse(expression)
	if err != nil {
		return nil, cronParseError(expression, err)
	}
	return &CronTrigger{
		expression: expression,
		expr:       expr,
	}, nil
}

// NextFireTick returns the first tick strictly after prev matching the
// expression. A BCE prev fails with calendar.ErrOutOfRange.
func (ct *CronTrigger) NextFireTick(prev calendar.Tick) (calendar.Tick, error) {
	from, err := prev.Time()
	if err != nil {
		return 0, err
	}
	if from.IsZero() {
		// cronexpr reads the zero time.Time, which is tick 0, as unset
		from = from.Add(time.Nanosecond)
	}
	next := ct.expr.Next(from)
	if next.IsZero() {
		return 0, triggerExpiredError(fmt.Sprintf("no match for %q after %s", ct.expression, prev))
	}
	return calendar.FromTime(next)
}

// Description returns the description of the trigger.
func (ct *CronTrigger) Description() string {
	return fmt.Sprintf("CronTrigger %s", ct.expression)
}
