package schedule

import (
	"fmt"

	"github.com/reugn/go-proleptic/calendar"
)

// Trigger computes successive fire ticks.
type Trigger interface {
	// NextFireTick returns the tick following prev at which the trigger
	// fires, or an error wrapping ErrTriggerExpired once it never will.
	NextFireTick(prev calendar.Tick) (calendar.Tick, error)

	// Description returns the description of the trigger.
	Description() string
}

// IntervalTrigger fires at calendar-correct multiples of an offset from an
// anchor tick. Fires are computed from the anchor rather than from the
// previous fire, so a monthly trigger anchored on January 31st fires on the
// last day of every shorter month and on the 31st otherwise.
//
// An IntervalTrigger holds state and must not be shared between goroutines.
type IntervalTrigger struct {
	Interval calendar.Offset

	anchor   calendar.Tick
	anchored bool
	fired    int64
	last     calendar.Tick
}

var _ Trigger = (*IntervalTrigger)(nil)

// NewIntervalTrigger returns a new IntervalTrigger. The interval must not
// be zero.
func NewIntervalTrigger(interval calendar.Offset) (*IntervalTrigger, error) {
	if interval.IsZero() {
		return nil, illegalArgumentError("zero interval")
	}
	return &IntervalTrigger{Interval: interval}, nil
}

// NextFireTick returns the next multiple of the interval after the anchor.
// A prev other than the last returned fire tick becomes the new anchor.
func (it *IntervalTrigger) NextFireTick(prev calendar.Tick) (calendar.Tick, error) {
	if !it.anchored || prev != it.last {
		it.anchor, it.anchored, it.fired = prev, true, 0
	}
	it.fired++
	it.last = it.anchor.Add(it.Interval.Mul(it.fired))
	return it.last, nil
}

// Description returns the description of the trigger.
func (it *IntervalTrigger) Description() string {
	return fmt.Sprintf("IntervalTrigger with interval %s", it.Interval)
}

// RunOnceTrigger fires once, delayed by an offset.
// It must not be shared between goroutines.
type RunOnceTrigger struct {
	Delay   calendar.Offset
	expired bool
}

var _ Trigger = (*RunOnceTrigger)(nil)

// NewRunOnceTrigger returns a new RunOnceTrigger with the given delay.
func NewRunOnceTrigger(delay calendar.Offset) *RunOnceTrigger {
	return &RunOnceTrigger{Delay: delay}
}

// NextFireTick returns prev shifted by the delay on the first call and
// ErrTriggerExpired afterwards.
func (ot *RunOnceTrigger) NextFireTick(prev calendar.Tick) (calendar.Tick, error) {
	if ot.expired {
		return 0, triggerExpiredError("RunOnceTrigger")
	}
	ot.expired = true
	return prev.Add(ot.Delay), nil
}

// Description returns the description of the trigger.
func (ot *RunOnceTrigger) Description() string {
	status := "valid"
	if ot.expired {
		status = "expired"
	}
	return fmt.Sprintf("RunOnceTrigger %s (%s)", ot.Delay, status)
}
