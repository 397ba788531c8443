package schedule

import (
	"errors"

	"github.com/reugn/go-proleptic/calendar"
	"github.com/reugn/go-proleptic/logger"
)

// Series returns up to n successive fire ticks of the trigger following
// start. It stops early without an error once the trigger expires.
func Series(trigger Trigger, start calendar.Tick, n int) ([]calendar.Tick, error) {
	if n < 0 {
		return nil, illegalArgumentError("negative series length")
	}

	ticks := make([]calendar.Tick, 0, n)
	prev := start
	for len(ticks) < n {
		next, err := trigger.NextFireTick(prev)
		if err != nil {
			if errors.Is(err, ErrTriggerExpired) {
				logger.Debug("Trigger expired", "trigger", trigger.Description(),
					"fired", len(ticks))
				break
			}
			return ticks, err
		}
		logger.Trace("Trigger fired", "trigger", trigger.Description(),
			"tick", int64(next), "at", next)
		ticks = append(ticks, next)
		prev = next
	}

	return ticks, nil
}
