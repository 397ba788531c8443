package calendar_test

import (
	"testing"

	"github.com/reugn/go-proleptic/calendar"
	"github.com/reugn/go-proleptic/internal/assert"
)

func TestTickToDisplayString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		tick     calendar.Tick
		flags    calendar.DisplayFlags
		expected string
	}{
		{"epoch year", 0, calendar.DisplayYear, "1 CE"},
		{"epoch date", 0, calendar.DisplayDate, "1 CE 01-01"},
		{"epoch full", 0, calendar.DisplayDate | calendar.DisplayTime, "1 CE 01-01 00:00:00"},
		{"last BCE second", -1, calendar.DisplayDate | calendar.DisplayTime, "1 BCE 12-31 23:59:59"},
		{"time only", -1, calendar.DisplayTime, "1 BCE 23:59:59"},
		{"unix epoch", 62135596800, calendar.DisplayDate, "1970 CE 01-01"},
		{"BCE year", dateTime(-200, 3, 1, 0, 0, 0).Tick(), calendar.DisplayYear, "200 BCE"},
		{"BCE date", dateTime(-200, 3, 1, 0, 0, 0).Tick(), calendar.DisplayDate, "200 BCE 03-01"},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, calendar.TickToDisplayString(test.tick, test.flags), test.expected)
		})
	}
}

func TestTickString(t *testing.T) {
	tick := dateTime(-44, 3, 15, 12, 0, 0).Tick()
	assert.Equal(t, tick.String(), "44 BCE 03-15 12:00:00")
	assert.Equal(t, dateTime(-44, 3, 15, 12, 0, 0).String(), "-44-03-15 12:00:00")
}
