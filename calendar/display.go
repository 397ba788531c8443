package calendar

import (
	"fmt"
	"strings"
)

// DisplayFlags selects the parts of a tick rendered by TickToDisplayString.
type DisplayFlags uint8

// Display flags. The year and era are always rendered.
const (
	DisplayDate DisplayFlags = 1 << iota
	DisplayTime

	DisplayYear DisplayFlags = 0
)

// Era suffixes.
const (
	eraCE  = "CE"
	eraBCE = "BCE"
)

// TickToDisplayString renders the tick as "<year> CE" or "<year> BCE",
// with the year shown as a positive number. DisplayDate appends the month
// and day as " MM-DD", DisplayTime appends the clock as " HH:MM:SS".
func TickToDisplayString(tick Tick, flags DisplayFlags) string {
	dt := SecondsToDateTime(tick)

	var b strings.Builder
	era := eraCE
	if !dt.Year.CE() {
		era = eraBCE
	}
	fmt.Fprintf(&b, "%d %s", dt.Year.abs(), era)

	if flags&DisplayDate != 0 {
		fmt.Fprintf(&b, " %02d-%02d", dt.Month, dt.Day)
	}
	if flags&DisplayTime != 0 {
		b.WriteString(" ")
		b.WriteString(dt.Clock.String())
	}

	return b.String()
}

func (t Tick) String() string {
	return TickToDisplayString(t, DisplayDate|DisplayTime)
}
