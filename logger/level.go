package logger

import (
	"fmt"
	"strings"
)

// A Level is the importance or severity of a log event.
// The higher the level, the more important or severe the event.
type Level int

// Names for common log levels.
const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelOff   Level = 12
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelOff:   "OFF",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel returns the Level with the given case-insensitive name.
func ParseLevel(name string) (Level, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for level, levelName := range levelNames {
		if levelName == upper {
			return level, nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level: %q", name)
}
