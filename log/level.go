package log

import (
	"fmt"
	"strings"
)

type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	QUIET
)

const colorReset = "\033[0m"

var levels = [...]struct {
	label     string
	color     string
	boldColor string
}{
	TRACE: {label: "TRACE", color: "\033[38m", boldColor: "\033[47m"},
	DEBUG: {label: "DEBUG", color: "\033[37m", boldColor: "\033[100m"},
	INFO:  {label: "INFO", color: "\033[36m", boldColor: "\033[106m"},
	WARN:  {label: "WARN", color: "\033[33m", boldColor: "\u001B[30m\033[103m"},
	ERROR: {label: "ERROR", color: "\033[31m", boldColor: "\033[101m"},
	FATAL: {label: "FATAL", color: "\033[41m", boldColor: "\033[101m"},
	QUIET: {label: "QUIET", color: colorReset, boldColor: ""},
}

func (l Level) valid() bool {
	return l >= TRACE && l <= QUIET
}

func (l Level) String() string {
	if !l.valid() {
		return levels[QUIET].label
	}

	return levels[l].label
}

func (l Level) Color() string {
	if !l.valid() {
		return levels[QUIET].color
	}

	return levels[l].color
}

func (l Level) BoldColor() string {
	if !l.valid() {
		return levels[QUIET].boldColor
	}

	return levels[l].boldColor
}

// FromString returns QUIET for unknown labels
func FromString(s string) Level {
	for lvl, v := range levels {
		if strings.EqualFold(v.label, s) {
			return Level(lvl)
		}
	}

	return QUIET
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText makes Level usable with flag.TextVar
func (l *Level) UnmarshalText(text []byte) error {
	lvl := FromString(string(text))
	if lvl == QUIET && !strings.EqualFold(string(text), levels[QUIET].label) {
		return fmt.Errorf("unknown log level %q", text)
	}
	*l = lvl

	return nil
}
