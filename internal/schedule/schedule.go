package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Serving session labels recognized by the default table
const (
	Breakfast = "Breakfast"
	Lunch     = "Lunch"
	Snack     = "Snack"
)

// Clock is a wall-clock time of day
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// ParseClock parses "HH:MM" or "HH:MM:SS"
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return Clock{}, fmt.Errorf("invalid time of day: %q", s)
}

// Seconds returns the number of seconds since midnight
func (c Clock) Seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// Before reports whether c is earlier in the day than other
func (c Clock) Before(other Clock) bool {
	return c.Seconds() < other.Seconds()
}

// String formats the clock as the iCalendar HHMMSS time component
func (c Clock) String() string {
	return fmt.Sprintf("%02d%02d%02d", c.Hour, c.Minute, c.Second)
}

// On returns the clock time on the given date in loc
func (c Clock) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, c.Second, 0, loc)
}

// Window is the start/end pair for one serving session
type Window struct {
	Start Clock
	End   Clock
}

// Table maps serving session labels to their time windows
type Table struct {
	windows map[string]Window
}

// Default returns the fixed Breakfast/Lunch/Snack table
func Default() *Table {
	return &Table{
		windows: map[string]Window{
			Breakfast: {Start: Clock{Hour: 8}, End: Clock{Hour: 10}},
			Lunch:     {Start: Clock{Hour: 11}, End: Clock{Hour: 13}},
			Snack:     {Start: Clock{Hour: 14}, End: Clock{Hour: 16}},
		},
	}
}

// Lookup returns the window for label. ok is false for unknown labels.
// Matching is exact and case-sensitive.
func (t *Table) Lookup(label string) (w Window, ok bool) {
	w, ok = t.windows[label]
	return w, ok
}

// Set adds or replaces the window for label.
// The start must be strictly before the end.
func (t *Table) Set(label string, w Window) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("session label is empty")
	}
	if !w.Start.Before(w.End) {
		return fmt.Errorf("session %q: start %s is not before end %s", label, w.Start, w.End)
	}
	t.windows[label] = w
	return nil
}

// Len returns the number of known labels
func (t *Table) Len() int {
	return len(t.windows)
}
