package calendar

import (
	"errors"
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"
)

// ErrEventCount is returned when a parsed calendar does not hold the expected events
var ErrEventCount = errors.New("unexpected event count")

// Validate parses a rendered calendar back and checks that it holds want
// events, each carrying a UID, DTSTART and DTEND.
func Validate(ics string, want int) error {
	cal, err := ical.ParseCalendar(strings.NewReader(ics))
	if err != nil {
		return fmt.Errorf("parsing calendar: %w", err)
	}

	events := cal.Events()
	if len(events) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrEventCount, len(events), want)
	}

	for i, evt := range events {
		for _, prop := range []ical.ComponentProperty{
			ical.ComponentPropertyUniqueId,
			ical.ComponentPropertyDtStart,
			ical.ComponentPropertyDtEnd,
		} {
			if p := evt.GetProperty(prop); p == nil || p.Value == "" {
				return fmt.Errorf("event %d: missing %s", i, prop)
			}
		}
	}

	return nil
}
