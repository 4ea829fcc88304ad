package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/pfrederiksen/linq-ics/internal/calendar"
	"github.com/pfrederiksen/linq-ics/internal/logger"
	"github.com/pfrederiksen/linq-ics/internal/menu"
	"github.com/pfrederiksen/linq-ics/internal/schedule"
)

// ErrNoEvents is returned when a document yields no calendar events
var ErrNoEvents = errors.New("no events")

// Options controls one conversion run
type Options struct {
	// Schedule maps session labels to windows. Nil means schedule.Default().
	Schedule *schedule.Table
	// Zone qualifies event times. Nil produces floating times and no VTIMEZONE.
	Zone *calendar.Zone
	// ProductID and CalendarName are passed through to the calendar header
	ProductID    string
	CalendarName string
	// Now supplies the DTSTAMP instant. Nil means time.Now.
	Now func() time.Time
}

// Result is a converted document
type Result struct {
	ICS             string
	Events          int
	SkippedDays     int
	SkippedSessions int
}

// Process converts a menu document into a calendar. source names the input
// and qualifies every event UID. Returns ErrNoEvents when nothing was
// produced.
func Process(doc *menu.Document, source string, opts Options) (*Result, error) {
	table := opts.Schedule
	if table == nil {
		table = schedule.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	stamp := now().UTC()
	qualifier := filepath.Base(source)
	result := &Result{}
	events := make([]calendar.Event, 0)

	for _, session := range doc.Sessions {
		window, ok := table.Lookup(session.ServingSession)
		if !ok {
			result.SkippedSessions++
			logger.IncrCounter("sessions.skipped")
			logger.Debug("Skipping unknown serving session", logger.Fields{
				"file":    qualifier,
				"session": session.ServingSession,
			})
			continue
		}

		for _, plan := range session.Plans {
			for _, day := range plan.Days {
				date, err := day.ParseDate()
				if err != nil {
					result.SkippedDays++
					logger.IncrCounter("days.skipped")
					logger.Warn("Skipping invalid date", logger.Fields{
						"file":    qualifier,
						"session": session.ServingSession,
						"plan":    string(plan.ID),
						"date":    day.Date,
					})
					continue
				}

				events = append(events, calendar.Event{
					UID:         eventUID(date, session.ServingSession, string(plan.ID), qualifier),
					Stamp:       stamp,
					Start:       window.Start.On(date, time.UTC),
					End:         window.End.On(date, time.UTC),
					Summary:     session.ServingSession,
					Description: calendar.FormatDescription(day.Meals),
				})
			}
		}
	}

	if len(events) == 0 {
		return result, ErrNoEvents
	}

	result.Events = len(events)
	result.ICS = calendar.GenerateBulkICS(events, calendar.Options{
		ProductID: opts.ProductID,
		Name:      opts.CalendarName,
		Zone:      opts.Zone,
	})
	logger.AddCounter("events.generated", int64(len(events)))

	return result, nil
}

// ProcessFile loads the menu at path and converts it
func ProcessFile(path string, opts Options) (*Result, error) {
	doc, err := menu.Load(path)
	if err != nil {
		return nil, err
	}
	return Process(doc, path, opts)
}

// eventUID identifies one session on one day of one plan from one file
func eventUID(date time.Time, session, planID, qualifier string) string {
	return fmt.Sprintf("%s-%s-%s@%s", date.Format("20060102"), session, planID, qualifier)
}
