package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DefaultProductID identifies this tool in the PRODID header
const DefaultProductID = "-//LINQ Menus//linq-ics//EN"

const (
	// icsUTCLayout is used for DTSTAMP
	icsUTCLayout = "20060102T150405Z"
	// icsLocalLayout is used for floating and TZID-qualified times
	icsLocalLayout = "20060102T150405"
)

// Event is one serving session on one day
type Event struct {
	UID     string
	Stamp   time.Time
	Start   time.Time
	End     time.Time
	Summary string
	// Description must already be folded and escaped, see FormatDescription
	Description string
}

// Options controls calendar-level output
type Options struct {
	ProductID string
	// Name is written as X-WR-CALNAME when non-empty
	Name string
	// Zone, when set, adds a VTIMEZONE block and qualifies every
	// DTSTART/DTEND with its TZID. A nil zone yields floating times.
	Zone *Zone
}

// GenerateEvent renders a single VEVENT block.
// tzid may be empty for floating times.
func GenerateEvent(evt Event, tzid string) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s\r\n", escapeICS(evt.UID)))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(evt.Stamp)))
	ics.WriteString(fmt.Sprintf("DTSTART%s\r\n", formatLocalProp(evt.Start, tzid)))
	ics.WriteString(fmt.Sprintf("DTEND%s\r\n", formatLocalProp(evt.End, tzid)))
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(evt.Summary)))
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", evt.Description))
	ics.WriteString("END:VEVENT\r\n")

	return ics.String()
}

// GenerateBulkICS renders a full VCALENDAR holding all events.
// Returns an empty string when there are no events.
func GenerateBulkICS(events []Event, opts Options) string {
	if len(events) == 0 {
		return ""
	}

	productID := opts.ProductID
	if productID == "" {
		productID = DefaultProductID
	}

	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", productID))
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if opts.Name != "" {
		ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(opts.Name)))
	}

	tzid := ""
	if opts.Zone != nil {
		tzid = opts.Zone.ID
		ics.WriteString(fmt.Sprintf("X-WR-TIMEZONE:%s\r\n", tzid))
		ics.WriteString(opts.Zone.Block())
	}

	for _, evt := range events {
		ics.WriteString(GenerateEvent(evt, tzid))
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format(icsUTCLayout)
}

// formatLocalProp renders the parameter and value part of a date-time
// property using the wall clock of t, e.g. ";TZID=Europe/Oslo:20240304T110000"
func formatLocalProp(t time.Time, tzid string) string {
	value := t.Format(icsLocalLayout)
	if tzid == "" {
		return ":" + value
	}
	return fmt.Sprintf(";TZID=%s:%s", tzid, value)
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
