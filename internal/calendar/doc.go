// Package calendar renders menu days as iCalendar (RFC 5545) text.
//
// It builds VEVENT blocks, the VTIMEZONE declaration derived from the local
// zone, and the folded DESCRIPTION listing a day's meals. Rendered calendars
// can be parsed back with Validate before they are written out.
package calendar
