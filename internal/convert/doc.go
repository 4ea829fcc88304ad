// Package convert turns menu documents into calendars.
//
// Process walks sessions, plans and days, skipping sessions whose label has
// no serving window and days whose date does not parse, and emits one event
// per remaining session-day. Documents that produce no events yield
// ErrNoEvents rather than an empty calendar.
package convert
