// Package config loads the optional YAML configuration for linq-ics.
//
// The file can override the calendar product id and name, pin the timezone
// instead of using the machine's local zone, and adjust or add serving
// session windows on top of the built-in Breakfast/Lunch/Snack table.
package config
