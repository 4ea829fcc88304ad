// Package schedule holds the serving-session time table and meal classification.
//
// Each serving session label (Breakfast, Lunch, Snack) maps to a fixed
// wall-clock window. Meals within a day are classified as Daily Special, Milk
// or other, which decides where they appear in an event description.
package schedule
