// Package menu provides the school menu document model and its decoder.
//
// A menu export is a JSON document of serving sessions, each holding menu
// plans, dated days and the meals served on them. Exports saved as web pages
// are accepted too: the JSON is lifted out of the page's embedded script
// element before decoding.
package menu
