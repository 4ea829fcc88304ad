// Package cli implements the command-line interface for linq-ics.
//
// The cli package provides the Cobra-based root command, loads configuration,
// resolves the run's timezone once, and drives conversion of every input file
// in order. Each successful input gets a sibling .ics file; failures and empty
// menus are logged and summarized without stopping the run.
package cli
