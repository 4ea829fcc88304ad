package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfrederiksen/linq-ics/internal/calendar"
	"github.com/pfrederiksen/linq-ics/internal/convert"
	"github.com/pfrederiksen/linq-ics/internal/logger"
)

// FileStatus is the outcome for one input file
type FileStatus string

const (
	StatusWritten  FileStatus = "written"
	StatusNoEvents FileStatus = "no_events"
	StatusFailed   FileStatus = "failed"
)

// FileResult records what happened to one input
type FileResult struct {
	Input  string     `json:"input"`
	Output string     `json:"output,omitempty"`
	Status FileStatus `json:"status"`
	Events int        `json:"events"`
	Error  string     `json:"error,omitempty"`

	// Replaced names an earlier input of the same run whose calendar was
	// written to the same output path and has been overwritten
	Replaced string `json:"replaced,omitempty"`
}

// Driver converts a list of menu files, one .ics per input
type Driver struct {
	Options convert.Options
	// OutDir receives output files; empty means next to each input
	OutDir string
	// Validate parses each calendar back before writing it
	Validate bool
}

// Run processes every path in order. A failing file is reported and never
// stops the remaining files.
func (d *Driver) Run(paths []string) *Summary {
	summary := &Summary{
		StartedAt: time.Now().UTC(),
		Files:     make([]FileResult, 0, len(paths)),
	}

	written := make(map[string]string)
	for _, path := range paths {
		start := time.Now()
		res := d.convertOne(path)
		logger.RecordTiming("file.process", time.Since(start))
		logger.IncrCounter("files.processed")
		logger.IncrCounter("files." + string(res.Status))

		if res.Status == StatusWritten {
			if previous, ok := written[res.Output]; ok {
				res.Replaced = previous
				logger.IncrCounter("files.overwritten")
				logger.Warn("Output path already written in this run, earlier calendar replaced", logger.Fields{
					"path":     res.Output,
					"input":    path,
					"previous": previous,
				})
			}
			written[res.Output] = path
		}

		summary.add(res)
	}

	return summary
}

func (d *Driver) convertOne(path string) FileResult {
	res := FileResult{Input: path}
	logger.Info("Processing file", logger.Fields{"path": path})

	result, err := convert.ProcessFile(path, d.Options)
	if err != nil {
		if errors.Is(err, convert.ErrNoEvents) {
			res.Status = StatusNoEvents
			logger.Info("No events found, skipping output", logger.Fields{"path": path})
			return res
		}
		res.Status = StatusFailed
		res.Error = err.Error()
		logger.Error("Error reading or parsing file", logger.Fields{"path": path}, err)
		return res
	}
	res.Events = result.Events

	if d.Validate {
		if err := calendar.Validate(result.ICS, result.Events); err != nil {
			res.Status = StatusFailed
			res.Error = err.Error()
			logger.Error("Generated calendar failed validation", logger.Fields{"path": path}, err)
			return res
		}
	}

	output := OutputPath(path, d.OutDir)
	if err := writeCalendar(output, result.ICS); err != nil {
		res.Status = StatusFailed
		res.Error = err.Error()
		logger.Error("Error writing calendar", logger.Fields{"path": output}, err)
		return res
	}

	res.Output = output
	res.Status = StatusWritten
	logger.Info("Successfully created calendar", logger.Fields{
		"path":   output,
		"events": result.Events,
	})
	return res
}

// OutputPath returns the .ics path for input: same base name, .ics
// extension, in outDir when given or else next to the input.
func OutputPath(input, outDir string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".ics"
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	return filepath.Join(outDir, name)
}

func writeCalendar(path, ics string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}
