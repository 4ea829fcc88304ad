package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// OutputFormat specifies the summary output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Summary describes one run over all input files
type Summary struct {
	StartedAt time.Time              `json:"started_at"`
	Files     []FileResult           `json:"files"`
	Written   int                    `json:"written"`
	NoEvents  int                    `json:"no_events"`
	Failed    int                    `json:"failed"`
	Events    int                    `json:"events"`
	Metrics   map[string]interface{} `json:"metrics,omitempty"`
}

func (s *Summary) add(res FileResult) {
	s.Files = append(s.Files, res)
	switch res.Status {
	case StatusWritten:
		s.Written++
		s.Events += res.Events
	case StatusNoEvents:
		s.NoEvents++
	case StatusFailed:
		s.Failed++
	}
}

// WriteSummary writes the run summary in the specified format
func WriteSummary(w io.Writer, summary *Summary, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		return writeText(w, summary, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, summary *Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, summary *Summary, verbose bool) error {
	if len(summary.Files) == 0 {
		fmt.Fprintln(w, "No input files.")
		return nil
	}

	fmt.Fprintln(w)
	for _, res := range summary.Files {
		switch res.Status {
		case StatusWritten:
			fmt.Fprintf(w, "  OK      %s -> %s (%d events)\n", res.Input, res.Output, res.Events)
			if res.Replaced != "" {
				fmt.Fprintf(w, "          replaced calendar from %s\n", res.Replaced)
			}
		case StatusNoEvents:
			fmt.Fprintf(w, "  EMPTY   %s\n", res.Input)
		default:
			fmt.Fprintf(w, "  FAILED  %s: %s\n", res.Input, res.Error)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d written, %d without events, %d failed (%d events)\n",
		summary.Written, summary.NoEvents, summary.Failed, summary.Events)

	if verbose && len(summary.Metrics) > 0 {
		if counters, ok := summary.Metrics["counters"].(map[string]int64); ok && len(counters) > 0 {
			names := make([]string, 0, len(counters))
			for name := range counters {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Fprintln(w, "\nCounters:")
			for _, name := range names {
				fmt.Fprintf(w, "  %-20s %d\n", name, counters[name])
			}
		}
	}

	return nil
}
