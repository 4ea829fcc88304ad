package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/linq-ics/internal/calendar"
	"github.com/pfrederiksen/linq-ics/internal/config"
	"github.com/pfrederiksen/linq-ics/internal/convert"
	"github.com/pfrederiksen/linq-ics/internal/logger"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig       string
	flagOutDir       string
	flagTimezone     string
	flagFloating     bool
	flagCalendarName string
	flagFormat       string
	flagLogFormat    string
	flagLogLevel     string
	flagValidate     bool
	flagVerbose      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linq-ics [flags] <menu.json>...",
		Short: "Convert school meal menu JSON files to iCalendar files",
		Long: `A CLI tool that converts school meal menu exports into .ics calendars.
Each input produces one calendar next to it with one event per serving
session per day. Files that fail or hold no events are reported and skipped.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runConvert,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define flags
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "Directory for .ics files (default: next to each input)")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "", "IANA timezone for event times (default: local zone)")
	cmd.Flags().BoolVar(&flagFloating, "floating", false, "Write floating times without a VTIMEZONE block")
	cmd.Flags().StringVar(&flagCalendarName, "calendar-name", "", "Calendar display name (X-WR-CALNAME)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().StringVar(&flagLogFormat, "log-format", "text", "Log format: text or json")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Minimum log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&flagValidate, "validate", true, "Parse each calendar back before writing it")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging (overrides --log-level) and print run counters")

	return cmd
}

// runConvert is the main command logic
func runConvert(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	logFormat, err := logger.ParseFormat(flagLogFormat)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, logFormat, cmd.OutOrStdout()))

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, cfg)

	table, err := cfg.Schedule()
	if err != nil {
		return fmt.Errorf("building schedule: %w", err)
	}

	opts := convert.Options{
		Schedule:     table,
		ProductID:    cfg.ProductID,
		CalendarName: cfg.CalendarName,
	}

	// The zone is read once per run and shared by every file
	if !cfg.Floating {
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		zone := calendar.ZoneAt(loc, time.Now())
		opts.Zone = &zone
		logger.Debug("Using timezone", logger.Fields{
			"tzid":         zone.ID,
			"name":         zone.Name,
			"has_daylight": zone.HasDaylight(),
		})
	}

	driver := &Driver{
		Options:  opts,
		OutDir:   cfg.OutDir,
		Validate: flagValidate,
	}
	summary := driver.Run(args)

	if flagVerbose {
		summary.Metrics = logger.GetMetricsSnapshot()
	}

	// Write output
	if err := WriteSummary(cmd.OutOrStdout(), summary, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// applyFlags overrides config values with flags set on the command line
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("out-dir") {
		cfg.OutDir = flagOutDir
	}
	if flags.Changed("timezone") {
		cfg.Timezone = strings.TrimSpace(flagTimezone)
	}
	if flags.Changed("floating") {
		cfg.Floating = flagFloating
	}
	if flags.Changed("calendar-name") {
		cfg.CalendarName = flagCalendarName
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
