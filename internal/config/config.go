package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/linq-ics/internal/calendar"
	"github.com/pfrederiksen/linq-ics/internal/schedule"
)

// SessionWindow overrides the serving window for one session label.
// Times are "HH:MM" or "HH:MM:SS".
type SessionWindow struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Config is the optional YAML configuration. Every key may be omitted.
type Config struct {
	// ProductID is written as the calendar PRODID.
	ProductID string `yaml:"product_id"`

	// CalendarName is written as X-WR-CALNAME when set.
	CalendarName string `yaml:"calendar_name"`

	// Timezone is an IANA zone name (e.g. "America/Chicago"). Empty means
	// the executing machine's local zone.
	Timezone string `yaml:"timezone"`

	// Floating omits the VTIMEZONE block and TZID parameters.
	Floating bool `yaml:"floating"`

	// OutDir, if set, receives the .ics files instead of each input's directory.
	OutDir string `yaml:"out_dir"`

	// Sessions adds or replaces serving windows on top of the default table.
	Sessions map[string]SessionWindow `yaml:"sessions"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ProductID: calendar.DefaultProductID,
	}
}

// Normalize fills in missing values with defaults
func (c *Config) Normalize() {
	c.ProductID = strings.TrimSpace(c.ProductID)
	if c.ProductID == "" {
		c.ProductID = calendar.DefaultProductID
	}
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Sessions == nil {
		c.Sessions = map[string]SessionWindow{}
	}
}

// Load reads the YAML file at path. An empty path yields the defaults;
// a path that does not exist is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		cfg.Normalize()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()

	if _, err := cfg.Schedule(); err != nil {
		return nil, err
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Schedule builds the serving session table: the default windows plus
// any overrides from Sessions.
func (c *Config) Schedule() (*schedule.Table, error) {
	table := schedule.Default()
	for label, sw := range c.Sessions {
		start, err := schedule.ParseClock(sw.Start)
		if err != nil {
			return nil, fmt.Errorf("session %q start: %w", label, err)
		}
		end, err := schedule.ParseClock(sw.End)
		if err != nil {
			return nil, fmt.Errorf("session %q end: %w", label, err)
		}
		if err := table.Set(label, schedule.Window{Start: start, End: end}); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// Location resolves the configured timezone, falling back to time.Local
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
