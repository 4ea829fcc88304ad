package config

import (
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/pfrederiksen/linq-ics/internal/calendar"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linq-ics.yaml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ProductID != calendar.DefaultProductID {
		t.Errorf("ProductID = %q, want default", cfg.ProductID)
	}
	if cfg.Floating || cfg.OutDir != "" || cfg.Timezone != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
product_id: "-//Springfield Schools//Menus//EN"
calendar_name: Springfield Elementary
timezone: America/Chicago
out_dir: /tmp/menus
sessions:
  Lunch:
    start: "11:30"
    end: "12:30"
  Supper:
    start: "17:00"
    end: "18:00"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ProductID != "-//Springfield Schools//Menus//EN" {
		t.Errorf("ProductID = %q", cfg.ProductID)
	}
	if cfg.CalendarName != "Springfield Elementary" {
		t.Errorf("CalendarName = %q", cfg.CalendarName)
	}
	if cfg.OutDir != "/tmp/menus" {
		t.Errorf("OutDir = %q", cfg.OutDir)
	}

	loc, err := cfg.Location()
	if err != nil || loc.String() != "America/Chicago" {
		t.Errorf("Location() = %v, %v", loc, err)
	}

	table, err := cfg.Schedule()
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	lunch, ok := table.Lookup("Lunch")
	if !ok || lunch.Start.String() != "113000" || lunch.End.String() != "123000" {
		t.Errorf("Lunch = %+v, %v", lunch, ok)
	}
	if _, ok := table.Lookup("Supper"); !ok {
		t.Error("Supper should be added to the table")
	}
	if _, ok := table.Lookup("Breakfast"); !ok {
		t.Error("Breakfast should keep its default window")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid yaml", "sessions: [unterminated"},
		{"backwards window", "sessions:\n  Lunch:\n    start: \"13:00\"\n    end: \"11:00\"\n"},
		{"bad clock", "sessions:\n  Lunch:\n    start: noon\n    end: \"13:00\"\n"},
		{"unknown timezone", "timezone: Mars/Olympus_Mons\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{ProductID: "  ", Timezone: " UTC "}
	cfg.Normalize()

	if cfg.ProductID != calendar.DefaultProductID {
		t.Errorf("ProductID = %q, want default", cfg.ProductID)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", cfg.Timezone)
	}
	if cfg.Sessions == nil {
		t.Error("Sessions should be initialized")
	}
}
