package calendar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// Placeholder transition dates. Only one static rule pair is emitted;
	// historical and future transition changes are not modeled.
	standardStart = "19701101T020000"
	daylightStart = "19700308T020000"

	localtimePath = "/etc/localtime"
)

// Zone is the timezone declaration used to qualify event times.
// Offsets are seconds east of UTC.
type Zone struct {
	ID       string
	Name     string
	Standard int
	Daylight int
}

// ZoneAt derives the zone declaration for loc at instant at.
// If loc observes daylight saving time at that instant, the standard offset
// is taken from the next non-DST instant within a year.
func ZoneAt(loc *time.Location, at time.Time) Zone {
	if loc == nil {
		loc = time.UTC
	}
	t := at.In(loc)
	name, offset := t.Zone()

	z := Zone{
		ID:       zoneID(loc),
		Name:     name,
		Standard: offset,
		Daylight: offset,
	}

	if t.IsDST() {
		z.Standard = offset - 3600
		for m := 1; m <= 12; m++ {
			probe := t.AddDate(0, m, 0)
			if !probe.IsDST() {
				_, z.Standard = probe.Zone()
				break
			}
		}
	}

	return z
}

// HasDaylight reports whether the zone carries a separate daylight rule
func (z Zone) HasDaylight() bool {
	return z.Standard != z.Daylight
}

// Block renders the VTIMEZONE component
func (z Zone) Block() string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VTIMEZONE\r\n")
	ics.WriteString(fmt.Sprintf("TZID:%s\r\n", z.ID))

	ics.WriteString("BEGIN:STANDARD\r\n")
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", standardStart))
	ics.WriteString(fmt.Sprintf("TZOFFSETFROM:%s\r\n", formatOffset(z.Daylight)))
	ics.WriteString(fmt.Sprintf("TZOFFSETTO:%s\r\n", formatOffset(z.Standard)))
	ics.WriteString(fmt.Sprintf("TZNAME:%s\r\n", z.Name))
	ics.WriteString("END:STANDARD\r\n")

	if z.HasDaylight() {
		ics.WriteString("BEGIN:DAYLIGHT\r\n")
		ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", daylightStart))
		ics.WriteString(fmt.Sprintf("TZOFFSETFROM:%s\r\n", formatOffset(z.Standard)))
		ics.WriteString(fmt.Sprintf("TZOFFSETTO:%s\r\n", formatOffset(z.Daylight)))
		ics.WriteString(fmt.Sprintf("TZNAME:%s\r\n", z.Name))
		ics.WriteString("END:DAYLIGHT\r\n")
	}

	ics.WriteString("END:VTIMEZONE\r\n")

	return ics.String()
}

// formatOffset renders a UTC offset as +HHMM, or +HHMMSS when seconds are set
func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if s != 0 {
		return fmt.Sprintf("%s%02d%02d%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d%02d", sign, h, m)
}

// zoneID returns the IANA name for loc. time.Local reports itself as
// "Local", so the name is recovered from $TZ or the /etc/localtime link.
func zoneID(loc *time.Location) string {
	if name := loc.String(); name != "Local" && name != "" {
		return name
	}
	return LocalZoneID(os.Getenv("TZ"), localtimePath)
}

// LocalZoneID resolves the system zone name from a TZ value or the target
// of the localtime symlink, falling back to UTC.
func LocalZoneID(tzEnv, localtime string) string {
	tzEnv = strings.TrimPrefix(tzEnv, ":")
	if tzEnv != "" && !filepath.IsAbs(tzEnv) {
		return tzEnv
	}
	if filepath.IsAbs(tzEnv) {
		localtime = tzEnv
	}

	target, err := filepath.EvalSymlinks(localtime)
	if err == nil {
		if _, after, found := strings.Cut(target, "zoneinfo/"); found && after != "" {
			return after
		}
	}
	return "UTC"
}
