package menu

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// DateLayout is the month/day/year format used by menu Day records.
// Single-digit and zero-padded fields are both accepted.
const DateLayout = "1/2/2006"

// ErrNoMenuData is returned when an HTML input carries no menu document
var ErrNoMenuData = errors.New("no menu data found")

// Document is a parsed menu export
type Document struct {
	Sessions []Session `json:"FamilyMenuSessions"`
}

// Session is one serving session (Breakfast, Lunch, ...) and its plans
type Session struct {
	ServingSession string `json:"ServingSession"`
	Plans          []Plan `json:"MenuPlans"`
}

// Plan is one menu plan within a session
type Plan struct {
	ID   PlanID `json:"MenuPlanId"`
	Days []Day  `json:"Days"`
}

// Day is a single dated menu
type Day struct {
	Date  string `json:"Date"`
	Meals []Meal `json:"MenuMeals"`
}

// Meal is a named group of recipe categories served on a day
type Meal struct {
	Name       string           `json:"MenuMealName"`
	Categories []RecipeCategory `json:"RecipeCategories"`
}

// RecipeCategory groups recipes within a meal
type RecipeCategory struct {
	Recipes []Recipe `json:"Recipes"`
}

// Recipe is a single menu item
type Recipe struct {
	Name string `json:"RecipeName"`
}

// PlanID is a menu plan identifier. Exports carry it either as a string or
// as a number; null or absent becomes the empty string.
type PlanID string

// UnmarshalJSON accepts string, number and null identifiers
func (p *PlanID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PlanID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("menu plan id: %w", err)
	}
	*p = PlanID(n.String())
	return nil
}

// UnmarshalJSON reads a session whose label may not be a string. A non-string
// label decodes as empty, which no schedule recognizes.
func (s *Session) UnmarshalJSON(data []byte) error {
	type plain Session
	var aux struct {
		plain
		ServingSession json.RawMessage `json:"ServingSession"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = Session(aux.plain)
	s.ServingSession = looseString(aux.ServingSession)
	return nil
}

// UnmarshalJSON reads a day whose date may not be a string. A non-string
// date decodes as empty and fails ParseDate, so only that day is lost.
func (d *Day) UnmarshalJSON(data []byte) error {
	type plain Day
	var aux struct {
		plain
		Date json.RawMessage `json:"Date"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*d = Day(aux.plain)
	d.Date = looseString(aux.Date)
	return nil
}

// looseString returns raw as a string when it is a JSON string, else ""
func looseString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// RecipeNames returns the meal's recipe names across all categories, in source order
func (m Meal) RecipeNames() []string {
	names := make([]string, 0)
	for _, category := range m.Categories {
		for _, recipe := range category.Recipes {
			names = append(names, recipe.Name)
		}
	}
	return names
}

// ParseDate parses a Day's date field
func (d Day) ParseDate() (time.Time, error) {
	t, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %s: %w", strconv.Quote(d.Date), err)
	}
	return t, nil
}

// Decode reads a menu document. HTML pages are searched for an embedded
// JSON script element; anything else is decoded as JSON directly.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading menu: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	if looksLikeHTML(data) {
		data, err = extractFromHTML(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing menu JSON: %w", err)
	}
	return &doc, nil
}

// Load opens and decodes the menu file at path
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening menu: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func looksLikeHTML(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	return len(trimmed) > 0 && trimmed[0] == '<'
}
