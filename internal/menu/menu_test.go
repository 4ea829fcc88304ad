package menu

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

const sampleJSON = `{
  "FamilyMenuSessions": [
    {
      "ServingSession": "Lunch",
      "MenuPlans": [
        {
          "MenuPlanId": "7",
          "Days": [
            {
              "Date": "3/4/2024",
              "MenuMeals": [
                {
                  "MenuMealName": "Daily Special",
                  "RecipeCategories": [
                    {"Recipes": [{"RecipeName": "Pizza"}, {"RecipeName": "Salad"}]},
                    {"Recipes": [{"RecipeName": "Apple"}]}
                  ]
                }
              ]
            }
          ]
        },
        {"MenuPlanId": 12, "Days": []},
        {"Days": []}
      ]
    }
  ]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(doc.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(doc.Sessions))
	}
	session := doc.Sessions[0]
	if session.ServingSession != "Lunch" {
		t.Errorf("ServingSession = %q, want Lunch", session.ServingSession)
	}
	if len(session.Plans) != 3 {
		t.Fatalf("plans = %d, want 3", len(session.Plans))
	}

	wantIDs := []PlanID{"7", "12", ""}
	for i, want := range wantIDs {
		if session.Plans[i].ID != want {
			t.Errorf("plan[%d].ID = %q, want %q", i, session.Plans[i].ID, want)
		}
	}

	meal := session.Plans[0].Days[0].Meals[0]
	if meal.Name != "Daily Special" {
		t.Errorf("meal name = %q", meal.Name)
	}
	want := []string{"Pizza", "Salad", "Apple"}
	if got := meal.RecipeNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("RecipeNames() = %v, want %v", got, want)
	}
}

func TestDecode_MissingKeys(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"Other": 1}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(doc.Sessions) != 0 {
		t.Errorf("sessions = %d, want 0", len(doc.Sessions))
	}
}

func TestDecode_NullPlanID(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"FamilyMenuSessions":[{"MenuPlans":[{"MenuPlanId":null}]}]}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := doc.Sessions[0].Plans[0].ID; got != "" {
		t.Errorf("ID = %q, want empty", got)
	}
}

func TestDecode_NonStringDateAndLabel(t *testing.T) {
	in := `{"FamilyMenuSessions":[
{"ServingSession":5,"MenuPlans":[{"MenuPlanId":"1","Days":[{"Date":"3/4/2024"}]}]},
{"ServingSession":"Lunch","MenuPlans":[{"MenuPlanId":"7","Days":[
  {"Date":20240304,"MenuMeals":[{"MenuMealName":"Daily Special"}]},
  {"Date":null},
  {"Date":"3/5/2024"}]}]}]}`

	doc, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(doc.Sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(doc.Sessions))
	}
	if got := doc.Sessions[0].ServingSession; got != "" {
		t.Errorf("numeric ServingSession = %q, want empty", got)
	}
	if got := doc.Sessions[0].Plans[0].Days[0].Date; got != "3/4/2024" {
		t.Errorf("nested Date = %q, want 3/4/2024", got)
	}

	lunch := doc.Sessions[1]
	if lunch.ServingSession != "Lunch" || lunch.Plans[0].ID != "7" {
		t.Fatalf("unexpected session: %+v", lunch)
	}
	days := lunch.Plans[0].Days
	if len(days) != 3 {
		t.Fatalf("days = %d, want 3", len(days))
	}
	if days[0].Date != "" || len(days[0].Meals) != 1 {
		t.Errorf("numeric date day = %+v, want empty date and one meal", days[0])
	}
	for i, d := range days[:2] {
		if _, err := d.ParseDate(); err == nil {
			t.Errorf("days[%d].ParseDate() should fail", i)
		}
	}
	if _, err := days[2].ParseDate(); err != nil {
		t.Errorf("days[2].ParseDate() error = %v", err)
	}
}

func TestDecode_ByteOrderMark(t *testing.T) {
	doc, err := Decode(strings.NewReader("\ufeff" + sampleJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(doc.Sessions) != 1 {
		t.Errorf("sessions = %d, want 1", len(doc.Sessions))
	}
}

func TestDecode_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"{not json",
		`{"FamilyMenuSessions": "nope"}`,
		`{"FamilyMenuSessions":[{"MenuPlans":[{"MenuPlanId":true}]}]}`,
	}
	for _, in := range inputs {
		if _, err := Decode(strings.NewReader(in)); err == nil {
			t.Errorf("Decode(%q) should fail", in)
		}
	}
}

func TestDecode_HTML(t *testing.T) {
	page := `<!DOCTYPE html>
<html><head><title>Menus</title>
<script type="application/json">{"config": true}</script>
<script type="application/json">` + sampleJSON + `</script>
</head><body><p>Lunch menu</p></body></html>`

	doc, err := Decode(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(doc.Sessions) != 1 || doc.Sessions[0].ServingSession != "Lunch" {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestDecode_HTMLPre(t *testing.T) {
	page := "<html><body><pre>" + sampleJSON + "</pre></body></html>"

	doc, err := Decode(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(doc.Sessions) != 1 {
		t.Errorf("sessions = %d, want 1", len(doc.Sessions))
	}
}

func TestDecode_HTMLWithoutMenu(t *testing.T) {
	_, err := Decode(strings.NewReader("<html><body>Nothing here</body></html>"))
	if !errors.Is(err, ErrNoMenuData) {
		t.Errorf("Decode() error = %v, want ErrNoMenuData", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Sessions) != 1 {
		t.Errorf("sessions = %d, want 1", len(doc.Sessions))
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestDay_ParseDate(t *testing.T) {
	tests := []struct {
		date    string
		want    time.Time
		wantErr bool
	}{
		{date: "3/4/2024", want: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{date: "03/04/2024", want: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{date: "12/31/2025", want: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		{date: "13/45/2024", wantErr: true},
		{date: "2/30/2024", wantErr: true},
		{date: "2024-03-04", wantErr: true},
		{date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := Day{Date: tt.date}.ParseDate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
