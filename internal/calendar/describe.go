package calendar

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/linq-ics/internal/menu"
	"github.com/pfrederiksen/linq-ics/internal/schedule"
)

const (
	// FoldWidth is the maximum width of a description line
	FoldWidth = 72
	// lineSeparator is the escaped newline used inside DESCRIPTION values
	lineSeparator = `\n`
)

// FormatDescription renders a day's meals as an escaped, folded DESCRIPTION
// value. Daily Special items come first, other meals keep their own
// headed sections, and Milk comes last. Groups are separated by one blank
// line. A day without recipes yields an empty string.
func FormatDescription(meals []menu.Meal) string {
	var specials, milk, other []string

	for _, meal := range meals {
		recipes := meal.RecipeNames()

		switch schedule.Classify(meal.Name) {
		case schedule.KindDailySpecial:
			specials = append(specials, recipes...)
		case schedule.KindMilk:
			milk = append(milk, recipes...)
		default:
			if len(recipes) > 0 {
				other = append(other, sectionHeader(meal.Name))
				other = append(other, bullets(recipes)...)
			}
		}
	}

	groups := make([][]string, 0, 3)
	if len(specials) > 0 {
		groups = append(groups, append([]string{sectionHeader(schedule.DailySpecialName)}, bullets(specials)...))
	}
	if len(other) > 0 {
		groups = append(groups, other)
	}
	if len(milk) > 0 {
		groups = append(groups, append([]string{sectionHeader(schedule.MilkName)}, bullets(milk)...))
	}

	var lines []string
	for i, group := range groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, group...)
	}

	folded := make([]string, 0, len(lines))
	for _, line := range lines {
		for _, part := range Wrap(line, FoldWidth) {
			folded = append(folded, escapeICS(part))
		}
	}

	return strings.Join(folded, lineSeparator)
}

func sectionHeader(name string) string {
	return fmt.Sprintf("== %s ==", name)
}

func bullets(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "- " + item
	}
	return out
}
