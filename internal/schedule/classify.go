package schedule

import "strings"

// MealKind groups meals for description ordering
type MealKind int

const (
	KindOther MealKind = iota
	KindDailySpecial
	KindMilk
)

const (
	DailySpecialName = "Daily Special"
	MilkName         = "Milk"
)

// Classify returns the kind of a meal by substring match on its name.
// "Daily Special" wins over "Milk" when both appear. Names such as
// "Milk Chocolate Dessert" are classified as milk.
func Classify(mealName string) MealKind {
	switch {
	case strings.Contains(mealName, DailySpecialName):
		return KindDailySpecial
	case strings.Contains(mealName, MilkName):
		return KindMilk
	default:
		return KindOther
	}
}

func (k MealKind) String() string {
	switch k {
	case KindDailySpecial:
		return DailySpecialName
	case KindMilk:
		return MilkName
	default:
		return "Other"
	}
}
