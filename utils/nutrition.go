package utils

import "rasaroots/models"

// MacroDelta is the signed per-macro difference between a plan's current
// totals and its targets. Positive means surplus, negative shortfall.
type MacroDelta struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// AggregateNutrition sums the macro profile of every dish in the input.
// An empty input yields all-zero totals. Inputs are taken as-is; the catalog
// is responsible for keeping macros non-negative.
func AggregateNutrition(dishes []models.Dish) models.Macros {
	var t models.Macros
	for _, d := range dishes {
		t.Calories += d.Macros.Calories
		t.Protein += d.Macros.Protein
		t.Carbs += d.Macros.Carbs
		t.Fats += d.Macros.Fats
	}
	return t
}

// NutritionDelta subtracts targets from totals field-wise. No rounding here;
// display rounding is a presentation concern.
func NutritionDelta(totals, targets models.Macros) MacroDelta {
	return MacroDelta{
		Calories: totals.Calories - targets.Calories,
		Protein:  totals.Protein - targets.Protein,
		Carbs:    totals.Carbs - targets.Carbs,
		Fats:     totals.Fats - targets.Fats,
	}
}
