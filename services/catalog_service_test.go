package services

import (
	"testing"

	"rasaroots/models"
)

func catalogFixture() []models.Dish {
	return []models.Dish{
		{ID: "dish-dhokla", Name: "Dhokla", Dietary: []string{"vegetarian", "vegan"}, Allergens: []string{"gluten"}},
		{ID: "dish-macher-jhol", Name: "Macher Jhol", Dietary: []string{"non-vegetarian"}, Allergens: []string{"fish"}},
		{ID: "dish-rajma-chawal", Name: "Rajma Chawal", Dietary: []string{"vegetarian", "vegan"}, Allergens: []string{}},
		{ID: "dish-masala-dosa", Name: "Masala Dosa", Dietary: []string{"vegetarian"}, Allergens: []string{"dairy"}},
	}
}

func dishIDs(dishes []models.Dish) []string {
	ids := make([]string, len(dishes))
	for i, d := range dishes {
		ids[i] = d.ID
	}
	return ids
}

func TestFilterDishes_AllPreferencePassesEverything(t *testing.T) {
	dishes := catalogFixture()
	for _, pref := range []string{"all", ""} {
		got := FilterDishes(dishes, pref, nil)
		if len(got) != len(dishes) {
			t.Fatalf("preference %q filtered to %d dishes, want %d", pref, len(got), len(dishes))
		}
	}
}

func TestFilterDishes_DietaryPreference(t *testing.T) {
	got := FilterDishes(catalogFixture(), "vegan", nil)
	want := []string{"dish-dhokla", "dish-rajma-chawal"}
	ids := dishIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestFilterDishes_AllergenExclusion(t *testing.T) {
	got := FilterDishes(catalogFixture(), "all", []string{"gluten", "dairy"})
	ids := dishIDs(got)
	want := []string{"dish-macher-jhol", "dish-rajma-chawal"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestFilterDishes_CombinedFiltersPreserveOrder(t *testing.T) {
	got := FilterDishes(catalogFixture(), "vegetarian", []string{"gluten"})
	ids := dishIDs(got)
	want := []string{"dish-rajma-chawal", "dish-masala-dosa"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestFilterDishes_EmptyCatalog(t *testing.T) {
	if got := FilterDishes(nil, "vegan", []string{"nuts"}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
