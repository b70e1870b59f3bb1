package services

import (
	"testing"

	"rasaroots/models"
)

func strPtr(s string) *string { return &s }

// planWith builds a two-day, two-slot plan. dishIDs maps slot keys to the
// plan's own assignments; unlisted slots start empty.
func planWith(dishIDs map[string]*string) *models.MealPlan {
	plan := &models.MealPlan{ID: "plan-test", Name: "Test Week"}
	for _, day := range []string{"monday", "tuesday"} {
		entry := models.DayEntry{Day: day}
		for idx, slot := range []string{"Breakfast", "Lunch"} {
			entry.Meals = append(entry.Meals, models.MealSlot{
				Slot:   slot,
				DishID: dishIDs[SlotKey(day, idx)],
			})
		}
		plan.Schedule = append(plan.Schedule, entry)
	}
	return plan
}

func TestSlotModel_SetActivePlanSeedsOverlay(t *testing.T) {
	m := NewSlotModel()
	m.UpdateSlot("friday-9", strPtr("dish-stale"))

	plan := planWith(map[string]*string{
		SlotKey("monday", 0): strPtr("dish-dhokla"),
	})
	m.SetActivePlan(plan)

	ids := m.EffectiveDishIDs(plan)
	if len(ids) != 1 || ids[0] != "dish-dhokla" {
		t.Fatalf("expected seeded assignment only, got %v", ids)
	}
	// The pre-existing overlay entry did not survive the switch.
	if got := m.Completion(plan); got != 25 {
		t.Fatalf("completion = %d, want 25", got)
	}
}

func TestSlotModel_UpdateSlotIsIdempotent(t *testing.T) {
	m := NewSlotModel()
	plan := planWith(nil)
	m.SetActivePlan(plan)

	m.UpdateSlot(SlotKey("monday", 1), strPtr("dish-rajma-chawal"))
	m.UpdateSlot(SlotKey("monday", 1), strPtr("dish-rajma-chawal"))

	ids := m.EffectiveDishIDs(plan)
	if len(ids) != 1 || ids[0] != "dish-rajma-chawal" {
		t.Fatalf("expected single assignment, got %v", ids)
	}
}

func TestSlotModel_OverlayOverridesAndClearsPlanAssignments(t *testing.T) {
	plan := planWith(map[string]*string{
		SlotKey("monday", 0):  strPtr("dish-dhokla"),
		SlotKey("tuesday", 1): strPtr("dish-macher-jhol"),
	})
	m := NewSlotModel()
	m.SetActivePlan(plan)

	// Override one slot, explicitly clear the other.
	m.UpdateSlot(SlotKey("monday", 0), strPtr("dish-masala-dosa"))
	m.UpdateSlot(SlotKey("tuesday", 1), nil)

	ids := m.EffectiveDishIDs(plan)
	if len(ids) != 1 || ids[0] != "dish-masala-dosa" {
		t.Fatalf("expected override only, got %v", ids)
	}
}

func TestSlotModel_StaleKeysAreInert(t *testing.T) {
	plan := planWith(nil)
	m := NewSlotModel()
	m.SetActivePlan(plan)

	m.UpdateSlot("sunday-7", strPtr("dish-litti-chokha"))

	if ids := m.EffectiveDishIDs(plan); len(ids) != 0 {
		t.Fatalf("stale key leaked into effective assignments: %v", ids)
	}
	if got := m.Completion(plan); got != 0 {
		t.Fatalf("completion = %d, want 0", got)
	}
}

func TestSlotModel_CompletionCountsDeclaredSlots(t *testing.T) {
	plan := planWith(nil)
	m := NewSlotModel()
	m.SetActivePlan(plan)

	if got := m.Completion(plan); got != 0 {
		t.Fatalf("empty plan completion = %d, want 0", got)
	}

	m.UpdateSlot(SlotKey("monday", 0), strPtr("dish-a"))
	if got := m.Completion(plan); got != 25 {
		t.Fatalf("one of four filled: completion = %d, want 25", got)
	}

	m.UpdateSlot(SlotKey("monday", 1), strPtr("dish-b"))
	m.UpdateSlot(SlotKey("tuesday", 0), strPtr("dish-c"))
	if got := m.Completion(plan); got != 75 {
		t.Fatalf("three of four filled: completion = %d, want 75", got)
	}

	m.UpdateSlot(SlotKey("tuesday", 1), strPtr("dish-d"))
	if got := m.Completion(plan); got != 100 {
		t.Fatalf("all filled: completion = %d, want 100", got)
	}
}

func TestSlotModel_CompletionWithNoPlanOrNoSlots(t *testing.T) {
	m := NewSlotModel()
	if got := m.Completion(nil); got != 0 {
		t.Fatalf("nil plan completion = %d, want 0", got)
	}
	empty := &models.MealPlan{ID: "plan-empty"}
	if got := m.Completion(empty); got != 0 {
		t.Fatalf("zero-slot plan completion = %d, want 0", got)
	}
}

func TestSlotModel_RebuildScheduleMergesOverlay(t *testing.T) {
	plan := planWith(map[string]*string{
		SlotKey("monday", 0): strPtr("dish-dhokla"),
	})
	m := NewSlotModel()
	m.SetActivePlan(plan)
	m.UpdateSlot(SlotKey("tuesday", 0), strPtr("dish-chicken-chettinad"))

	rebuilt := m.RebuildSchedule(plan)
	if len(rebuilt) != 2 {
		t.Fatalf("expected 2 days, got %d", len(rebuilt))
	}
	if got := rebuilt[0].Meals[0].DishID; got == nil || *got != "dish-dhokla" {
		t.Fatalf("plan assignment lost: %v", got)
	}
	if got := rebuilt[1].Meals[0].DishID; got == nil || *got != "dish-chicken-chettinad" {
		t.Fatalf("overlay assignment missing: %v", got)
	}
	if rebuilt[1].Meals[1].DishID != nil {
		t.Fatalf("untouched slot should stay empty")
	}
	// Slot kinds survive the rebuild.
	if rebuilt[0].Meals[1].Slot != "Lunch" {
		t.Fatalf("slot kind lost: %q", rebuilt[0].Meals[1].Slot)
	}
}

func TestSlotModel_ResetDiscardsEverything(t *testing.T) {
	plan := planWith(map[string]*string{SlotKey("monday", 0): strPtr("dish-a")})
	m := NewSlotModel()
	m.SetActivePlan(plan)
	m.UpdateSlot(SlotKey("monday", 1), strPtr("dish-b"))

	m.Reset()

	if m.ActivePlan() != nil {
		t.Fatalf("active plan survived reset")
	}
	if ids := m.OverlayDishIDs(); len(ids) != 0 {
		t.Fatalf("overlay survived reset: %v", ids)
	}
}
