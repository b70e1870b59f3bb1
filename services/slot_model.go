package services

import (
	"fmt"
	"math"
	"sync"

	"rasaroots/models"
)

// SlotKey addresses one meal placement within a weekly schedule.
func SlotKey(day string, slotIndex int) string {
	return fmt.Sprintf("%s-%d", day, slotIndex)
}

// SlotModel owns the live slot-assignment overlay for one editing session.
// The overlay is distinct from the persisted plan: a key present with a nil
// dish id is an explicit clear, an absent key defers to the plan's own
// assignment. Keys that don't match any declared slot of the active plan are
// stored but inert: completion and aggregation walk the plan's declared
// schedule, never the overlay itself.
type SlotModel struct {
	mu         sync.Mutex
	activePlan *models.MealPlan
	selected   map[string]*string
}

func NewSlotModel() *SlotModel {
	return &SlotModel{selected: make(map[string]*string)}
}

// SetActivePlan replaces the active plan and reseeds the overlay by
// flattening the schedule. All prior overlay state is discarded, so stale
// keys never survive a plan switch.
func (m *SlotModel) SetActivePlan(plan *models.MealPlan) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.activePlan = plan
	m.selected = make(map[string]*string)
	if plan == nil {
		return
	}
	for _, entry := range plan.Schedule {
		for idx, meal := range entry.Meals {
			m.selected[SlotKey(entry.Day, idx)] = meal.DishID
		}
	}
}

// UpdateSlot sets or clears the overlay entry for slotKey. Idempotent and
// constant-time; the key is not validated against the active plan's shape.
func (m *SlotModel) UpdateSlot(slotKey string, dishID *string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected[slotKey] = dishID
}

// Reset clears the active plan and the overlay.
func (m *SlotModel) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activePlan = nil
	m.selected = make(map[string]*string)
}

func (m *SlotModel) ActivePlan() *models.MealPlan {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activePlan
}

// effectiveDishID resolves one declared slot: overlay entry when present,
// otherwise the plan's own assignment.
func (m *SlotModel) effectiveDishID(day string, slotIndex int, fallback *string) *string {
	if v, ok := m.selected[SlotKey(day, slotIndex)]; ok {
		return v
	}
	return fallback
}

// EffectiveDishIDs walks the plan's declared slots and returns the non-nil
// effective assignments in schedule order.
func (m *SlotModel) EffectiveDishIDs(plan *models.MealPlan) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []string
	if plan == nil {
		return ids
	}
	for _, entry := range plan.Schedule {
		for idx, meal := range entry.Meals {
			if id := m.effectiveDishID(entry.Day, idx, meal.DishID); id != nil {
				ids = append(ids, *id)
			}
		}
	}
	return ids
}

// OverlayDishIDs returns the non-nil overlay assignments. Used for the
// overlay-only snapshot when no plan is active yet.
func (m *SlotModel) OverlayDishIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []string
	for _, v := range m.selected {
		if v != nil {
			ids = append(ids, *v)
		}
	}
	return ids
}

// RebuildSchedule produces a full replacement schedule: every declared slot
// takes its overlay value when one is present, else keeps the plan's value.
func (m *SlotModel) RebuildSchedule(plan *models.MealPlan) []models.DayEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	rebuilt := make([]models.DayEntry, 0, len(plan.Schedule))
	for _, entry := range plan.Schedule {
		meals := make([]models.MealSlot, 0, len(entry.Meals))
		for idx, meal := range entry.Meals {
			meals = append(meals, models.MealSlot{
				Slot:   meal.Slot,
				DishID: m.effectiveDishID(entry.Day, idx, meal.DishID),
			})
		}
		rebuilt = append(rebuilt, models.DayEntry{Day: entry.Day, Meals: meals})
	}
	return rebuilt
}

// Completion is the percentage of declared slots with a non-nil effective
// dish, rounded to the nearest integer. A plan with no declared slots (or no
// plan at all) is 0% complete.
func (m *SlotModel) Completion(plan *models.MealPlan) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if plan == nil {
		return 0
	}
	total, filled := 0, 0
	for _, entry := range plan.Schedule {
		for idx, meal := range entry.Meals {
			total++
			if m.effectiveDishID(entry.Day, idx, meal.DishID) != nil {
				filled++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(filled) / float64(total) * 100))
}
