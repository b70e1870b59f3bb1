package models

import (
	"time"

	"github.com/lib/pq"
)

// MealSlot is one placement within a day. DishID is nil while the slot is
// still unassigned.
type MealSlot struct {
	Slot   string  `json:"slot"` // Breakfast|Lunch|Dinner|Snack
	DishID *string `json:"dishId"`
}

type DayEntry struct {
	Day   string     `json:"day"`
	Meals []MealSlot `json:"meals"`
}

// MealPlan is the durable weekly schedule. (day, slot index) pairs are unique
// within a plan; macro targets are always >= 0.
type MealPlan struct {
	ID                string         `gorm:"primaryKey;size:64" json:"id"`
	UserID            uint           `gorm:"index" json:"-"`
	Name              string         `json:"name"`
	DietaryPreference string         `gorm:"size:32" json:"dietaryPreference"`
	Allergies         pq.StringArray `gorm:"type:text[]" json:"allergies"`
	Schedule          []DayEntry     `gorm:"serializer:json" json:"schedule"`
	MacroTargets      Macros         `gorm:"embedded;embeddedPrefix:target_" json:"macroTargets"`
	CreatedAt         time.Time      `json:"-"`
	UpdatedAt         time.Time      `json:"-"`
}

// PlanPatch names exactly which fields a partial update may override.
// A nil Schedule keeps the stored schedule; a non-nil one replaces the whole
// field (no deep merge).
type PlanPatch struct {
	Name              *string    `json:"name"`
	DietaryPreference *string    `json:"dietaryPreference"`
	Allergies         *[]string  `json:"allergies"`
	MacroTargets      *Macros    `json:"macroTargets"`
	Schedule          []DayEntry `json:"schedule"`
}
