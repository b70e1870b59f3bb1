package services

import (
	"errors"
	"fmt"

	"rasaroots/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var weekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var slotKinds = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

// PlanService is the persistence collaborator for meal plans: one durable
// plan per user, created from the base template on first read and merged via
// explicit patches afterwards.
type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

// basePlan is the template every user starts from: a full week of empty
// Breakfast/Lunch/Dinner/Snack slots with house-default macro targets.
func basePlan(userID uint) *models.MealPlan {
	schedule := make([]models.DayEntry, 0, len(weekDays))
	for _, day := range weekDays {
		meals := make([]models.MealSlot, 0, len(slotKinds))
		for _, kind := range slotKinds {
			meals = append(meals, models.MealSlot{Slot: kind})
		}
		schedule = append(schedule, models.DayEntry{Day: day, Meals: meals})
	}
	return &models.MealPlan{
		ID:                "plan-" + uuid.NewString(),
		UserID:            userID,
		Name:              "Weekly Canteen Ritual",
		DietaryPreference: "all",
		Allergies:         []string{},
		Schedule:          schedule,
		MacroTargets:      models.Macros{Calories: 2000, Protein: 90, Carbs: 250, Fats: 70},
	}
}

// GetPlan loads the user's plan, creating it from the base template when the
// user has none yet.
func (s *PlanService) GetPlan(userID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.First(&plan, "user_id = ?", userID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		fresh := basePlan(userID)
		if err := s.db.Create(fresh).Error; err != nil {
			return nil, err
		}
		return fresh, nil
	}
	return &plan, nil
}

// UpdatePlan merges a patch into the stored plan and returns the
// authoritative result. Only fields named by the patch are overridden; a nil
// Schedule keeps the stored schedule and a non-nil one replaces the whole
// field. A schedule with duplicate (day, slot index) keys is rejected and
// the stored plan is left untouched.
func (s *PlanService) UpdatePlan(userID uint, patch models.PlanPatch) (*models.MealPlan, error) {
	plan, err := s.GetPlan(userID)
	if err != nil {
		return nil, err
	}

	if patch.Schedule != nil {
		if err := validateSchedule(patch.Schedule); err != nil {
			return nil, err
		}
		plan.Schedule = patch.Schedule
	}
	if patch.Name != nil {
		plan.Name = *patch.Name
	}
	if patch.DietaryPreference != nil {
		plan.DietaryPreference = *patch.DietaryPreference
	}
	if patch.Allergies != nil {
		plan.Allergies = *patch.Allergies
	}
	if patch.MacroTargets != nil {
		if t := patch.MacroTargets; t.Calories < 0 || t.Protein < 0 || t.Carbs < 0 || t.Fats < 0 {
			return nil, fmt.Errorf("macro targets must be non-negative")
		}
		plan.MacroTargets = *patch.MacroTargets
	}

	if err := s.db.Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// validateSchedule enforces unique (day, slot index) keys across the whole
// schedule.
func validateSchedule(schedule []models.DayEntry) error {
	seen := make(map[string]struct{})
	for _, entry := range schedule {
		for idx := range entry.Meals {
			key := SlotKey(entry.Day, idx)
			if _, dup := seen[key]; dup {
				return fmt.Errorf("duplicate slot key %q in schedule", key)
			}
			seen[key] = struct{}{}
		}
	}
	return nil
}
