package models

import "github.com/lib/pq"

// Macros is the per-dish nutritional profile. The same shape is used for
// plan-level totals and targets.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// A catalog entry. Dishes are reference data owned by the catalog; the
// planner only ever reads them by id.
type Dish struct {
	ID             string         `gorm:"primaryKey;size:64" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	Image          string         `json:"image"`
	Region         string         `gorm:"size:16" json:"region"` // North|South|East|West|Central
	State          string         `gorm:"size:64" json:"state"`
	SpiceLevel     int            `json:"spiceLevel"` // 1..5
	Dietary        pq.StringArray `gorm:"type:text[]" json:"dietary"`
	Allergens      pq.StringArray `gorm:"type:text[]" json:"allergens"`
	Price          float64        `json:"price"`
	Macros         Macros         `gorm:"embedded;embeddedPrefix:macro_" json:"macros"`
	Vitamins       pq.StringArray `gorm:"type:text[]" json:"vitamins"`
	Minerals       pq.StringArray `gorm:"type:text[]" json:"minerals"`
	CulturalNotes  string         `gorm:"type:text" json:"culturalNotes"`
	SeasonalTags   pq.StringArray `gorm:"type:text[]" json:"seasonalTags"`
	IsChefSpecial  bool           `json:"isChefSpecial"`
	IsDishOfTheDay bool           `json:"isDishOfTheDay"`
}
