package models

import "github.com/lib/pq"

// IngredientOption backs the customization surface. Same macro shape as a
// dish so the aggregator could sum either.
type IngredientOption struct {
	ID                 string         `gorm:"primaryKey;size:64" json:"id"`
	Name               string         `gorm:"not null" json:"name"`
	RegionAvailability pq.StringArray `gorm:"type:text[]" json:"regionAvailability"`
	Nutrition          Macros         `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition"`
	SupportsDietary    pq.StringArray `gorm:"type:text[]" json:"supportsDietary"`
	Allergens          pq.StringArray `gorm:"type:text[]" json:"allergens"`
	Pairings           pq.StringArray `gorm:"type:text[]" json:"pairings"`
}
