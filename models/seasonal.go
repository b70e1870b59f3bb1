package models

import "time"

// SeasonalDish is static promotional reference data served as-is.
type SeasonalDish struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	Festival       string    `json:"festival"`
	AvailableUntil time.Time `json:"availableUntil"`
	Highlight      string    `gorm:"size:32" json:"highlight"` // Dish of the Day | Chef's Special | Festival Feature
	DishID         string    `gorm:"size:64" json:"dishId"`
	PromoLabel     string    `json:"promoLabel,omitempty"`
	PromoDiscount  int       `json:"promoDiscount,omitempty"`
}
