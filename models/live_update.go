package models

import (
	"time"

	"gorm.io/datatypes"
)

// LiveUpdate is a realtime event pushed to connected clients: order status,
// availability changes, promotions.
type LiveUpdate struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	UserID    uint           `gorm:"index" json:"-"`
	Type      string         `gorm:"size:24" json:"type"` // "order-status" | "availability" | "promotion"
	Message   string         `gorm:"type:text" json:"message"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
	CreatedAt time.Time      `json:"timestamp"`
}
