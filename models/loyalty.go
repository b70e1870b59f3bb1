package models

import (
	"time"

	"github.com/lib/pq"
)

// LoyaltyTier rows form a totally ordered sequence by MinPoints ascending;
// thresholds are unique and the seeded table always starts at 0.
type LoyaltyTier struct {
	ID        string         `gorm:"primaryKey;size:32" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	MinPoints int            `gorm:"uniqueIndex" json:"minPoints"`
	Benefits  pq.StringArray `gorm:"type:text[]" json:"benefits"`
	Color     string         `gorm:"size:16" json:"color"`
}

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// LoyaltyProfile holds per-user gamification state. TierID is derived from
// Points against the tier table; Points only ever increase.
type LoyaltyProfile struct {
	UserID          uint      `gorm:"primaryKey" json:"userId"`
	Points          int       `json:"points"`
	Badges          []Badge   `gorm:"serializer:json" json:"badges"`
	Streak          int       `json:"streak"`
	ReferredFriends int       `json:"referredFriends"`
	TierID          string    `gorm:"size:32" json:"tierId"`
	LeaderboardRank int       `json:"leaderboardRank"`
	UpdatedAt       time.Time `json:"-"`
}
