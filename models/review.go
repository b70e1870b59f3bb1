package models

import (
	"time"

	"github.com/lib/pq"
)

type ReviewAuthor struct {
	Name           string `json:"name"`
	AvatarColor    string `gorm:"size:16" json:"avatarColor"`
	MembershipTier string `gorm:"size:32" json:"membershipTier"`
}

// Review of a single dish. SentimentScore is computed once at creation from
// the comment text and stored with the review; it is never recomputed on
// read.
type Review struct {
	ID             string         `gorm:"primaryKey;size:64" json:"id"`
	DishID         string         `gorm:"index;size:64" json:"dishId"`
	Rating         int            `json:"rating"` // 1..5
	Comment        string         `gorm:"type:text" json:"comment"`
	SentimentScore float64        `json:"sentimentScore"`
	Author         ReviewAuthor   `gorm:"embedded;embeddedPrefix:author_" json:"user"`
	Photos         pq.StringArray `gorm:"type:text[]" json:"photos"`
	Flagged        bool           `json:"flagged"`
	CreatedAt      time.Time      `gorm:"index" json:"createdAt"`
}
