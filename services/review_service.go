package services

import (
	"fmt"
	"log"
	"time"

	"rasaroots/models"
	"rasaroots/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Points credited for submitting a review.
const reviewPointsAward = 25

type ReviewService struct {
	db      *gorm.DB
	loyalty *LoyaltyService
	mod     *ModerationService // nil when Rekognition is unavailable
}

func NewReviewService(db *gorm.DB, loyalty *LoyaltyService, mod *ModerationService) *ReviewService {
	return &ReviewService{db: db, loyalty: loyalty, mod: mod}
}

var reviews *ReviewService

// InitReviews wires the process-wide review service, building the AWS
// moderation client once. Without Rekognition reviews still post, just
// unscreened.
func InitReviews(db *gorm.DB) {
	mod, err := NewModerationService()
	if err != nil {
		log.Printf("moderation unavailable, reviews post unscreened: %v", err)
		mod = nil
	}
	reviews = NewReviewService(db, NewLoyaltyService(db), mod)
}

func ActiveReviewService() *ReviewService { return reviews }

type ReviewRequest struct {
	DishID  string   `json:"dishId" binding:"required"`
	Rating  int      `json:"rating" binding:"required,min=1,max=5"`
	Comment string   `json:"comment"`
	Photos  []string `json:"photos"` // base64 data URIs
}

// Create scores the comment once, stores photos, screens them, persists the
// review, and credits loyalty points. The stored sentiment score is final;
// reads never recompute it.
func (s *ReviewService) Create(user *models.User, req ReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	status, err := s.loyalty.GetLoyalty(user.ID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:             "review-" + uuid.NewString(),
		DishID:         req.DishID,
		Rating:         req.Rating,
		Comment:        req.Comment,
		SentimentScore: utils.AnalyzeSentiment(req.Comment),
		Author: models.ReviewAuthor{
			Name:           user.FullName,
			AvatarColor:    user.AvatarColor,
			MembershipTier: status.Tier.ID,
		},
		Photos:    []string{},
		CreatedAt: time.Now(),
	}

	for _, photo := range req.Photos {
		url, imageBytes, err := utils.UploadReviewPhoto(photo, review.ID)
		if err != nil {
			return nil, err
		}
		review.Photos = append(review.Photos, url)

		if s.mod != nil && !review.Flagged {
			flag, err := s.mod.ShouldFlag(imageBytes)
			if err != nil {
				// Screening is advisory; an unreachable moderator never
				// blocks the review.
				log.Printf("moderation check failed for %s: %v", review.ID, err)
				continue
			}
			review.Flagged = flag
		}
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, err
	}

	if _, err := s.loyalty.AwardPoints(user.ID, reviewPointsAward); err != nil {
		log.Printf("loyalty award failed for user %d: %v", user.ID, err)
	}

	return review, nil
}

// List returns reviews most-recent-first, matching the prepend-on-create
// ordering clients expect.
func (s *ReviewService) List() ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

type BandCount struct {
	Band  string `json:"band"`
	Count int    `json:"count"`
}

// CountBands buckets reviews into the three sentiment bands, in display
// order. Stored scores are read as-is.
func CountBands(reviews []models.Review) []BandCount {
	counts := map[string]int{}
	for _, r := range reviews {
		counts[utils.SentimentBand(r.SentimentScore)]++
	}
	return []BandCount{
		{Band: utils.BandJoyful, Count: counts[utils.BandJoyful]},
		{Band: utils.BandBalanced, Count: counts[utils.BandBalanced]},
		{Band: utils.BandConstructive, Count: counts[utils.BandConstructive]},
	}
}

// SentimentStats is the aggregate view backing the feedback dashboard.
func (s *ReviewService) SentimentStats() ([]BandCount, error) {
	reviews, err := s.List()
	if err != nil {
		return nil, err
	}
	return CountBands(reviews), nil
}
