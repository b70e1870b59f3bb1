package services

import (
	"errors"
	"log"
	"math"
	"time"

	"rasaroots/models"
	"rasaroots/utils"

	"gorm.io/gorm"
)

// ResolveTier picks the tier with the greatest threshold not exceeding
// points. Tiers must be ordered by MinPoints ascending. Points below every
// threshold fall back to the lowest tier; seeded tables always start at 0,
// so the fallback only matters for transient states.
func ResolveTier(points int, tiers []models.LoyaltyTier) models.LoyaltyTier {
	if len(tiers) == 0 {
		return models.LoyaltyTier{}
	}
	current := tiers[0]
	for _, tier := range tiers[1:] {
		if points >= tier.MinPoints {
			current = tier
		}
	}
	return current
}

// NextTier is the first tier strictly above the current threshold, or nil at
// the top of the ladder.
func NextTier(current models.LoyaltyTier, tiers []models.LoyaltyTier) *models.LoyaltyTier {
	for i := range tiers {
		if tiers[i].MinPoints > current.MinPoints {
			return &tiers[i]
		}
	}
	return nil
}

// TierProgress is the rounded percentage of the way from the current tier's
// threshold to the next. 100 at the top of the ladder; clamped to [0, 100]
// so a racing points update can never push it out of range.
func TierProgress(points int, current models.LoyaltyTier, next *models.LoyaltyTier) int {
	if next == nil {
		return 100
	}
	span := next.MinPoints - current.MinPoints
	if span <= 0 {
		return 100
	}
	pct := int(math.Round(float64(points-current.MinPoints) / float64(span) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// LoyaltyStatus is the loyalty read payload: the stored profile plus the
// derived tier position.
type LoyaltyStatus struct {
	Profile  models.LoyaltyProfile `json:"profile"`
	Tiers    []models.LoyaltyTier  `json:"tiers"`
	Tier     models.LoyaltyTier    `json:"tier"`
	NextTier *models.LoyaltyTier   `json:"nextTier,omitempty"`
	Progress int                   `json:"progress"`
}

type LoyaltyService struct {
	db *gorm.DB
}

func NewLoyaltyService(db *gorm.DB) *LoyaltyService {
	return &LoyaltyService{db: db}
}

func (s *LoyaltyService) Tiers() ([]models.LoyaltyTier, error) {
	var tiers []models.LoyaltyTier
	err := s.db.Order("min_points").Find(&tiers).Error
	return tiers, err
}

// profile loads the user's loyalty record, starting a fresh zero-point one
// when the user has none yet.
func (s *LoyaltyService) profile(userID uint, tiers []models.LoyaltyTier) (*models.LoyaltyProfile, error) {
	var prof models.LoyaltyProfile
	err := s.db.First(&prof, "user_id = ?", userID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		prof = models.LoyaltyProfile{
			UserID: userID,
			Badges: []models.Badge{},
			TierID: ResolveTier(0, tiers).ID,
		}
		if err := s.db.Create(&prof).Error; err != nil {
			return nil, err
		}
	}
	return &prof, nil
}

// GetLoyalty resolves the user's current tier, the next tier, and the
// progress between them. A user with no profile yet reads as a zero-point
// member of the lowest tier.
func (s *LoyaltyService) GetLoyalty(userID uint) (*LoyaltyStatus, error) {
	tiers, err := s.Tiers()
	if err != nil {
		return nil, err
	}
	prof, err := s.profile(userID, tiers)
	if err != nil {
		return nil, err
	}

	current := ResolveTier(prof.Points, tiers)
	next := NextTier(current, tiers)
	return &LoyaltyStatus{
		Profile:  *prof,
		Tiers:    tiers,
		Tier:     current,
		NextTier: next,
		Progress: TierProgress(prof.Points, current, next),
	}, nil
}

// AwardPoints credits points to the user (points only ever increase), bumps
// the daily streak, and re-resolves the tier. Crossing into a new tier
// triggers the promotion mail and a live update; failures on those side
// channels are logged, never surfaced.
func (s *LoyaltyService) AwardPoints(userID uint, points int) (*models.LoyaltyProfile, error) {
	if points <= 0 {
		return nil, errors.New("points award must be positive")
	}
	tiers, err := s.Tiers()
	if err != nil {
		return nil, err
	}
	prof, err := s.profile(userID, tiers)
	if err != nil {
		return nil, err
	}

	before := ResolveTier(prof.Points, tiers)
	prof.Points += points
	if dayStartLocal(time.Now()) != dayStartLocal(prof.UpdatedAt) {
		prof.Streak++
	}
	after := ResolveTier(prof.Points, tiers)
	prof.TierID = after.ID

	if err := s.db.Save(prof).Error; err != nil {
		return nil, err
	}

	if after.ID != before.ID {
		s.announcePromotion(userID, after, prof.Points)
	}
	return prof, nil
}

func (s *LoyaltyService) announcePromotion(userID uint, tier models.LoyaltyTier, points int) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err == nil {
		if err := utils.SendTierPromotionEmail(user.Email, tier.Name, points); err != nil {
			log.Printf("tier promotion mail failed for user %d: %v", userID, err)
		}
	}
	PublishUpdate(userID, "promotion", "You reached "+tier.Name+"!", map[string]any{
		"tierId": tier.ID,
		"points": points,
	})
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}
