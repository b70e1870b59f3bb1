package services

import (
	"testing"

	"rasaroots/models"
)

func ladder() []models.LoyaltyTier {
	return []models.LoyaltyTier{
		{ID: "bronze", Name: "Bronze", MinPoints: 0},
		{ID: "silver", Name: "Silver", MinPoints: 200},
		{ID: "gold", Name: "Gold", MinPoints: 500},
		{ID: "saffron-elite", Name: "Saffron Elite", MinPoints: 1200},
	}
}

func TestResolveTier(t *testing.T) {
	tiers := ladder()
	cases := []struct {
		points int
		want   string
	}{
		{0, "bronze"},
		{50, "bronze"},
		{199, "bronze"},
		{200, "silver"},
		{499, "silver"},
		{500, "gold"},
		{1200, "saffron-elite"},
		{99999, "saffron-elite"},
	}
	for _, tc := range cases {
		if got := ResolveTier(tc.points, tiers); got.ID != tc.want {
			t.Fatalf("ResolveTier(%d) = %q, want %q", tc.points, got.ID, tc.want)
		}
	}
}

func TestResolveTier_FallsBackToLowest(t *testing.T) {
	tiers := []models.LoyaltyTier{
		{ID: "silver", MinPoints: 200},
		{ID: "gold", MinPoints: 500},
	}
	if got := ResolveTier(50, tiers); got.ID != "silver" {
		t.Fatalf("points below every threshold resolved to %q, want lowest tier", got.ID)
	}
}

func TestResolveTier_EmptyLadder(t *testing.T) {
	if got := ResolveTier(500, nil); got.ID != "" {
		t.Fatalf("expected zero tier for empty ladder, got %q", got.ID)
	}
}

func TestNextTier(t *testing.T) {
	tiers := ladder()

	next := NextTier(tiers[0], tiers)
	if next == nil || next.ID != "silver" {
		t.Fatalf("next after bronze = %v, want silver", next)
	}
	next = NextTier(tiers[2], tiers)
	if next == nil || next.ID != "saffron-elite" {
		t.Fatalf("next after gold = %v, want saffron-elite", next)
	}
	if next = NextTier(tiers[3], tiers); next != nil {
		t.Fatalf("top tier has a successor: %v", next)
	}
}

func TestTierProgress(t *testing.T) {
	tiers := ladder()
	bronze, silver := tiers[0], tiers[1]

	if got := TierProgress(50, bronze, &silver); got != 25 {
		t.Fatalf("50 points toward silver: progress = %d, want 25", got)
	}
	if got := TierProgress(0, bronze, &silver); got != 0 {
		t.Fatalf("at threshold: progress = %d, want 0", got)
	}
	if got := TierProgress(200, bronze, &silver); got != 100 {
		t.Fatalf("at next threshold: progress = %d, want 100", got)
	}
	if got := TierProgress(2000, tiers[3], nil); got != 100 {
		t.Fatalf("top of ladder: progress = %d, want 100", got)
	}
}

func TestTierProgress_Clamped(t *testing.T) {
	tiers := ladder()
	bronze, silver := tiers[0], tiers[1]

	if got := TierProgress(-10, bronze, &silver); got != 0 {
		t.Fatalf("below threshold: progress = %d, want 0", got)
	}
	if got := TierProgress(250, bronze, &silver); got != 100 {
		t.Fatalf("beyond next threshold: progress = %d, want 100", got)
	}
}
