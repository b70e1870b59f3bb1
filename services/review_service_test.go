package services

import (
	"testing"

	"rasaroots/models"
	"rasaroots/utils"
)

func TestInitReviews_WiresOneSharedInstance(t *testing.T) {
	InitReviews(nil)
	first := ActiveReviewService()
	if first == nil {
		t.Fatalf("review service not wired")
	}
	if ActiveReviewService() != first {
		t.Fatalf("expected the same instance on every lookup")
	}
}

func TestCountBands_PartitionsReviews(t *testing.T) {
	reviews := []models.Review{
		{ID: "r1", SentimentScore: 0.8},
		{ID: "r2", SentimentScore: 0.6},
		{ID: "r3", SentimentScore: 0.35},
		{ID: "r4", SentimentScore: 0.2},
		{ID: "r5", SentimentScore: 0.19},
		{ID: "r6", SentimentScore: 0},
		{ID: "r7", SentimentScore: -0.5},
	}

	got := CountBands(reviews)
	if len(got) != 3 {
		t.Fatalf("expected 3 bands, got %d", len(got))
	}
	if got[0].Band != utils.BandJoyful || got[0].Count != 2 {
		t.Fatalf("joyful = %+v, want count 2", got[0])
	}
	if got[1].Band != utils.BandBalanced || got[1].Count != 2 {
		t.Fatalf("balanced = %+v, want count 2", got[1])
	}
	if got[2].Band != utils.BandConstructive || got[2].Count != 3 {
		t.Fatalf("constructive = %+v, want count 3", got[2])
	}

	total := got[0].Count + got[1].Count + got[2].Count
	if total != len(reviews) {
		t.Fatalf("bands cover %d reviews, want %d", total, len(reviews))
	}
}

func TestCountBands_EmptyInputKeepsDisplayOrder(t *testing.T) {
	got := CountBands(nil)
	want := []string{utils.BandJoyful, utils.BandBalanced, utils.BandConstructive}
	if len(got) != 3 {
		t.Fatalf("expected 3 bands, got %d", len(got))
	}
	for i, bc := range got {
		if bc.Band != want[i] || bc.Count != 0 {
			t.Fatalf("band %d = %+v, want %q with count 0", i, bc, want[i])
		}
	}
}
