package utils

import (
	"math"
	"strings"
)

// Sentiment bands used to bucket reviews for display. The three bands
// partition [-1, 1]: Joyful >= 0.6, Balanced in [0.2, 0.6), Constructive
// below 0.2.
const (
	BandJoyful       = "Joyful"
	BandBalanced     = "Balanced"
	BandConstructive = "Constructive"
)

// Word lists tuned for food-service reviews. Matching is on whole lowercase
// tokens, so "tasteless" never hits "taste".
var positiveWords = map[string]struct{}{
	"delicious": {}, "amazing": {}, "tasty": {}, "fresh": {}, "love": {},
	"loved": {}, "perfect": {}, "great": {}, "excellent": {}, "divine": {},
	"wonderful": {}, "fantastic": {}, "authentic": {}, "flavorful": {},
	"comforting": {}, "generous": {}, "crisp": {}, "aromatic": {},
	"favorite": {}, "best": {}, "good": {}, "heavenly": {}, "rich": {},
	"balanced": {}, "tender": {}, "vibrant": {},
}

var negativeWords = map[string]struct{}{
	"bland": {}, "stale": {}, "soggy": {}, "cold": {}, "awful": {},
	"terrible": {}, "disappointing": {}, "disappointed": {}, "greasy": {},
	"overpriced": {}, "salty": {}, "undercooked": {}, "overcooked": {},
	"burnt": {}, "dry": {}, "bad": {}, "worst": {}, "tasteless": {},
	"slow": {}, "rude": {}, "mediocre": {}, "inedible": {},
}

var negators = map[string]struct{}{
	"not": {}, "never": {}, "no": {}, "hardly": {},
}

// AnalyzeSentiment scores free text into [-1, 1]. Purely lexical: each
// positive token counts +1, each negative -1, and a directly preceding
// negator flips the token's sign. Empty or neutral text scores 0. The
// smoothing denominator keeps the score bounded and strictly increasing as
// more positive tokens are added.
func AnalyzeSentiment(text string) float64 {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '\''
	})
	if len(tokens) == 0 {
		return 0
	}

	var pos, neg float64
	negated := false
	for _, tok := range tokens {
		if _, ok := negators[tok]; ok {
			negated = true
			continue
		}
		if _, ok := positiveWords[tok]; ok {
			if negated {
				neg++
			} else {
				pos++
			}
		} else if _, ok := negativeWords[tok]; ok {
			if negated {
				pos++
			} else {
				neg++
			}
		}
		negated = false
	}

	if pos == 0 && neg == 0 {
		return 0
	}
	score := (pos - neg) / (pos + neg + 2)
	return clampScore(round2(score))
}

// SentimentBand maps a score to its display band. Total over [-1, 1]:
// every score lands in exactly one band.
func SentimentBand(score float64) string {
	switch {
	case score >= 0.6:
		return BandJoyful
	case score >= 0.2:
		return BandBalanced
	default:
		return BandConstructive
	}
}

func clampScore(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
