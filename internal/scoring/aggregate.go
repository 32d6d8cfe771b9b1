package scoring

import "math"

// Weights holds the signal weights for the two aggregation modes. They are
// injected so dictionaries and weights can be tuned without touching the
// aggregation logic.
type Weights struct {
	FullKeywords  float64
	FullFormat    float64
	FullSemantic  float64
	QuickKeywords float64
	QuickFormat   float64
}

// DefaultWeights returns the standard 40/30/30 full weighting and 60/40 quick
// weighting.
func DefaultWeights() Weights {
	return Weights{
		FullKeywords:  0.4,
		FullFormat:    0.3,
		FullSemantic:  0.3,
		QuickKeywords: 0.6,
		QuickFormat:   0.4,
	}
}

// Combine produces the overall score from all three signals. Rounding happens
// once, on the final weighted sum.
func (w Weights) Combine(keywordScore, formatScore, semanticScore int) int {
	return roundHalfUp(float64(keywordScore)*w.FullKeywords +
		float64(formatScore)*w.FullFormat +
		float64(semanticScore)*w.FullSemantic)
}

// CombineQuick produces the overall score from the two deterministic signals.
func (w Weights) CombineQuick(keywordScore, formatScore int) int {
	return roundHalfUp(float64(keywordScore)*w.QuickKeywords +
		float64(formatScore)*w.QuickFormat)
}

// strengthFor maps a fit score to its qualitative tier.
func strengthFor(score int) MatchStrength {
	switch {
	case score >= 75:
		return MatchStrong
	case score >= 50:
		return MatchModerate
	default:
		return MatchWeak
	}
}

// roundHalfUp rounds to the nearest integer with ties going up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
