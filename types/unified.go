package types

import "math"

// DefaultCredibility is used for agents without an external credibility input.
const DefaultCredibility = 50.0

// the protocol score usually lies in [0, 200]
const unifiedScoreScale = 2.0

// UnifiedScore blends the protocol score with the external credibility score
// supplied by the caller. arpWeight is the share of the protocol score and is
// clamped to [0, 1].
func UnifiedScore(a Agent, arpWeight float64) float64 {
	w := math.Max(0, math.Min(1, arpWeight))
	normalized := math.Min(a.Score/unifiedScoreScale, 100)

	credibility := DefaultCredibility
	if a.Credibility != nil {
		credibility = math.Max(0, *a.Credibility)
	}

	return normalized*w + credibility*(1-w)
}

// UnifiedTier maps a unified score onto the tiers. The unified scale tops out
// at 100, hence its own thresholds.
func UnifiedTier(score float64) Tier {
	switch {
	case score >= 90:
		return Legendary
	case score >= 75:
		return Elite
	case score >= 50:
		return Established
	case score >= 25:
		return Trusted
	default:
		return Newcomer
	}
}
