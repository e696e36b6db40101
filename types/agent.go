package types

import "fmt"

// DefaultScoreWeights returns the weights of the reputation formula.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Rating:      20,
		Stake:       0.1,
		Transaction: 2,
		Oracle:      5,
		Council:     3,
	}
}

type tierBand struct {
	tier Tier
	min  float64
}

// lower bounds of the tiers, in ascending order. A tier spans from its bound
// up to the next one, excluded.
var tierBands = []tierBand{
	{Newcomer, 0},
	{Trusted, 30},
	{Established, 70},
	{Elite, 100},
	{Legendary, 200},
}

// TierOf returns the tier of the band containing score. Scores below zero
// are reported as Newcomer.
func TierOf(score float64) Tier {
	for i := len(tierBands) - 1; i >= 0; i-- {
		if score >= tierBands[i].min {
			return tierBands[i].tier
		}
	}
	return Newcomer
}

// TierFloor returns the lowest score of the given tier.
func TierFloor(t Tier) float64 {
	for _, band := range tierBands {
		if band.tier == t {
			return band.min
		}
	}
	return 0
}

// Tiers returns all tiers in ascending order.
func Tiers() []Tier {
	res := make([]Tier, len(tierBands))
	for i, band := range tierBands {
		res[i] = band.tier
	}
	return res
}

// AverageRating returns the mean of the rating values, 0 without ratings.
func (a *Agent) AverageRating() float64 {
	if len(a.Ratings) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range a.Ratings {
		total += r.Value
	}
	return total / float64(len(a.Ratings))
}

// ComputeScore rebuilds the score from the current inputs. An agent without
// any rating scores 0 whatever its stake or activity.
func (a *Agent) ComputeScore(w ScoreWeights) float64 {
	if len(a.Ratings) == 0 {
		return 0
	}
	stakeBonus := (a.Stake + a.DelegatedStake) * w.Stake
	txBonus := float64(a.TransactionCount) * w.Transaction
	oracleBonus := float64(a.OracleRegistrations) * w.Oracle
	councilBonus := float64(a.CouncilVoteCount) * w.Council
	return a.AverageRating()*w.Rating + stakeBonus + txBonus + oracleBonus + councilBonus
}

// Recompute refreshes the derived score and tier.
func (a *Agent) Recompute(w ScoreWeights) {
	a.Score = a.ComputeScore(w)
	a.Tier = TierOf(a.Score)
}

// Copy returns a deep copy of the agent, safe to hand out of the store.
func (a *Agent) Copy() Agent {
	res := *a
	res.Ratings = make([]Rating, len(a.Ratings))
	copy(res.Ratings, a.Ratings)
	if a.Credibility != nil {
		c := *a.Credibility
		res.Credibility = &c
	}
	return res
}

// String implements fmt.Stringer.
func (a Agent) String() string {
	return fmt.Sprintf("agent{name=%s, address=%s, score=%.1f, tier=%s}", a.Name, a.Address, a.Score, a.Tier)
}

// String implements fmt.Stringer.
func (r SlashResult) String() string {
	return fmt.Sprintf("slash{agent=%s, slashed=%.2f, remaining=%.2f, reason=%s}",
		r.Name, r.Slashed, r.Remaining, r.Reason)
}
