package types

import "time"

// Tier is a named reputation band derived from the score.
type Tier string

const (
	Newcomer    Tier = "NEWCOMER"
	Trusted     Tier = "TRUSTED"
	Established Tier = "ESTABLISHED"
	Elite       Tier = "ELITE"
	Legendary   Tier = "LEGENDARY"
)

// RatingKind tells where a rating comes from.
type RatingKind string

const (
	AttestationRating RatingKind = "attestation"
	OracleRating      RatingKind = "oracle"
	SlashRating       RatingKind = "slash"
)

// Rating is an immutable entry of an agent's rating history.
type Rating struct {
	Value    float64
	Feedback string
	// tx hash or event id the rating originates from
	Reference string
	Kind      RatingKind
	Timestamp time.Time
}

// Agent is the per-agent record of the protocol.
// Score and Tier are derived, use Recompute to refresh them.
type Agent struct {
	Name    string
	Address string

	// own capital at risk
	Stake float64
	// capital staked on this agent by others
	DelegatedStake float64

	TransactionCount uint
	Ratings          []Rating

	Score float64
	Tier  Tier

	OracleStatus bool
	// number of accepted oracle registrations, 0 or 1
	OracleRegistrations uint
	CouncilVoteCount    uint

	// latest minted reputation token, empty if none
	TokenID string

	// read-only inputs supplied by external collaborators
	Verified    bool
	Credibility *float64

	RegisteredAt time.Time
}

// ScoreWeights holds the constants of the scoring formula.
type ScoreWeights struct {
	Rating      float64
	Stake       float64
	Transaction float64
	Oracle      float64
	Council     float64
}

// SlashResult is returned when part of an agent's stake is forfeited.
type SlashResult struct {
	Address   string
	Name      string
	Slashed   float64
	Remaining float64
	Reason    string
}
