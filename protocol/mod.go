package protocol

import (
	"time"

	"go.dedis.ch/arp/registry"
	"go.dedis.ch/arp/types"
)

// Protocol is the in-process API of the reputation ledger. A Protocol owns
// every agent, transaction, market, token and council case; all operations
// are synchronous.
type Protocol interface {
	AgentRegistry
	Ledger
	Scoring
	Staking
	OracleService
	MarketService
	TokenService
	Council
}

// Configuration of a protocol instance.
type Configuration struct {
	// Events of the protocol are processed by this registry.
	Registry registry.Registry

	Weights types.ScoreWeights

	// Attestation ratings must lie in [MinRating, MaxRating].
	MinRating int
	MaxRating int

	// Fraction of the stake removed by a slash, in [0, 1].
	SlashFraction float64
	// Value of the synthetic rating appended on slash.
	SlashRating float64

	// Minimum score to be promoted oracle.
	OracleThreshold float64
	// Multiplier applied to oracle ratings.
	OracleWeight float64
	// When true, oracles whose score drops below OracleThreshold lose
	// their status. Eligibility is only checked at promotion otherwise.
	RevokeOracleBelowThreshold bool

	// Number of jurors drawn for a council case.
	JurorCount int

	// Duration used when a market is created without one.
	DefaultMarketDuration time.Duration

	// Source of timestamps.
	Clock func() time.Time
}

// DefaultConfiguration returns the configuration of the reference protocol.
func DefaultConfiguration(reg registry.Registry) Configuration {
	return Configuration{
		Registry:                   reg,
		Weights:                    types.DefaultScoreWeights(),
		MinRating:                  1,
		MaxRating:                  5,
		SlashFraction:              0.5,
		SlashRating:                1,
		OracleThreshold:            types.TierFloor(types.Elite),
		OracleWeight:               2,
		RevokeOracleBelowThreshold: false,
		JurorCount:                 5,
		DefaultMarketDuration:      24 * time.Hour,
		Clock:                      time.Now,
	}
}
