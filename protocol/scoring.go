package protocol

import "go.dedis.ch/arp/types"

// Scoring exposes the operations of the scoring engine that are not
// triggered by another subsystem.
type Scoring interface {
	// Slash removes a fraction of the agent's own stake and records a
	// synthetic low rating.
	Slash(address, reason string) (types.SlashResult, error)

	// UnifiedScore blends the agent's score with its external credibility.
	UnifiedScore(address string, arpWeight float64) (float64, types.Tier, error)
}
