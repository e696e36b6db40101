package types

import "time"

// TokenTransfer records a change of owner of a reputation token.
type TokenTransfer struct {
	From      string
	To        string
	Timestamp time.Time
}

// ReputationToken is a detached, transferable snapshot of an agent's score.
// It does not follow the live score of its source agent.
type ReputationToken struct {
	ID        string
	Agent     string
	AgentName string
	Score     float64
	Tier      Tier
	Owner     string
	MintedAt  time.Time
	Transfers []TokenTransfer
}
