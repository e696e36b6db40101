package protocol

import "go.dedis.ch/arp/types"

// SortKey orders the agents returned by ListAgents.
type SortKey string

const (
	// descending score
	SortByScore SortKey = "score"
	// descending own stake
	SortByStake SortKey = "stake"
	// descending transaction count
	SortByTransactions SortKey = "transactions"
	// ascending name
	SortByName SortKey = "name"
)

// RegisterOptions carries the read-only inputs of external collaborators
// (identity verification, credibility feeds). The protocol never queries
// those collaborators itself.
type RegisterOptions struct {
	Verified    bool
	Credibility *float64
}

type RegisterOption func(*RegisterOptions)

// WithVerifiedIdentity flags the agent's identity as verified by the caller.
func WithVerifiedIdentity(verified bool) RegisterOption {
	return func(o *RegisterOptions) {
		o.Verified = verified
	}
}

// WithCredibility attaches an external credibility score to the agent.
func WithCredibility(score float64) RegisterOption {
	return func(o *RegisterOptions) {
		o.Credibility = &score
	}
}

// AgentRegistry owns the per-agent records. Agents are never deleted.
type AgentRegistry interface {
	// RegisterAgent creates an agent with the given starting stake and a
	// freshly generated address.
	RegisterAgent(name string, initialStake float64, opts ...RegisterOption) (types.Agent, error)

	// GetAgent returns a copy of the agent record.
	GetAgent(address string) (types.Agent, error)

	// ListAgents returns copies of all agents ordered by key.
	ListAgents(key SortKey) ([]types.Agent, error)

	// Leaderboard returns the 'limit' best agents by score. A negative limit
	// returns every agent.
	Leaderboard(limit int) []types.Agent

	// TierDistribution counts the agents of each tier.
	TierDistribution() map[types.Tier]int
}
