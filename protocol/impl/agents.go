package impl

import (
	"math"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/datastructures"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

// implements protocol.AgentRegistry
func (n *node) RegisterAgent(name string, initialStake float64, opts ...protocol.RegisterOption) (types.Agent, error) {
	const op = "RegisterAgent"

	if name == "" {
		return types.Agent{}, protocol.Errorf(protocol.InvalidArgument, op, "", "empty name")
	}
	if !isAmount(initialStake) {
		return types.Agent{}, protocol.Errorf(protocol.InvalidArgument, op, name, "invalid stake %v", initialStake)
	}

	options := protocol.RegisterOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	agent := types.Agent{
		Name:         name,
		Address:      newAddress(),
		Stake:        initialStake,
		Ratings:      make([]types.Rating, 0),
		Verified:     options.Verified,
		Credibility:  options.Credibility,
		RegisteredAt: n.now(),
	}
	agent.Recompute(n.conf.Weights)

	if !n.agents.add(agent) {
		log.Error().Msgf("generated address %s is already registered", agent.Address)
		return types.Agent{}, xerrors.Errorf("%s: %w", op, ErrCollision)
	}

	log.Info().Msgf("registered agent %s at %s with stake %.2f", name, agent.Address, initialStake)

	n.emit(types.AgentRegisteredEvent{
		Address:   agent.Address,
		AgentName: agent.Name,
		Stake:     agent.Stake,
	})

	return agent.Copy(), nil
}

// implements protocol.AgentRegistry
func (n *node) GetAgent(address string) (types.Agent, error) {
	e, ok := n.agents.get(address)
	if !ok {
		return types.Agent{}, protocol.NewError(protocol.NotFound, "GetAgent", address)
	}
	return e.snapshot(), nil
}

// implements protocol.AgentRegistry
func (n *node) ListAgents(key protocol.SortKey) ([]types.Agent, error) {
	if key == "" {
		key = protocol.SortByScore
	}

	less, ok := agentOrders[key]
	if !ok {
		return nil, protocol.Errorf(protocol.InvalidArgument, "ListAgents", string(key), "unknown sort key")
	}

	return datastructures.TopN(n.agents.snapshot(), -1, less), nil
}

// implements protocol.AgentRegistry
func (n *node) Leaderboard(limit int) []types.Agent {
	return datastructures.TopN(n.agents.snapshot(), limit, byScore)
}

// implements protocol.AgentRegistry
func (n *node) TierDistribution() map[types.Tier]int {
	res := make(map[types.Tier]int)
	for _, t := range types.Tiers() {
		res[t] = 0
	}
	for _, a := range n.agents.snapshot() {
		res[a.Tier]++
	}
	return res
}

// orderings of ListAgents, ties are broken by address
var agentOrders = map[protocol.SortKey]func(a, b types.Agent) bool{
	protocol.SortByScore: byScore,
	protocol.SortByStake: func(a, b types.Agent) bool {
		if a.Stake != b.Stake {
			return a.Stake > b.Stake
		}
		return a.Address < b.Address
	},
	protocol.SortByTransactions: func(a, b types.Agent) bool {
		if a.TransactionCount != b.TransactionCount {
			return a.TransactionCount > b.TransactionCount
		}
		return a.Address < b.Address
	},
	protocol.SortByName: func(a, b types.Agent) bool {
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Address < b.Address
	},
}

func byScore(a, b types.Agent) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Address < b.Address
}

// returns true iff v is a finite, non-negative amount
func isAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
