package impl

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
)

// Rebuilds the score and tier of a locked agent from its inputs. Returns the
// events to emit once the lock is released.
func (n *node) recompute(a *types.Agent) []types.Event {
	oldScore, oldTier := a.Score, a.Tier
	evts := make([]types.Event, 0, 2)

	a.Recompute(n.conf.Weights)

	if n.conf.RevokeOracleBelowThreshold && a.OracleStatus && a.Score < n.conf.OracleThreshold {
		a.OracleStatus = false
		a.OracleRegistrations = 0
		a.Recompute(n.conf.Weights)
		n.oracles.Remove(a.Address)

		log.Info().Msgf("oracle %s revoked, score %.1f below %.1f", a.Address, a.Score, n.conf.OracleThreshold)
		evts = append(evts, types.OracleRevokedEvent{Address: a.Address, Score: a.Score})
	}

	if oldScore != a.Score || oldTier != a.Tier {
		evts = append(evts, types.ScoreUpdatedEvent{
			Address:  a.Address,
			OldScore: oldScore,
			Score:    a.Score,
			OldTier:  oldTier,
			Tier:     a.Tier,
		})
	}

	return evts
}

// implements protocol.Scoring
func (n *node) Slash(address, reason string) (types.SlashResult, error) {
	res, evts, err := n.slash("Slash", address, reason, slashRef)
	if err != nil {
		return types.SlashResult{}, err
	}
	n.emit(evts...)
	return res, nil
}

// removes the configured fraction of the agent's own stake and appends the
// synthetic slash rating
func (n *node) slash(op, address, reason, reference string) (types.SlashResult, []types.Event, error) {
	e, ok := n.agents.get(address)
	if !ok {
		return types.SlashResult{}, nil, protocol.NewError(protocol.NotFound, op, address)
	}

	e.Lock()
	defer e.Unlock()

	a := &e.agent
	amount := a.Stake * n.conf.SlashFraction
	a.Stake -= amount
	if a.Stake < 0 {
		a.Stake = 0
	}

	a.Ratings = append(a.Ratings, types.Rating{
		Value:     n.conf.SlashRating,
		Feedback:  fmt.Sprintf("Slashed for: %s", reason),
		Reference: reference,
		Kind:      types.SlashRating,
		Timestamp: n.now(),
	})

	evts := n.recompute(a)

	res := types.SlashResult{
		Address:   a.Address,
		Name:      a.Name,
		Slashed:   amount,
		Remaining: a.Stake,
		Reason:    reason,
	}

	log.Info().Msgf("slashed %s: %.2f removed, %.2f remaining (%s)", a.Name, amount, a.Stake, reason)

	evts = append([]types.Event{types.SlashedEvent{Result: res}}, evts...)
	return res, evts, nil
}

// implements protocol.Scoring
func (n *node) UnifiedScore(address string, arpWeight float64) (float64, types.Tier, error) {
	const op = "UnifiedScore"

	if math.IsNaN(arpWeight) {
		return 0, types.Newcomer, protocol.Errorf(protocol.InvalidArgument, op, address, "invalid weight %v", arpWeight)
	}

	e, ok := n.agents.get(address)
	if !ok {
		return 0, types.Newcomer, protocol.NewError(protocol.NotFound, op, address)
	}

	score := types.UnifiedScore(e.snapshot(), arpWeight)
	return score, types.UnifiedTier(score), nil
}
