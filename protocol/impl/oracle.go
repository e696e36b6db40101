package impl

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
)

// Eligibility is checked once, at promotion. Unless the configuration
// revokes them, oracles stay oracles whatever their later score.
//
// implements protocol.OracleService
func (n *node) RegisterOracle(address string) (types.Agent, error) {
	const op = "RegisterOracle"

	e, ok := n.agents.get(address)
	if !ok {
		return types.Agent{}, protocol.NewError(protocol.NotFound, op, address)
	}

	e.Lock()

	a := &e.agent
	if a.OracleStatus {
		res := a.Copy()
		e.Unlock()
		return res, nil
	}

	if a.Score < n.conf.OracleThreshold {
		score := a.Score
		e.Unlock()
		return types.Agent{}, protocol.Errorf(protocol.NotEligible, op, address,
			"score %.1f below %.1f", score, n.conf.OracleThreshold)
	}

	a.OracleStatus = true
	a.OracleRegistrations = 1
	n.oracles.Add(address)

	evts := []types.Event{types.OraclePromotedEvent{Address: address, Score: a.Score}}
	evts = append(evts, n.recompute(a)...)
	res := a.Copy()

	e.Unlock()

	log.Info().Msgf("%s promoted oracle with score %.1f", res.Name, res.Score)

	n.emit(evts...)
	return res, nil
}

// implements protocol.OracleService
func (n *node) OracleAttest(oracle, target string, rating int, evidence string) (types.Rating, error) {
	const op = "OracleAttest"

	if rating < n.conf.MinRating || rating > n.conf.MaxRating {
		return types.Rating{}, protocol.Errorf(protocol.InvalidArgument, op, target,
			"rating %d out of [%d, %d]", rating, n.conf.MinRating, n.conf.MaxRating)
	}
	if !n.oracles.Contains(oracle) {
		return types.Rating{}, protocol.NewError(protocol.NotAnOracle, op, oracle)
	}

	e, ok := n.agents.get(target)
	if !ok {
		return types.Rating{}, protocol.NewError(protocol.NotFound, op, target)
	}

	r := types.Rating{
		Value:     float64(rating) * n.conf.OracleWeight,
		Feedback:  fmt.Sprintf("[ORACLE] %s", evidence),
		Reference: newID(oraclePrefix),
		Kind:      types.OracleRating,
		Timestamp: n.now(),
	}

	e.Lock()
	e.agent.Ratings = append(e.agent.Ratings, r)
	evts := []types.Event{types.OracleAttestedEvent{
		Oracle:    oracle,
		Target:    target,
		Value:     r.Value,
		Evidence:  evidence,
		Reference: r.Reference,
	}}
	evts = append(evts, n.recompute(&e.agent)...)
	e.Unlock()

	n.emit(evts...)
	return r, nil
}

// implements protocol.OracleService
func (n *node) Oracles() []string {
	res := n.oracles.Values().ToArray()
	sort.Strings(res)
	return res
}
