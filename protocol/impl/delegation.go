package impl

import (
	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
)

// implements protocol.Staking
func (n *node) DelegateStake(from, to string, amount float64) (types.Delegation, error) {
	const op = "DelegateStake"

	if !isAmount(amount) || amount == 0 {
		return types.Delegation{}, protocol.Errorf(protocol.InvalidArgument, op, from, "invalid amount %v", amount)
	}

	delegator, ok := n.agents.get(from)
	if !ok {
		return types.Delegation{}, protocol.NewError(protocol.NotFound, op, from)
	}
	beneficiary, ok := n.agents.get(to)
	if !ok {
		return types.Delegation{}, protocol.NewError(protocol.NotFound, op, to)
	}
	if delegator == beneficiary {
		return types.Delegation{}, protocol.Errorf(protocol.InvalidArgument, op, from, "cannot delegate to itself")
	}

	unlock := lockPair(delegator, beneficiary)

	if delegator.agent.Stake < amount {
		stake := delegator.agent.Stake
		unlock()
		return types.Delegation{}, protocol.Errorf(protocol.InsufficientStake, op, from,
			"stake %.2f lower than %.2f", stake, amount)
	}

	delegator.agent.Stake -= amount
	beneficiary.agent.DelegatedStake += amount

	d := types.Delegation{
		From:      from,
		To:        to,
		Amount:    amount,
		Timestamp: n.now(),
	}
	n.delegations.Append(d)

	evts := []types.Event{types.StakeDelegatedEvent{Delegation: d}}
	evts = append(evts, n.recompute(&beneficiary.agent)...)
	evts = append(evts, n.recompute(&delegator.agent)...)

	unlock()

	log.Info().Msgf("%s delegated %.2f to %s", from, amount, to)

	n.emit(evts...)
	return d, nil
}

// implements protocol.Staking
func (n *node) Delegations() []types.Delegation {
	return n.delegations.Elements()
}
