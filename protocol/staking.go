package protocol

import "go.dedis.ch/arp/types"

// Staking lets an agent stake on behalf of another one.
type Staking interface {
	// DelegateStake moves 'amount' from the stake of 'from' to the delegated
	// stake of 'to'. Delegations cannot be undone.
	DelegateStake(from, to string, amount float64) (types.Delegation, error)

	Delegations() []types.Delegation
}
