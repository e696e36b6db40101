package scenario

import (
	"github.com/rs/zerolog"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
)

// HonestAgent delivers what it promises, its transactions are rated 5. It
// judges others on its own experience.
type HonestAgent struct {
	base
}

// NewHonestAgent registers an honest agent.
func NewHonestAgent(p protocol.Protocol, name string, stake float64, logger zerolog.Logger) (*HonestAgent, error) {
	b, err := newBase(p, name, stake, logger)
	if err != nil {
		return nil, err
	}
	return &HonestAgent{base: b}, nil
}

// Act implements Actor. It trades with its counterparties in turn.
func (a *HonestAgent) Act(round int) error {
	to, ok := a.counterparty(round)
	if !ok {
		return nil
	}
	return a.transact(a.address(), to, 10, goodRating, "delivered as agreed")
}

// Judge implements Actor.
func (a *HonestAgent) Judge(c types.CouncilCase, history []types.Attestation) bool {
	return hasBadExperience(a.address(), c.Target, history)
}

// Predict implements Actor. Honest agents do not expect anyone to climb on
// bad behaviour.
func (a *HonestAgent) Predict(string) types.Side {
	return types.No
}
