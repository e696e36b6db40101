package scenario

import (
	"github.com/rs/zerolog"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
)

// MaliciousAgent fails its counterparties, its transactions are rated 1. It
// never votes guilty.
type MaliciousAgent struct {
	base
}

// NewMaliciousAgent registers a malicious agent.
func NewMaliciousAgent(p protocol.Protocol, name string, stake float64, logger zerolog.Logger) (*MaliciousAgent, error) {
	b, err := newBase(p, name, stake, logger)
	if err != nil {
		return nil, err
	}
	return &MaliciousAgent{base: b}, nil
}

// Act implements Actor.
func (a *MaliciousAgent) Act(round int) error {
	to, ok := a.counterparty(round)
	if !ok {
		return nil
	}
	return a.transact(a.address(), to, 10, 1, "never delivered")
}

// Judge implements Actor.
func (a *MaliciousAgent) Judge(types.CouncilCase, []types.Attestation) bool {
	return false
}

// Predict implements Actor.
func (a *MaliciousAgent) Predict(string) types.Side {
	return types.Yes
}
