package scenario

import (
	"github.com/rs/zerolog"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

// SybilAgent exists to inflate its parent: it delegates its whole stake to
// the parent and only trades with it, rating the parent 5.
type SybilAgent struct {
	base
	parent string
}

// NewSybilAgent registers a sybil of parent and delegates its stake to it.
func NewSybilAgent(p protocol.Protocol, name string, stake float64, parent string, logger zerolog.Logger) (*SybilAgent, error) {
	if parent == "" {
		return nil, xerrors.Errorf("sybil %s: parent is missing", name)
	}

	b, err := newBase(p, name, stake, logger)
	if err != nil {
		return nil, err
	}

	if stake > 0 {
		_, err = p.DelegateStake(b.address(), parent, stake)
		if err != nil {
			return nil, xerrors.Errorf("sybil %s failed to delegate: %v", name, err)
		}
	}

	return &SybilAgent{base: b, parent: parent}, nil
}

// Act implements Actor.
func (a *SybilAgent) Act(int) error {
	return a.transact(a.parent, a.address(), 10, goodRating, "excellent partner")
}

// Judge implements Actor. The parent is never guilty.
func (a *SybilAgent) Judge(c types.CouncilCase, history []types.Attestation) bool {
	if a.isParent(c.Target) {
		return false
	}
	return hasBadExperience(a.address(), c.Target, history)
}

// Predict implements Actor.
func (a *SybilAgent) Predict(target string) types.Side {
	return types.Side(a.isParent(target))
}

func (a *SybilAgent) isParent(addr string) bool {
	return addr == a.parent
}
