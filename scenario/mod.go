package scenario

import (
	"github.com/rs/zerolog"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

// Actor is an agent whose behaviour is scripted.
type Actor interface {
	// Agent returns the record of the agent at registration.
	Agent() types.Agent
	// Act plays one round.
	Act(round int) error
	// Judge returns the vote of the actor when it sits on the case.
	Judge(c types.CouncilCase, history []types.Attestation) bool
	// Predict returns the side the actor bets on a market about target.
	Predict(target string) types.Side
}

// base gathers what every actor needs to drive the protocol
type base struct {
	proto  protocol.Protocol
	agent  types.Agent
	logger zerolog.Logger

	counterparties []string
}

func newBase(p protocol.Protocol, name string, stake float64, logger zerolog.Logger) (base, error) {
	agent, err := p.RegisterAgent(name, stake)
	if err != nil {
		return base{}, xerrors.Errorf("failed to register %s: %v", name, err)
	}

	return base{
		proto:  p,
		agent:  agent,
		logger: logger.With().Str("agent", name).Logger(),
	}, nil
}

func (b *base) Agent() types.Agent {
	return b.agent
}

func (b *base) address() string {
	return b.agent.Address
}

func (b *base) setCounterparties(addrs []string) {
	b.counterparties = addrs
}

// returns the counterparty of the given round, false without any
func (b *base) counterparty(round int) (string, bool) {
	if len(b.counterparties) == 0 {
		return "", false
	}
	return b.counterparties[round%len(b.counterparties)], true
}

// submits a transaction from -> to and attests it
func (b *base) transact(from, to string, amount float64, rating int, feedback string) error {
	tx, err := b.proto.SubmitTransaction(from, to, amount)
	if err != nil {
		return xerrors.Errorf("failed to submit transaction: %v", err)
	}

	_, err = b.proto.Attest(tx.Hash, rating, feedback)
	if err != nil {
		return xerrors.Errorf("failed to attest %s: %v", tx.Hash, err)
	}

	b.logger.Debug().Msgf("transaction %s -> %s rated %d", from, to, rating)
	return nil
}

// returns true iff the target delivered badly to the actor itself
func hasBadExperience(self, target string, history []types.Attestation) bool {
	for _, att := range history {
		if att.From == target && att.To == self && att.Rating <= badRating {
			return true
		}
	}
	return false
}

const (
	goodRating = 5
	badRating  = 2
)
