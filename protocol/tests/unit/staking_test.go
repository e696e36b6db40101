package unit

import (
	"testing"

	"github.com/stretchr/testify/require"
	z "go.dedis.ch/arp/internal/testing"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

func Test_Staking_Delegate(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 10)
	p.MustTransact(b.Address, a.Address, 5)

	d, err := p.DelegateStake(a.Address, b.Address, 4)
	require.NoError(t, err)
	require.Equal(t, a.Address, d.From)
	require.Equal(t, b.Address, d.To)
	require.Equal(t, 4.0, d.Amount)

	a = p.MustAgent(a.Address)
	b = p.MustAgent(b.Address)
	require.Equal(t, 6.0, a.Stake)
	require.Equal(t, 10.0, b.Stake)
	require.Equal(t, 4.0, b.DelegatedStake)
	// delegated stake counts in the score of the beneficiary
	require.InDelta(t, 100+14*0.1+2, b.Score, 1e-9)

	require.Equal(t, []types.Delegation{d}, p.Delegations())
	require.Len(t, p.EventsNamed(types.StakeDelegatedEvent{}.Name()), 1)
}

// A rejected delegation leaves both agents unchanged.
func Test_Staking_Delegate_Insufficient(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 0)

	_, err := p.DelegateStake(a.Address, b.Address, 20)
	require.True(t, xerrors.Is(err, protocol.ErrInsufficientStake))

	require.Equal(t, a, p.MustAgent(a.Address))
	require.Equal(t, b, p.MustAgent(b.Address))
	require.Empty(t, p.Delegations())
}

func Test_Staking_Delegate_Invalid(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 0)

	_, err := p.DelegateStake(a.Address, a.Address, 1)
	require.True(t, xerrors.Is(err, protocol.ErrInvalidArgument))

	_, err = p.DelegateStake(a.Address, b.Address, 0)
	require.True(t, xerrors.Is(err, protocol.ErrInvalidArgument))

	_, err = p.DelegateStake(a.Address, "0xnobody", 1)
	require.True(t, xerrors.Is(err, protocol.ErrNotFound))

	_, err = p.DelegateStake("0xnobody", b.Address, 1)
	require.True(t, xerrors.Is(err, protocol.ErrNotFound))

	require.Equal(t, 10.0, p.MustAgent(a.Address).Stake)
}

// The whole stake can be delegated.
func Test_Staking_Delegate_All(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 0)

	_, err := p.DelegateStake(a.Address, b.Address, 10)
	require.NoError(t, err)
	require.Equal(t, 0.0, p.MustAgent(a.Address).Stake)

	_, err = p.DelegateStake(a.Address, b.Address, 1)
	require.True(t, xerrors.Is(err, protocol.ErrInsufficientStake))
}
