package unit

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	z "go.dedis.ch/arp/internal/testing"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

func Test_Market_Create(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := z.NewTestProtocol(t, z.WithClock(z.FixedClock(start, 0)))

	a := p.MustRegister("alice", 10)

	m, err := p.CreateMarket(a.Address, "alice reaches Elite", 48)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(m.ID, "MARKET-"))
	require.Equal(t, 48, m.DurationHours)
	require.Equal(t, start.Add(48*time.Hour), m.ClosesAt)
	require.False(t, m.Resolved)

	// no duration means the default one
	m, err = p.CreateMarket(a.Address, "alice stays Newcomer", 0)
	require.NoError(t, err)
	require.Equal(t, 24, m.DurationHours)

	_, err = p.CreateMarket("0xnobody", "", 1)
	require.True(t, xerrors.Is(err, protocol.ErrNotFound))

	require.Len(t, p.Markets(), 2)
}

func Test_Market_Resolve_Payouts(t *testing.T) {
	p := z.NewTestProtocol(t)

	target := p.MustRegister("target", 10)
	x := p.MustRegister("x", 10)
	y := p.MustRegister("y", 10)
	w := p.MustRegister("w", 10)

	m, err := p.CreateMarket(target.Address, "", 1)
	require.NoError(t, err)

	_, err = p.PlaceBet(m.ID, x.Address, 30, types.Yes)
	require.NoError(t, err)
	_, err = p.PlaceBet(m.ID, y.Address, 10, types.Yes)
	require.NoError(t, err)
	_, err = p.PlaceBet(m.ID, w.Address, 20, types.No)
	require.NoError(t, err)

	res, err := p.ResolveMarket(m.ID, true)
	require.NoError(t, err)
	require.Equal(t, 40.0, res.TotalYes)
	require.Equal(t, 20.0, res.TotalNo)
	require.Equal(t, 0.0, res.Unclaimed)
	require.Equal(t, []types.Payout{
		{Bettor: x.Address, Amount: 45},
		{Bettor: y.Address, Amount: 15},
	}, res.Payouts)

	m, err = p.GetMarket(m.ID)
	require.NoError(t, err)
	require.True(t, m.Resolved)
	require.True(t, m.Outcome)

	// bets are not reputation inputs
	require.Equal(t, 10.0, p.MustAgent(x.Address).Stake)
}

// Nobody bet on the winning side: no payout, the pool is unclaimed.
func Test_Market_Resolve_Empty_Winning_Pool(t *testing.T) {
	p := z.NewTestProtocol(t)

	target := p.MustRegister("target", 10)
	x := p.MustRegister("x", 10)
	y := p.MustRegister("y", 10)

	m, err := p.CreateMarket(target.Address, "", 1)
	require.NoError(t, err)

	_, err = p.PlaceBet(m.ID, x.Address, 10, types.Yes)
	require.NoError(t, err)
	_, err = p.PlaceBet(m.ID, y.Address, 5, types.Yes)
	require.NoError(t, err)

	res, err := p.ResolveMarket(m.ID, false)
	require.NoError(t, err)
	require.Empty(t, res.Payouts)
	require.Equal(t, 15.0, res.Unclaimed)
}

// Nobody bet on the losing side: winners get their principal back.
func Test_Market_Resolve_Empty_Losing_Pool(t *testing.T) {
	p := z.NewTestProtocol(t)

	target := p.MustRegister("target", 10)
	x := p.MustRegister("x", 10)

	m, err := p.CreateMarket(target.Address, "", 1)
	require.NoError(t, err)

	_, err = p.PlaceBet(m.ID, x.Address, 7, types.No)
	require.NoError(t, err)

	res, err := p.ResolveMarket(m.ID, false)
	require.NoError(t, err)
	require.Equal(t, []types.Payout{{Bettor: x.Address, Amount: 7}}, res.Payouts)
}

func Test_Market_Resolved_Once(t *testing.T) {
	p := z.NewTestProtocol(t)

	target := p.MustRegister("target", 10)
	x := p.MustRegister("x", 10)

	m, err := p.CreateMarket(target.Address, "", 1)
	require.NoError(t, err)

	_, err = p.ResolveMarket(m.ID, true)
	require.NoError(t, err)

	_, err = p.ResolveMarket(m.ID, false)
	require.True(t, xerrors.Is(err, protocol.ErrAlreadyResolved))

	_, err = p.PlaceBet(m.ID, x.Address, 1, types.Yes)
	require.True(t, xerrors.Is(err, protocol.ErrAlreadyResolved))

	m, err = p.GetMarket(m.ID)
	require.NoError(t, err)
	require.True(t, m.Outcome)
	require.Empty(t, m.YesBets)
	require.Len(t, p.EventsNamed(types.MarketResolvedEvent{}.Name()), 1)
}

func Test_Market_Bet_Invalid(t *testing.T) {
	p := z.NewTestProtocol(t)

	target := p.MustRegister("target", 10)
	x := p.MustRegister("x", 10)

	m, err := p.CreateMarket(target.Address, "", 1)
	require.NoError(t, err)

	_, err = p.PlaceBet("MARKET-none", x.Address, 1, types.Yes)
	require.True(t, xerrors.Is(err, protocol.ErrNotFound))

	_, err = p.PlaceBet(m.ID, "0xnobody", 1, types.Yes)
	require.True(t, xerrors.Is(err, protocol.ErrNotFound))

	_, err = p.PlaceBet(m.ID, x.Address, 0, types.No)
	require.True(t, xerrors.Is(err, protocol.ErrInvalidArgument))

	_, err = p.ResolveMarket("MARKET-none", true)
	require.True(t, xerrors.Is(err, protocol.ErrNotFound))
}
