package unit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	z "go.dedis.ch/arp/internal/testing"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

// returns an oracle with score 116 and its counterparty
func setupOracle(t *testing.T, p z.TestProtocol) (types.Agent, types.Agent) {
	a := p.MustRegister("oracle", 50)
	b := p.MustRegister("bob", 0)
	for i := 0; i < 3; i++ {
		p.MustTransact(a.Address, b.Address, 5)
	}

	a, err := p.RegisterOracle(a.Address)
	require.NoError(t, err)
	return a, b
}

func Test_Oracle_Register(t *testing.T) {
	p := z.NewTestProtocol(t)

	a, _ := setupOracle(t, p)
	require.True(t, a.OracleStatus)
	require.Equal(t, uint(1), a.OracleRegistrations)
	require.Equal(t, 116.0, a.Score)
	require.Equal(t, []string{a.Address}, p.Oracles())

	// registering again changes nothing
	again, err := p.RegisterOracle(a.Address)
	require.NoError(t, err)
	require.Equal(t, a, again)
	require.Len(t, p.EventsNamed(types.OraclePromotedEvent{}.Name()), 1)
}

func Test_Oracle_Register_Not_Eligible(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 10)
	p.MustTransact(a.Address, b.Address, 4)

	_, err := p.RegisterOracle(a.Address)
	require.True(t, xerrors.Is(err, protocol.ErrNotEligible))
	require.False(t, p.MustAgent(a.Address).OracleStatus)
	require.Empty(t, p.Oracles())

	_, err = p.RegisterOracle("0xnobody")
	require.True(t, xerrors.Is(err, protocol.ErrNotFound))
}

// Oracle ratings are multiplied by the oracle weight.
func Test_Oracle_Attest(t *testing.T) {
	p := z.NewTestProtocol(t)

	o, b := setupOracle(t, p)

	r, err := p.OracleAttest(o.Address, b.Address, 4, "audited")
	require.NoError(t, err)
	require.Equal(t, 8.0, r.Value)
	require.Equal(t, "[ORACLE] audited", r.Feedback)
	require.Equal(t, types.OracleRating, r.Kind)
	require.True(t, strings.HasPrefix(r.Reference, "ORACLE-"))

	b = p.MustAgent(b.Address)
	require.Equal(t, []types.Rating{r}, b.Ratings)
	require.Equal(t, 8*20+3*2.0, b.Score)
}

func Test_Oracle_Attest_Invalid(t *testing.T) {
	p := z.NewTestProtocol(t)

	o, b := setupOracle(t, p)

	_, err := p.OracleAttest(b.Address, o.Address, 4, "")
	require.True(t, xerrors.Is(err, protocol.ErrNotAnOracle))

	_, err = p.OracleAttest(o.Address, "0xnobody", 4, "")
	require.True(t, xerrors.Is(err, protocol.ErrNotFound))

	_, err = p.OracleAttest(o.Address, b.Address, 9, "")
	require.True(t, xerrors.Is(err, protocol.ErrInvalidArgument))

	require.Empty(t, p.MustAgent(b.Address).Ratings)
}

// Without the revocation policy an oracle keeps its status.
func Test_Oracle_Kept_Below_Threshold(t *testing.T) {
	p := z.NewTestProtocol(t)

	o, _ := setupOracle(t, p)

	_, err := p.Slash(o.Address, "fraud")
	require.NoError(t, err)

	o = p.MustAgent(o.Address)
	require.Less(t, o.Score, 100.0)
	require.True(t, o.OracleStatus)
	require.Equal(t, []string{o.Address}, p.Oracles())
}

func Test_Oracle_Revoked_Below_Threshold(t *testing.T) {
	p := z.NewTestProtocol(t, z.WithOracleRevocation())

	o, b := setupOracle(t, p)

	_, err := p.Slash(o.Address, "fraud")
	require.NoError(t, err)

	// ratings 5, 5, 5, 1, stake 25, no oracle bonus
	o = p.MustAgent(o.Address)
	require.False(t, o.OracleStatus)
	require.Equal(t, uint(0), o.OracleRegistrations)
	require.InDelta(t, 88.5, o.Score, 1e-9)
	require.Empty(t, p.Oracles())
	require.Len(t, p.EventsNamed(types.OracleRevokedEvent{}.Name()), 1)

	_, err = p.OracleAttest(o.Address, b.Address, 5, "")
	require.True(t, xerrors.Is(err, protocol.ErrNotAnOracle))
}
