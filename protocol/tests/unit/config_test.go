package unit

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/protocol/impl"
	"go.dedis.ch/arp/types"
)

// A zero configuration behaves like the default one.
func Test_Config_Zero_Uses_Defaults(t *testing.T) {
	p := impl.NewProtocol(protocol.Configuration{})

	alice, err := p.RegisterAgent("alice", 10)
	require.NoError(t, err)
	bob, err := p.RegisterAgent("bob", 10)
	require.NoError(t, err)

	tx, err := p.SubmitTransaction(alice.Address, bob.Address, 10)
	require.NoError(t, err)
	_, err = p.Attest(tx.Hash, 5, "fine")
	require.NoError(t, err)

	_, err = p.Attest(tx.Hash, 6, "too high")
	require.Error(t, err)

	alice, err = p.GetAgent(alice.Address)
	require.NoError(t, err)
	require.InDelta(t, 103, alice.Score, 1e-9)
	require.Equal(t, types.Elite, alice.Tier)

	res, err := p.Slash(alice.Address, "test")
	require.NoError(t, err)
	require.Equal(t, 5.0, res.Slashed)

	m, err := p.CreateMarket(alice.Address, "still elite", 0)
	require.NoError(t, err)
	require.Equal(t, 24*time.Hour, m.ClosesAt.Sub(m.CreatedAt))

	c, err := p.CreateCase(alice.Address, "evidence", "bob")
	require.NoError(t, err)
	require.Equal(t, []string{bob.Address}, c.Jurors)
}

func Test_Config_Invalid_Slash_Fraction(t *testing.T) {
	for _, fraction := range []float64{math.NaN(), -0.5, 1.5} {
		conf := protocol.DefaultConfiguration(nil)
		conf.SlashFraction = fraction
		p := impl.NewProtocol(conf)

		a, err := p.RegisterAgent("mallory", 10)
		require.NoError(t, err)

		res, err := p.Slash(a.Address, "spam")
		require.NoError(t, err)
		require.Equal(t, 5.0, res.Slashed)
		require.Equal(t, 5.0, res.Remaining)
	}
}

func Test_Config_Empty_Rating_Range(t *testing.T) {
	conf := protocol.DefaultConfiguration(nil)
	conf.MinRating = 4
	conf.MaxRating = 2
	p := impl.NewProtocol(conf)

	a, err := p.RegisterAgent("alice", 10)
	require.NoError(t, err)
	b, err := p.RegisterAgent("bob", 10)
	require.NoError(t, err)

	tx, err := p.SubmitTransaction(a.Address, b.Address, 1)
	require.NoError(t, err)
	_, err = p.Attest(tx.Hash, 1, "bad")
	require.NoError(t, err)
}
