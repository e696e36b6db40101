package unit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	z "go.dedis.ch/arp/internal/testing"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

// Three transactions rated 5 with a stake of 50 give 5*20 + 50*0.1 + 3*2.
func Test_Ledger_Score_Scenario(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 50)
	b := p.MustRegister("bob", 0)

	for i := 0; i < 3; i++ {
		p.MustTransact(a.Address, b.Address, 5)
	}

	a = p.MustAgent(a.Address)
	require.Equal(t, 111.0, a.Score)
	require.Equal(t, types.Elite, a.Tier)
	require.Equal(t, uint(3), a.TransactionCount)
	require.Len(t, a.Ratings, 3)

	// the receiver takes part in the transactions but holds no rating
	b = p.MustAgent(b.Address)
	require.Equal(t, uint(3), b.TransactionCount)
	require.Equal(t, 0.0, b.Score)
}

func Test_Ledger_Submit(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := z.NewTestProtocol(t, z.WithClock(z.FixedClock(start, time.Second)))

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 10)

	tx, err := p.SubmitTransaction(a.Address, b.Address, 25)
	require.NoError(t, err)
	require.Equal(t, types.TxPending, tx.Status)
	require.Equal(t, 25.0, tx.Amount)
	require.Len(t, tx.Hash, 34)
	require.True(t, tx.Timestamp.After(start))

	got, err := p.GetTransaction(tx.Hash)
	require.NoError(t, err)
	require.Equal(t, tx, got)

	require.Equal(t, uint(1), p.MustAgent(a.Address).TransactionCount)
	require.Equal(t, uint(1), p.MustAgent(b.Address).TransactionCount)
	require.Len(t, p.EventsNamed(types.TransactionSubmittedEvent{}.Name()), 1)
}

func Test_Ledger_Submit_Invalid(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)

	_, err := p.SubmitTransaction(a.Address, "0xunknown", 1)
	require.True(t, xerrors.Is(err, protocol.ErrNotFound))

	_, err = p.SubmitTransaction(a.Address, a.Address, 1)
	require.True(t, xerrors.Is(err, protocol.ErrInvalidArgument))

	b := p.MustRegister("bob", 10)
	_, err = p.SubmitTransaction(a.Address, b.Address, -3)
	require.True(t, xerrors.Is(err, protocol.ErrInvalidArgument))

	require.Equal(t, uint(0), p.MustAgent(a.Address).TransactionCount)
	require.Equal(t, uint(0), p.MustAgent(b.Address).TransactionCount)
}

func Test_Ledger_Attest(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 10)

	tx, err := p.SubmitTransaction(a.Address, b.Address, 5)
	require.NoError(t, err)

	att, err := p.Attest(tx.Hash, 4, "on time")
	require.NoError(t, err)
	require.Equal(t, types.AttestCompleted, att.Type)
	require.Equal(t, a.Address, att.From)
	require.Equal(t, b.Address, att.To)

	tx, err = p.GetTransaction(tx.Hash)
	require.NoError(t, err)
	require.Equal(t, types.TxCompleted, tx.Status)
	require.False(t, tx.CompletedAt.IsZero())

	a = p.MustAgent(a.Address)
	require.Len(t, a.Ratings, 1)
	require.Equal(t, 4.0, a.Ratings[0].Value)
	require.Equal(t, tx.Hash, a.Ratings[0].Reference)
	require.Equal(t, types.AttestationRating, a.Ratings[0].Kind)
	require.Equal(t, 4*20+10*0.1+2, a.Score)

	require.Len(t, p.Attestations(), 1)
}

func Test_Ledger_Attest_With_Type(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 10)

	tx, err := p.SubmitTransaction(a.Address, b.Address, 5)
	require.NoError(t, err)

	_, err = p.AttestWithType(tx.Hash, 3, "half done", "bogus")
	require.True(t, xerrors.Is(err, protocol.ErrInvalidArgument))

	att, err := p.AttestWithType(tx.Hash, 3, "half done", types.AttestPartial)
	require.NoError(t, err)
	require.Equal(t, types.AttestPartial, att.Type)
}

// A failing attestation leaves the protocol untouched.
func Test_Ledger_Attest_Unknown_Hash(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)
	before := p.MustAgent(a.Address)

	_, err := p.Attest("0xnothere", 5, "")
	require.True(t, xerrors.Is(err, protocol.ErrNotFound))

	require.Empty(t, p.Attestations())
	require.Equal(t, before, p.MustAgent(a.Address))
}

func Test_Ledger_Attest_Invalid_Rating(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 10)

	tx, err := p.SubmitTransaction(a.Address, b.Address, 5)
	require.NoError(t, err)

	for _, rating := range []int{0, 6, -1} {
		_, err = p.Attest(tx.Hash, rating, "")
		require.True(t, xerrors.Is(err, protocol.ErrInvalidArgument))
	}

	tx, err = p.GetTransaction(tx.Hash)
	require.NoError(t, err)
	require.True(t, tx.IsPending())
}

func Test_Ledger_Attest_Twice(t *testing.T) {
	p := z.NewTestProtocol(t)

	a := p.MustRegister("alice", 10)
	b := p.MustRegister("bob", 10)

	att := p.MustTransact(a.Address, b.Address, 5)

	_, err := p.Attest(att.TxHash, 1, "changed my mind")
	require.True(t, xerrors.Is(err, protocol.ErrAlreadyAttested))

	a = p.MustAgent(a.Address)
	require.Len(t, a.Ratings, 1)
	require.Equal(t, 5.0, a.Ratings[0].Value)
	require.Len(t, p.Attestations(), 1)
}
