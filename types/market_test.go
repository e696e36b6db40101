package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Market_Payouts(t *testing.T) {
	m := Market{
		ID:      "m",
		YesBets: []Bet{{Bettor: "a", Amount: 30, Side: Yes}, {Bettor: "b", Amount: 10, Side: Yes}},
		NoBets:  []Bet{{Bettor: "c", Amount: 20, Side: No}},
	}

	res := m.ComputePayouts(true)
	require.Equal(t, []Payout{{"a", 45}, {"b", 15}}, res.Payouts)
	require.Equal(t, 0.0, res.Unclaimed)

	res = m.ComputePayouts(false)
	require.Equal(t, []Payout{{"c", 60}}, res.Payouts)

	// payouts redistribute the whole pool
	total := 0.0
	for _, p := range res.Payouts {
		total += p.Amount
	}
	require.Equal(t, m.TotalYes()+m.TotalNo(), total)
}

func Test_Market_Totals(t *testing.T) {
	m := Market{
		YesBets: []Bet{{Bettor: "a", Amount: 2.5, Side: Yes}, {Bettor: "a", Amount: 1.5, Side: Yes}},
		NoBets:  []Bet{{Bettor: "b", Amount: 7, Side: No}},
	}
	require.Equal(t, 4.0, m.TotalYes())
	require.Equal(t, 7.0, m.TotalNo())

	empty := Market{}
	require.Equal(t, 0.0, empty.TotalYes())
	require.Equal(t, 0.0, empty.TotalNo())
}

func Test_Market_Payouts_Empty_Pools(t *testing.T) {
	m := Market{YesBets: []Bet{{Bettor: "a", Amount: 4}}}

	res := m.ComputePayouts(false)
	require.Empty(t, res.Payouts)
	require.Equal(t, 4.0, res.Unclaimed)

	res = m.ComputePayouts(true)
	require.Equal(t, []Payout{{"a", 4}}, res.Payouts)

	empty := Market{}
	res = empty.ComputePayouts(true)
	require.Empty(t, res.Payouts)
	require.Equal(t, 0.0, res.Unclaimed)
}

func Test_Council_Tally(t *testing.T) {
	c := CouncilCase{
		Jurors:       []string{"a", "b", "c"},
		VotesFor:     nil,
		VotesAgainst: nil,
	}
	require.Equal(t, NotGuilty, c.Tally())
	require.True(t, c.IsJuror("b"))
	require.False(t, c.IsJuror("d"))

	cp := c.Copy()
	cp.VotesFor.Add("a")
	require.Equal(t, Guilty, cp.Tally())
	require.True(t, cp.HasVoted("a"))
	require.False(t, c.HasVoted("a"))
}

func Test_Attestation_Type(t *testing.T) {
	tp, ok := ParseAttestationType("")
	require.True(t, ok)
	require.Equal(t, AttestCompleted, tp)

	tp, ok = ParseAttestationType("failed")
	require.True(t, ok)
	require.Equal(t, AttestFailed, tp)

	_, ok = ParseAttestationType("excellent")
	require.False(t, ok)
}
