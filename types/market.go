package types

import (
	"fmt"

	"go.dedis.ch/arp/datastructures"
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Yes {
		return "YES"
	}
	return "NO"
}

// TotalYes returns the sum of the YES bets.
func (m *Market) TotalYes() float64 {
	return datastructures.Sum(m.YesBets, betAmount)
}

// TotalNo returns the sum of the NO bets.
func (m *Market) TotalNo() float64 {
	return datastructures.Sum(m.NoBets, betAmount)
}

// ComputePayouts returns the payouts of the winning side. Each winning bet
// receives amount * (totalYes + totalNo) / winningPool. When the winning pool
// is empty no payout is computed and the whole pool is reported unclaimed.
// When the losing pool is empty the formula reduces to a principal refund.
func (m *Market) ComputePayouts(outcome bool) MarketResolution {
	totalYes := m.TotalYes()
	totalNo := m.TotalNo()

	winning := m.NoBets
	winningPool := totalNo
	if outcome {
		winning = m.YesBets
		winningPool = totalYes
	}

	res := MarketResolution{
		MarketID: m.ID,
		Outcome:  outcome,
		TotalYes: totalYes,
		TotalNo:  totalNo,
		Payouts:  make([]Payout, 0, len(winning)),
	}

	if winningPool <= 0 {
		res.Unclaimed = totalYes + totalNo
		return res
	}

	for _, bet := range winning {
		res.Payouts = append(res.Payouts, Payout{
			Bettor: bet.Bettor,
			Amount: bet.Amount * (totalYes + totalNo) / winningPool,
		})
	}
	return res
}

// Copy returns a deep copy of the market.
func (m *Market) Copy() Market {
	res := *m
	res.YesBets = append([]Bet(nil), m.YesBets...)
	res.NoBets = append([]Bet(nil), m.NoBets...)
	return res
}

// String implements fmt.Stringer.
func (m Market) String() string {
	state := "open"
	if m.Resolved {
		state = fmt.Sprintf("resolved(%v)", m.Outcome)
	}
	return fmt.Sprintf("market{id=%s, target=%s, yes=%.2f, no=%.2f, %s}", m.ID, m.Target, m.TotalYes(), m.TotalNo(), state)
}

func betAmount(b Bet) float64 {
	return b.Amount
}
