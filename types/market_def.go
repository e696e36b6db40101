package types

import "time"

// Side of a binary prediction market.
type Side bool

const (
	Yes Side = true
	No  Side = false
)

// Bet is a stake placed on one side of a market.
type Bet struct {
	Bettor    string
	Amount    float64
	Side      Side
	Timestamp time.Time
}

// Market is a binary prediction market on an agent's future reputation.
// Bets are only accepted while the market is open; resolving is one-way.
type Market struct {
	ID            string
	Target        string
	Description   string
	DurationHours int
	CreatedAt     time.Time
	// informational, markets are never resolved on timeout
	ClosesAt time.Time

	YesBets []Bet
	NoBets  []Bet

	Resolved bool
	Outcome  bool
}

// Payout is the amount owed to a winning bettor.
type Payout struct {
	Bettor string
	Amount float64
}

// MarketResolution summarises the settlement of a market.
type MarketResolution struct {
	MarketID string
	Outcome  bool
	TotalYes float64
	TotalNo  float64
	Payouts  []Payout
	// pool left without winner to pay
	Unclaimed float64
}
