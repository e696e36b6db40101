package protocol

import "go.dedis.ch/arp/types"

// MarketService runs binary prediction markets on agents' reputation.
type MarketService interface {
	CreateMarket(target, description string, durationHours int) (types.Market, error)

	PlaceBet(marketID, bettor string, amount float64, side types.Side) (types.Bet, error)

	// ResolveMarket settles the market once. Resolution is always an
	// explicit call, markets never expire on their own.
	ResolveMarket(marketID string, outcome bool) (types.MarketResolution, error)

	GetMarket(marketID string) (types.Market, error)

	Markets() []types.Market
}
