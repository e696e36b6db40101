package impl

import (
	"time"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

// implements protocol.MarketService
func (n *node) CreateMarket(target, description string, durationHours int) (types.Market, error) {
	const op = "CreateMarket"

	if _, ok := n.agents.get(target); !ok {
		return types.Market{}, protocol.NewError(protocol.NotFound, op, target)
	}

	duration := time.Duration(durationHours) * time.Hour
	if durationHours <= 0 {
		duration = n.conf.DefaultMarketDuration
	}

	now := n.now()
	m := types.Market{
		ID:            newID(marketPrefix),
		Target:        target,
		Description:   description,
		DurationHours: int(duration / time.Hour),
		CreatedAt:     now,
		ClosesAt:      now.Add(duration),
		YesBets:       make([]types.Bet, 0),
		NoBets:        make([]types.Bet, 0),
	}

	if !n.markets.add(m.ID, m) {
		return types.Market{}, xerrors.Errorf("%s: %w", op, ErrCollision)
	}

	n.emit(types.MarketCreatedEvent{
		MarketID:    m.ID,
		Target:      target,
		Description: description,
	})

	return m.Copy(), nil
}

// implements protocol.MarketService
func (n *node) PlaceBet(marketID, bettor string, amount float64, side types.Side) (types.Bet, error) {
	const op = "PlaceBet"

	if !isAmount(amount) || amount == 0 {
		return types.Bet{}, protocol.Errorf(protocol.InvalidArgument, op, marketID, "invalid amount %v", amount)
	}

	e, ok := n.markets.get(marketID)
	if !ok {
		return types.Bet{}, protocol.NewError(protocol.NotFound, op, marketID)
	}
	if _, ok := n.agents.get(bettor); !ok {
		return types.Bet{}, protocol.NewError(protocol.NotFound, op, bettor)
	}

	e.Lock()

	m := &e.value
	if m.Resolved {
		e.Unlock()
		return types.Bet{}, protocol.NewError(protocol.AlreadyResolved, op, marketID)
	}

	bet := types.Bet{
		Bettor:    bettor,
		Amount:    amount,
		Side:      side,
		Timestamp: n.now(),
	}
	if side == types.Yes {
		m.YesBets = append(m.YesBets, bet)
	} else {
		m.NoBets = append(m.NoBets, bet)
	}

	e.Unlock()

	n.emit(types.BetPlacedEvent{MarketID: marketID, Bet: bet})
	return bet, nil
}

// implements protocol.MarketService
func (n *node) ResolveMarket(marketID string, outcome bool) (types.MarketResolution, error) {
	const op = "ResolveMarket"

	e, ok := n.markets.get(marketID)
	if !ok {
		return types.MarketResolution{}, protocol.NewError(protocol.NotFound, op, marketID)
	}

	e.Lock()

	m := &e.value
	if m.Resolved {
		e.Unlock()
		return types.MarketResolution{}, protocol.NewError(protocol.AlreadyResolved, op, marketID)
	}

	res := m.ComputePayouts(outcome)
	m.Resolved = true
	m.Outcome = outcome

	e.Unlock()

	if res.Unclaimed > 0 {
		log.Warn().Msgf("market %s resolved without winner, %.2f unclaimed", marketID, res.Unclaimed)
	} else {
		log.Info().Msgf("market %s resolved to %v, %d payouts", marketID, outcome, len(res.Payouts))
	}

	n.emit(types.MarketResolvedEvent{Resolution: res})
	return res, nil
}

// implements protocol.MarketService
func (n *node) GetMarket(marketID string) (types.Market, error) {
	e, ok := n.markets.get(marketID)
	if !ok {
		return types.Market{}, protocol.NewError(protocol.NotFound, "GetMarket", marketID)
	}

	e.Lock()
	defer e.Unlock()
	return e.value.Copy(), nil
}

// implements protocol.MarketService
func (n *node) Markets() []types.Market {
	return n.markets.list((*types.Market).Copy)
}
