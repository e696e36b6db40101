package impl

import (
	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

// implements protocol.TokenService
func (n *node) MintToken(address string) (types.ReputationToken, error) {
	const op = "MintToken"

	e, ok := n.agents.get(address)
	if !ok {
		return types.ReputationToken{}, protocol.NewError(protocol.NotFound, op, address)
	}

	e.Lock()

	a := &e.agent
	t := types.ReputationToken{
		ID:        newID(tokenPrefix),
		Agent:     a.Address,
		AgentName: a.Name,
		Score:     a.Score,
		Tier:      a.Tier,
		Owner:     a.Address,
		MintedAt:  n.now(),
		Transfers: make([]types.TokenTransfer, 0),
	}

	if !n.tokens.add(t.ID, t) {
		e.Unlock()
		return types.ReputationToken{}, xerrors.Errorf("%s: %w", op, ErrCollision)
	}
	a.TokenID = t.ID

	e.Unlock()

	log.Info().Msgf("minted token %s for %s at score %.1f", t.ID, t.AgentName, t.Score)

	n.emit(types.TokenMintedEvent{
		TokenID: t.ID,
		Agent:   t.Agent,
		Score:   t.Score,
		Tier:    t.Tier,
	})

	return t.Copy(), nil
}

// implements protocol.TokenService
func (n *node) TransferToken(tokenID, newOwner string) (types.ReputationToken, error) {
	const op = "TransferToken"

	e, ok := n.tokens.get(tokenID)
	if !ok {
		return types.ReputationToken{}, protocol.NewError(protocol.NotFound, op, tokenID)
	}
	if _, ok := n.agents.get(newOwner); !ok {
		return types.ReputationToken{}, protocol.NewError(protocol.NotFound, op, newOwner)
	}

	e.Lock()

	t := &e.value
	from := t.Owner
	if from == newOwner {
		e.Unlock()
		return types.ReputationToken{}, protocol.Errorf(protocol.InvalidArgument, op, tokenID, "%s already owns the token", newOwner)
	}

	t.Owner = newOwner
	t.Transfers = append(t.Transfers, types.TokenTransfer{
		From:      from,
		To:        newOwner,
		Timestamp: n.now(),
	})
	res := t.Copy()

	e.Unlock()

	n.emit(types.TokenTransferredEvent{TokenID: tokenID, From: from, To: newOwner})
	return res, nil
}

// implements protocol.TokenService
func (n *node) GetToken(tokenID string) (types.ReputationToken, error) {
	e, ok := n.tokens.get(tokenID)
	if !ok {
		return types.ReputationToken{}, protocol.NewError(protocol.NotFound, "GetToken", tokenID)
	}

	e.Lock()
	defer e.Unlock()
	return e.value.Copy(), nil
}
