package protocol

import "go.dedis.ch/arp/types"

// TokenService mints transferable snapshots of agents' reputation.
type TokenService interface {
	MintToken(address string) (types.ReputationToken, error)

	TransferToken(tokenID, newOwner string) (types.ReputationToken, error)

	GetToken(tokenID string) (types.ReputationToken, error)
}
