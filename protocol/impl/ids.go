package impl

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"golang.org/x/xerrors"
)

// ErrCollision is returned if a freshly generated address, hash or id is
// already taken. It is never expected to happen.
var ErrCollision = xerrors.New("generated identifier collision")

const (
	marketPrefix      = "MARKET-"
	casePrefix        = "COUNCIL-"
	tokenPrefix       = "ARP-NFT-"
	oraclePrefix      = "ORACLE-"
	councilSlashRef   = "COUNCIL-SLASH-"
	slashRef          = "SLASH"
	councilSlashCause = "council verdict"
)

// returns "0x" followed by the 32 hex digits of a random uuid
func newHexID() string {
	return "0x" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// agent addresses and transaction hashes share the same format
func newAddress() string {
	return newHexID()
}

func newTxHash() string {
	return newHexID()
}

// returns a unique id for markets, cases, tokens and oracle attestations
func newID(prefix string) string {
	return prefix + xid.New().String()
}
