package types

import "fmt"

// Copy returns a deep copy of the token.
func (t *ReputationToken) Copy() ReputationToken {
	res := *t
	res.Transfers = append([]TokenTransfer(nil), t.Transfers...)
	return res
}

// String implements fmt.Stringer.
func (t ReputationToken) String() string {
	return fmt.Sprintf("token{id=%s, agent=%s, score=%.1f, tier=%s, owner=%s}", t.ID, t.AgentName, t.Score, t.Tier, t.Owner)
}
