package types

import "fmt"

// -----------------------------------------------------------------------------
// AgentRegisteredEvent

// NewEmpty implements types.Event.
func (e AgentRegisteredEvent) NewEmpty() Event {
	return &AgentRegisteredEvent{}
}

// Name implements types.Event.
func (AgentRegisteredEvent) Name() string {
	return "agentregistered"
}

// Subject implements types.Event.
func (e AgentRegisteredEvent) Subject() string {
	return e.Address
}

// String implements types.Event.
func (e AgentRegisteredEvent) String() string {
	return fmt.Sprintf("agentregistered{address=%s, name=%s, stake=%.2f}", e.Address, e.AgentName, e.Stake)
}

// -----------------------------------------------------------------------------
// ScoreUpdatedEvent

// NewEmpty implements types.Event.
func (e ScoreUpdatedEvent) NewEmpty() Event {
	return &ScoreUpdatedEvent{}
}

// Name implements types.Event.
func (ScoreUpdatedEvent) Name() string {
	return "scoreupdated"
}

// Subject implements types.Event.
func (e ScoreUpdatedEvent) Subject() string {
	return e.Address
}

// String implements types.Event.
func (e ScoreUpdatedEvent) String() string {
	return fmt.Sprintf("scoreupdated{address=%s, score=%.1f->%.1f, tier=%s->%s}", e.Address, e.OldScore, e.Score, e.OldTier, e.Tier)
}

// -----------------------------------------------------------------------------
// TransactionSubmittedEvent

// NewEmpty implements types.Event.
func (e TransactionSubmittedEvent) NewEmpty() Event {
	return &TransactionSubmittedEvent{}
}

// Name implements types.Event.
func (TransactionSubmittedEvent) Name() string {
	return "transactionsubmitted"
}

// Subject implements types.Event.
func (e TransactionSubmittedEvent) Subject() string {
	return e.Transaction.Hash
}

// String implements types.Event.
func (e TransactionSubmittedEvent) String() string {
	return fmt.Sprintf("transactionsubmitted{%s}", e.Transaction)
}

// -----------------------------------------------------------------------------
// AttestedEvent

// NewEmpty implements types.Event.
func (e AttestedEvent) NewEmpty() Event {
	return &AttestedEvent{}
}

// Name implements types.Event.
func (AttestedEvent) Name() string {
	return "attested"
}

// Subject implements types.Event.
func (e AttestedEvent) Subject() string {
	return e.Attestation.From
}

// String implements types.Event.
func (e AttestedEvent) String() string {
	return fmt.Sprintf("attested{%s}", e.Attestation)
}

// -----------------------------------------------------------------------------
// SlashedEvent

// NewEmpty implements types.Event.
func (e SlashedEvent) NewEmpty() Event {
	return &SlashedEvent{}
}

// Name implements types.Event.
func (SlashedEvent) Name() string {
	return "slashed"
}

// Subject implements types.Event.
func (e SlashedEvent) Subject() string {
	return e.Result.Address
}

// String implements types.Event.
func (e SlashedEvent) String() string {
	return fmt.Sprintf("slashed{%s}", e.Result)
}

// -----------------------------------------------------------------------------
// StakeDelegatedEvent

// NewEmpty implements types.Event.
func (e StakeDelegatedEvent) NewEmpty() Event {
	return &StakeDelegatedEvent{}
}

// Name implements types.Event.
func (StakeDelegatedEvent) Name() string {
	return "stakedelegated"
}

// Subject implements types.Event.
func (e StakeDelegatedEvent) Subject() string {
	return e.Delegation.To
}

// String implements types.Event.
func (e StakeDelegatedEvent) String() string {
	return fmt.Sprintf("stakedelegated{%s}", e.Delegation)
}

// -----------------------------------------------------------------------------
// OraclePromotedEvent

// NewEmpty implements types.Event.
func (e OraclePromotedEvent) NewEmpty() Event {
	return &OraclePromotedEvent{}
}

// Name implements types.Event.
func (OraclePromotedEvent) Name() string {
	return "oraclepromoted"
}

// Subject implements types.Event.
func (e OraclePromotedEvent) Subject() string {
	return e.Address
}

// String implements types.Event.
func (e OraclePromotedEvent) String() string {
	return fmt.Sprintf("oraclepromoted{address=%s, score=%.1f}", e.Address, e.Score)
}

// -----------------------------------------------------------------------------
// OracleRevokedEvent

// NewEmpty implements types.Event.
func (e OracleRevokedEvent) NewEmpty() Event {
	return &OracleRevokedEvent{}
}

// Name implements types.Event.
func (OracleRevokedEvent) Name() string {
	return "oraclerevoked"
}

// Subject implements types.Event.
func (e OracleRevokedEvent) Subject() string {
	return e.Address
}

// String implements types.Event.
func (e OracleRevokedEvent) String() string {
	return fmt.Sprintf("oraclerevoked{address=%s, score=%.1f}", e.Address, e.Score)
}

// -----------------------------------------------------------------------------
// OracleAttestedEvent

// NewEmpty implements types.Event.
func (e OracleAttestedEvent) NewEmpty() Event {
	return &OracleAttestedEvent{}
}

// Name implements types.Event.
func (OracleAttestedEvent) Name() string {
	return "oracleattested"
}

// Subject implements types.Event.
func (e OracleAttestedEvent) Subject() string {
	return e.Target
}

// String implements types.Event.
func (e OracleAttestedEvent) String() string {
	return fmt.Sprintf("oracleattested{oracle=%s, target=%s, value=%.1f}", e.Oracle, e.Target, e.Value)
}

// -----------------------------------------------------------------------------
// MarketCreatedEvent

// NewEmpty implements types.Event.
func (e MarketCreatedEvent) NewEmpty() Event {
	return &MarketCreatedEvent{}
}

// Name implements types.Event.
func (MarketCreatedEvent) Name() string {
	return "marketcreated"
}

// Subject implements types.Event.
func (e MarketCreatedEvent) Subject() string {
	return e.MarketID
}

// String implements types.Event.
func (e MarketCreatedEvent) String() string {
	return fmt.Sprintf("marketcreated{id=%s, target=%s}", e.MarketID, e.Target)
}

// -----------------------------------------------------------------------------
// BetPlacedEvent

// NewEmpty implements types.Event.
func (e BetPlacedEvent) NewEmpty() Event {
	return &BetPlacedEvent{}
}

// Name implements types.Event.
func (BetPlacedEvent) Name() string {
	return "betplaced"
}

// Subject implements types.Event.
func (e BetPlacedEvent) Subject() string {
	return e.MarketID
}

// String implements types.Event.
func (e BetPlacedEvent) String() string {
	return fmt.Sprintf("betplaced{market=%s, bettor=%s, amount=%.2f, side=%s}", e.MarketID, e.Bet.Bettor, e.Bet.Amount, e.Bet.Side)
}

// -----------------------------------------------------------------------------
// MarketResolvedEvent

// NewEmpty implements types.Event.
func (e MarketResolvedEvent) NewEmpty() Event {
	return &MarketResolvedEvent{}
}

// Name implements types.Event.
func (MarketResolvedEvent) Name() string {
	return "marketresolved"
}

// Subject implements types.Event.
func (e MarketResolvedEvent) Subject() string {
	return e.Resolution.MarketID
}

// String implements types.Event.
func (e MarketResolvedEvent) String() string {
	return fmt.Sprintf("marketresolved{id=%s, outcome=%v, payouts=%d}", e.Resolution.MarketID, e.Resolution.Outcome, len(e.Resolution.Payouts))
}

// -----------------------------------------------------------------------------
// TokenMintedEvent

// NewEmpty implements types.Event.
func (e TokenMintedEvent) NewEmpty() Event {
	return &TokenMintedEvent{}
}

// Name implements types.Event.
func (TokenMintedEvent) Name() string {
	return "tokenminted"
}

// Subject implements types.Event.
func (e TokenMintedEvent) Subject() string {
	return e.TokenID
}

// String implements types.Event.
func (e TokenMintedEvent) String() string {
	return fmt.Sprintf("tokenminted{id=%s, agent=%s, score=%.1f}", e.TokenID, e.Agent, e.Score)
}

// -----------------------------------------------------------------------------
// TokenTransferredEvent

// NewEmpty implements types.Event.
func (e TokenTransferredEvent) NewEmpty() Event {
	return &TokenTransferredEvent{}
}

// Name implements types.Event.
func (TokenTransferredEvent) Name() string {
	return "tokentransferred"
}

// Subject implements types.Event.
func (e TokenTransferredEvent) Subject() string {
	return e.TokenID
}

// String implements types.Event.
func (e TokenTransferredEvent) String() string {
	return fmt.Sprintf("tokentransferred{id=%s, %s->%s}", e.TokenID, e.From, e.To)
}

// -----------------------------------------------------------------------------
// CaseOpenedEvent

// NewEmpty implements types.Event.
func (e CaseOpenedEvent) NewEmpty() Event {
	return &CaseOpenedEvent{}
}

// Name implements types.Event.
func (CaseOpenedEvent) Name() string {
	return "caseopened"
}

// Subject implements types.Event.
func (e CaseOpenedEvent) Subject() string {
	return e.CaseID
}

// String implements types.Event.
func (e CaseOpenedEvent) String() string {
	return fmt.Sprintf("caseopened{id=%s, target=%s, jurors=%d}", e.CaseID, e.Target, len(e.Jurors))
}

// -----------------------------------------------------------------------------
// VoteCastEvent

// NewEmpty implements types.Event.
func (e VoteCastEvent) NewEmpty() Event {
	return &VoteCastEvent{}
}

// Name implements types.Event.
func (VoteCastEvent) Name() string {
	return "votecast"
}

// Subject implements types.Event.
func (e VoteCastEvent) Subject() string {
	return e.CaseID
}

// String implements types.Event.
func (e VoteCastEvent) String() string {
	return fmt.Sprintf("votecast{case=%s, juror=%s, guilty=%v}", e.CaseID, e.Juror, e.Guilty)
}

// -----------------------------------------------------------------------------
// CaseResolvedEvent

// NewEmpty implements types.Event.
func (e CaseResolvedEvent) NewEmpty() Event {
	return &CaseResolvedEvent{}
}

// Name implements types.Event.
func (CaseResolvedEvent) Name() string {
	return "caseresolved"
}

// Subject implements types.Event.
func (e CaseResolvedEvent) Subject() string {
	return e.Resolution.CaseID
}

// String implements types.Event.
func (e CaseResolvedEvent) String() string {
	return fmt.Sprintf("caseresolved{id=%s, verdict=%s}", e.Resolution.CaseID, e.Resolution.Verdict)
}
