package types

// Event is emitted by the protocol after every state change. Events are
// dispatched through the registry by name.
type Event interface {
	// NewEmpty returns an empty event of the same type.
	NewEmpty() Event
	// Name is the unique name of the event type.
	Name() string
	// Subject is the agent address or entity id the event is about.
	Subject() string
	String() string
}

type AgentRegisteredEvent struct {
	Address   string
	AgentName string
	Stake     float64
}

type ScoreUpdatedEvent struct {
	Address  string
	OldScore float64
	Score    float64
	OldTier  Tier
	Tier     Tier
}

type TransactionSubmittedEvent struct {
	Transaction Transaction
}

type AttestedEvent struct {
	Attestation Attestation
}

type SlashedEvent struct {
	Result SlashResult
}

type StakeDelegatedEvent struct {
	Delegation Delegation
}

type OraclePromotedEvent struct {
	Address string
	Score   float64
}

type OracleRevokedEvent struct {
	Address string
	Score   float64
}

type OracleAttestedEvent struct {
	Oracle    string
	Target    string
	Value     float64
	Evidence  string
	Reference string
}

type MarketCreatedEvent struct {
	MarketID    string
	Target      string
	Description string
}

type BetPlacedEvent struct {
	MarketID string
	Bet      Bet
}

type MarketResolvedEvent struct {
	Resolution MarketResolution
}

type TokenMintedEvent struct {
	TokenID string
	Agent   string
	Score   float64
	Tier    Tier
}

type TokenTransferredEvent struct {
	TokenID string
	From    string
	To      string
}

type CaseOpenedEvent struct {
	CaseID string
	Target string
	Jurors []string
}

type VoteCastEvent struct {
	CaseID string
	Juror  string
	Guilty bool
}

type CaseResolvedEvent struct {
	Resolution CouncilResolution
}
