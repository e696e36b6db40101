package types

import "time"

// TxStatus is the state of a transaction. A transaction goes from pending to
// completed exactly once.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxCompleted TxStatus = "completed"
)

// AttestationType qualifies the outcome reported by an attestation.
type AttestationType string

const (
	AttestCompleted AttestationType = "completed"
	AttestPartial   AttestationType = "partial"
	AttestFailed    AttestationType = "failed"
	AttestUnknown   AttestationType = "unknown"
)

// Transaction is a transfer between two agents.
type Transaction struct {
	Hash        string
	From        string
	To          string
	Amount      float64
	Status      TxStatus
	Timestamp   time.Time
	CompletedAt time.Time
}

// Attestation is the rating submitted for a transaction.
type Attestation struct {
	TxHash    string
	From      string
	To        string
	Rating    int
	Feedback  string
	Type      AttestationType
	Timestamp time.Time
}

// Delegation moves capital from the delegator's stake to the beneficiary's
// delegated stake. It is never reversed.
type Delegation struct {
	From      string
	To        string
	Amount    float64
	Timestamp time.Time
}
