package protocol

import "go.dedis.ch/arp/types"

// Ledger records transfers between agents and their attestations.
type Ledger interface {
	// SubmitTransaction records a pending transaction. Both parties'
	// transaction counts are incremented right away.
	SubmitTransaction(from, to string, amount float64) (types.Transaction, error)

	// Attest completes a pending transaction and appends the rating to the
	// transaction's sender.
	Attest(txHash string, rating int, feedback string) (types.Attestation, error)

	// AttestWithType is Attest with an explicit attestation type.
	AttestWithType(txHash string, rating int, feedback string, tp types.AttestationType) (types.Attestation, error)

	GetTransaction(txHash string) (types.Transaction, error)

	// Attestations returns every attestation, in submission order.
	Attestations() []types.Attestation
}
