package types

import "fmt"

// IsPending returns true iff the transaction has not been attested yet.
func (t Transaction) IsPending() bool {
	return t.Status == TxPending
}

// String implements fmt.Stringer.
func (t Transaction) String() string {
	return fmt.Sprintf("tx{hash=%s, %s->%s, amount=%.2f, status=%s}", t.Hash, t.From, t.To, t.Amount, t.Status)
}

// String implements fmt.Stringer.
func (a Attestation) String() string {
	return fmt.Sprintf("attestation{tx=%s, from=%s, rating=%d, type=%s}", a.TxHash, a.From, a.Rating, a.Type)
}

// ParseAttestationType returns the attestation type named s. The empty string
// defaults to completed.
func ParseAttestationType(s string) (AttestationType, bool) {
	switch AttestationType(s) {
	case "":
		return AttestCompleted, true
	case AttestCompleted, AttestPartial, AttestFailed, AttestUnknown:
		return AttestationType(s), true
	default:
		return "", false
	}
}

// String implements fmt.Stringer.
func (d Delegation) String() string {
	return fmt.Sprintf("delegation{%s->%s, amount=%.2f}", d.From, d.To, d.Amount)
}
