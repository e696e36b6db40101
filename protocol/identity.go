package protocol

import "context"

// IdentityVerifier is implemented by the external identity services. Callers
// query it before registering an agent and pass the outcome along with
// WithVerifiedIdentity. The protocol never calls it.
type IdentityVerifier interface {
	Verify(ctx context.Context, email, uid string) (bool, error)
}
