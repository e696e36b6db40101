package identity

import (
	"context"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
	"google.golang.org/api/option"
)

// UserLookup is the part of the Firebase auth client used by the verifier.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
}

// NewFirebaseVerifier returns a verifier backed by the Firebase project whose
// service account key is stored at credentialsFile.
func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*Verifier, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, xerrors.Errorf("failed to create app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, xerrors.Errorf("failed to create client: %v", err)
	}

	return NewVerifier(client), nil
}

// NewVerifier returns a verifier looking users up with the given client.
func NewVerifier(users UserLookup) *Verifier {
	return &Verifier{users: users}
}

// Verifier checks that an email address belongs to the given user id.
//
// - implements protocol.IdentityVerifier
type Verifier struct {
	users UserLookup
}

// Verify returns true iff the account registered with email has the given
// uid and a verified email address. Unknown accounts are not an error.
func (v *Verifier) Verify(ctx context.Context, email, uid string) (bool, error) {
	user, err := v.users.GetUserByEmail(ctx, email)
	if auth.IsUserNotFound(err) {
		log.Info().Msgf("no account for %s", email)
		return false, nil
	}
	if err != nil {
		return false, xerrors.Errorf("error getting user with this email address: %v", err)
	}

	if user.UserInfo == nil || user.UID != uid {
		log.Warn().Msgf("invalid uid for %s", email)
		return false, nil
	}

	return user.EmailVerified, nil
}
