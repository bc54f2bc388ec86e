package ports

import (
	"context"

	"logistics/internal/core/domain/model/principal"
)

// TokenIssuer creates a bearer credential for an authenticated principal.
// Token format and signing are the authentication collaborator's concern.
type TokenIssuer interface {
	Issue(p principal.Principal) (string, error)
}

// TokenVerifier checks a bearer credential and yields the principal it was
// issued for. An invalid or expired credential returns an
// UnauthenticatedError.
type TokenVerifier interface {
	Verify(token string) (principal.Principal, error)
}

// PasswordHasher hashes and verifies credentials. Hashing parameters are the
// authentication collaborator's concern.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns an UnauthenticatedError when the password does not
	// match the stored hash.
	Compare(hash, password string) error
}

// Mailer delivers the credential email sent when staff creates a customer
// account. Delivery is best-effort: failures are logged by the caller and
// never roll back the creation.
type Mailer interface {
	SendCustomerCredentials(ctx context.Context, toEmail, name, password string) error
}
