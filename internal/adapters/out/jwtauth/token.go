// Package jwtauth implements the authentication collaborator ports with
// HMAC-signed JWTs and bcrypt password hashing.
package jwtauth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
)

type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies bearer tokens carrying the principal's
// identity, email and role. Implements ports.TokenIssuer and
// ports.TokenVerifier.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service signing with the given secret.
// Tokens expire after ttl.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue mints a signed token for the principal.
func (s *TokenService) Issue(p principal.Principal) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: p.Email(),
		Role:  p.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	return token.SignedString(s.secret)
}

// Verify parses and validates a token and reconstructs its principal.
// Expired, malformed, or foreign-signed tokens come back as
// UnauthenticatedError.
func (s *TokenService) Verify(tokenString string) (principal.Principal, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{},
		func(_ *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return principal.Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid token", err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return principal.Principal{}, errs.NewUnauthenticatedError("invalid token")
	}

	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return principal.Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid token subject", err)
	}

	role, err := principal.RoleFromString(c.Role)
	if err != nil {
		return principal.Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid token role", err)
	}

	p, err := principal.NewPrincipal(id, c.Email, role)
	if err != nil {
		return principal.Principal{}, errs.NewUnauthenticatedErrorWithCause("invalid token claims", err)
	}

	return p, nil
}
