package jwtauth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/adapters/out/jwtauth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"
)

func testPrincipal(t *testing.T, role principal.Role) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), "someone@example.com", role)
	require.NoError(t, err)
	return p
}

func TestTokenService_IssueAndVerify_RoundTrips(t *testing.T) {
	service, err := jwtauth.NewTokenService("signing-secret", time.Hour)
	require.NoError(t, err)

	original := testPrincipal(t, principal.RoleLogistics)

	token, err := service.Issue(original)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verified, err := service.Verify(token)
	require.NoError(t, err)
	assert.True(t, original.ID().IsEqual(verified.ID()))
	assert.Equal(t, original.Email(), verified.Email())
	assert.Equal(t, original.Role(), verified.Role())
}

func TestTokenService_Verify_WrongSecret_ReturnsUnauthenticatedError(t *testing.T) {
	issuing, err := jwtauth.NewTokenService("secret-a", time.Hour)
	require.NoError(t, err)
	verifying, err := jwtauth.NewTokenService("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuing.Issue(testPrincipal(t, principal.RoleAdmin))
	require.NoError(t, err)

	_, err = verifying.Verify(token)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestTokenService_Verify_GarbageToken_ReturnsUnauthenticatedError(t *testing.T) {
	service, err := jwtauth.NewTokenService("signing-secret", time.Hour)
	require.NoError(t, err)

	_, err = service.Verify("not-a-jwt")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestTokenService_Verify_ExpiredToken_ReturnsUnauthenticatedError(t *testing.T) {
	service, err := jwtauth.NewTokenService("signing-secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := service.Issue(testPrincipal(t, principal.RoleCustomer))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = service.Verify(token)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestNewTokenService_InvalidConfig_ReturnsError(t *testing.T) {
	_, err := jwtauth.NewTokenService("", time.Hour)
	require.Error(t, err)

	_, err = jwtauth.NewTokenService("signing-secret", 0)
	require.Error(t, err)
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := jwtauth.NewBcryptHasher(4)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.NoError(t, hasher.Compare(hash, "s3cret"))

	err = hasher.Compare(hash, "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestBcryptHasher_EmptyPassword_ReturnsError(t *testing.T) {
	hasher := jwtauth.NewBcryptHasher(4)

	_, err := hasher.Hash("")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
