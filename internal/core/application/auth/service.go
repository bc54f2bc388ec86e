// Package auth implements the login flows. Password verification and token
// minting are delegated to the collaborator ports; this service only decides
// who may log in and what goes into the token.
package auth

import (
	"context"

	"logistics/internal/core/domain/model/principal"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Service authenticates staff users and customers against their stored
// credentials and issues bearer tokens.
type Service struct {
	users     ports.UserRepository
	customers ports.CustomerRepository
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
}

// NewService creates the authentication service.
func NewService(
	users ports.UserRepository,
	customers ports.CustomerRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) (*Service, error) {
	if users == nil {
		return nil, errs.NewValueIsRequiredError("users")
	}
	if customers == nil {
		return nil, errs.NewValueIsRequiredError("customers")
	}
	if hasher == nil {
		return nil, errs.NewValueIsRequiredError("hasher")
	}
	if issuer == nil {
		return nil, errs.NewValueIsRequiredError("issuer")
	}

	return &Service{users: users, customers: customers, hasher: hasher, issuer: issuer}, nil
}

// StaffLogin authenticates a staff user by email and password and returns a
// bearer token carrying the user's role. A wrong email and a wrong password
// are indistinguishable to the caller.
func (s *Service) StaffLogin(ctx context.Context, email, password string) (StaffSession, error) {
	if email == "" {
		return StaffSession{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return StaffSession{}, errs.NewValueIsRequiredError("password")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return StaffSession{}, errs.NewUnauthenticatedErrorWithCause("invalid credentials", err)
	}

	if err := s.hasher.Compare(user.PasswordHash(), password); err != nil {
		return StaffSession{}, errs.NewUnauthenticatedErrorWithCause("invalid credentials", err)
	}

	p, err := principal.NewPrincipal(user.ID(), user.Email(), user.Role())
	if err != nil {
		return StaffSession{}, err
	}

	token, err := s.issuer.Issue(p)
	if err != nil {
		return StaffSession{}, err
	}

	return StaffSession{
		Token: token,
		ID:    user.ID().String(),
		Name:  user.Name(),
		Email: user.Email(),
		Role:  user.Role().String(),
	}, nil
}

// CustomerLogin authenticates a customer by email and password. Inactive
// customers cannot log in. The session reports whether this is the first
// login so the client can force a password change.
func (s *Service) CustomerLogin(ctx context.Context, email, password string) (CustomerSession, error) {
	if email == "" {
		return CustomerSession{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return CustomerSession{}, errs.NewValueIsRequiredError("password")
	}

	cust, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		return CustomerSession{}, errs.NewUnauthenticatedErrorWithCause("invalid credentials", err)
	}

	if !cust.IsActive() {
		return CustomerSession{}, errs.NewUnauthenticatedError("account is inactive")
	}

	if err := s.hasher.Compare(cust.PasswordHash(), password); err != nil {
		return CustomerSession{}, errs.NewUnauthenticatedErrorWithCause("invalid credentials", err)
	}

	p, err := principal.NewPrincipal(cust.ID(), cust.Email(), principal.RoleCustomer)
	if err != nil {
		return CustomerSession{}, err
	}

	token, err := s.issuer.Issue(p)
	if err != nil {
		return CustomerSession{}, err
	}

	return CustomerSession{
		Token:      token,
		ID:         cust.ID().String(),
		Name:       cust.Name(),
		Email:      cust.Email(),
		FirstLogin: cust.FirstLogin(),
	}, nil
}

// StaffSession is the result of a successful staff login.
type StaffSession struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CustomerSession is the result of a successful customer login. FirstLogin
// signals the client to require a password change before anything else.
type CustomerSession struct {
	Token      string `json:"token"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	FirstLogin bool   `json:"first_login"`
}
