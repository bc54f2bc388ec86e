package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/pkg/errs"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, aggregate *staff.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, aggregate *staff.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*staff.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*staff.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) CountOrders(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(p principal.Principal) (string, error) {
	args := m.Called(p)
	return args.String(0), args.Error(1)
}

func newService(t *testing.T) (*auth.Service, *MockUserRepository, *MockCustomerRepository, *MockPasswordHasher, *MockTokenIssuer) {
	t.Helper()

	users := new(MockUserRepository)
	customers := new(MockCustomerRepository)
	hasher := new(MockPasswordHasher)
	issuer := new(MockTokenIssuer)

	service, err := auth.NewService(users, customers, hasher, issuer)
	require.NoError(t, err)

	return service, users, customers, hasher, issuer
}

func testUser(t *testing.T) *staff.User {
	t.Helper()
	u, err := staff.NewUser(
		kernel.NewUUID(), "Marta Ruiz", "marta@example.com", "+34600000000",
		"bcrypt-hash", principal.RoleAdmin, time.Now().UTC(),
	)
	require.NoError(t, err)
	return u
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(
		kernel.NewUUID(), "Acme Imports", "acme@example.com", "bcrypt-hash",
		"+34600000001", time.Now().UTC(),
	)
	require.NoError(t, err)
	return c
}

func TestStaffLogin_ValidCredentials_IssuesToken(t *testing.T) {
	service, users, _, hasher, issuer := newService(t)
	user := testUser(t)

	users.On("GetByEmail", mock.Anything, "marta@example.com").Return(user, nil).Once()
	hasher.On("Compare", "bcrypt-hash", "s3cret").Return(nil).Once()
	issuer.On("Issue", mock.AnythingOfType("principal.Principal")).Return("token-123", nil).Once()

	session, err := service.StaffLogin(t.Context(), "marta@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "token-123", session.Token)
	assert.Equal(t, user.ID().String(), session.ID)
	assert.Equal(t, "admin", session.Role)

	users.AssertExpectations(t)
	hasher.AssertExpectations(t)
	issuer.AssertExpectations(t)
}

func TestStaffLogin_UnknownEmail_ReturnsUnauthenticatedError(t *testing.T) {
	service, users, _, hasher, issuer := newService(t)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, errs.NewObjectNotFoundError("email", "ghost@example.com")).Once()

	_, err := service.StaffLogin(t.Context(), "ghost@example.com", "s3cret")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	issuer.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestStaffLogin_WrongPassword_ReturnsUnauthenticatedError(t *testing.T) {
	service, users, _, hasher, issuer := newService(t)
	user := testUser(t)

	users.On("GetByEmail", mock.Anything, "marta@example.com").Return(user, nil).Once()
	hasher.On("Compare", "bcrypt-hash", "wrong").
		Return(errs.NewUnauthenticatedError("password mismatch")).Once()

	_, err := service.StaffLogin(t.Context(), "marta@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	issuer.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestStaffLogin_MissingFields_ReturnsValidationError(t *testing.T) {
	service, users, _, _, _ := newService(t)

	_, err := service.StaffLogin(t.Context(), "", "s3cret")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = service.StaffLogin(t.Context(), "marta@example.com", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestCustomerLogin_ValidCredentials_ReportsFirstLogin(t *testing.T) {
	service, _, customers, hasher, issuer := newService(t)
	cust := testCustomer(t)

	customers.On("GetByEmail", mock.Anything, "acme@example.com").Return(cust, nil).Once()
	hasher.On("Compare", "bcrypt-hash", "s3cret").Return(nil).Once()
	issuer.On("Issue", mock.AnythingOfType("principal.Principal")).Return("token-456", nil).Once()

	session, err := service.CustomerLogin(t.Context(), "acme@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "token-456", session.Token)
	assert.True(t, session.FirstLogin)

	customers.AssertExpectations(t)
}

func TestCustomerLogin_AfterPasswordChange_FirstLoginCleared(t *testing.T) {
	service, _, customers, hasher, issuer := newService(t)
	cust := testCustomer(t)
	require.NoError(t, cust.ChangePassword("new-hash"))

	customers.On("GetByEmail", mock.Anything, "acme@example.com").Return(cust, nil).Once()
	hasher.On("Compare", "new-hash", "s3cret").Return(nil).Once()
	issuer.On("Issue", mock.AnythingOfType("principal.Principal")).Return("token-789", nil).Once()

	session, err := service.CustomerLogin(t.Context(), "acme@example.com", "s3cret")

	require.NoError(t, err)
	assert.False(t, session.FirstLogin)
}

func TestCustomerLogin_InactiveAccount_ReturnsUnauthenticatedError(t *testing.T) {
	service, _, customers, hasher, _ := newService(t)
	cust := testCustomer(t)
	status := "inactive"
	require.NoError(t, cust.ApplyUpdate(nil, nil, nil, &status))

	customers.On("GetByEmail", mock.Anything, "acme@example.com").Return(cust, nil).Once()

	_, err := service.CustomerLogin(t.Context(), "acme@example.com", "s3cret")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
}

func TestCustomerLogin_TokenIssueFails_PropagatesError(t *testing.T) {
	service, _, customers, hasher, issuer := newService(t)
	cust := testCustomer(t)
	issueErr := errors.New("signing key unavailable")

	customers.On("GetByEmail", mock.Anything, "acme@example.com").Return(cust, nil).Once()
	hasher.On("Compare", "bcrypt-hash", "s3cret").Return(nil).Once()
	issuer.On("Issue", mock.AnythingOfType("principal.Principal")).Return("", issueErr).Once()

	_, err := service.CustomerLogin(t.Context(), "acme@example.com", "s3cret")

	require.Error(t, err)
	assert.ErrorIs(t, err, issueErr)
}
