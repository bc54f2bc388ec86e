package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateUserCommand(
		"Dana Ops", "dana@logistics.test", "555-0199", "s3cret", principal.RoleLogistics, adminPrincipal(t),
	)
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	userRepo := new(MockUserRepository)
	uow := new(MockStaffUoW)

	uow.On("UserRepository").Return(userRepo)

	mock.InOrder(
		hasher.On("Hash", "s3cret").Return("$2a$hash", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*staff.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateUserCommandHandler(factory, hasher)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, principal.RoleLogistics, created.Role())
	require.Equal(t, "$2a$hash", created.PasswordHash())
	hasher.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_ForbiddenForLogistics(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateUserCommand(
		"Dana Ops", "dana@logistics.test", "", "s3cret", principal.RoleLogistics, logisticsPrincipal(t),
	)
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	factory := new(MockStaffUoWFactory)

	handler := commands.NewCreateUserCommandHandler(factory, hasher)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	hasher.AssertNotCalled(t, "Hash", "s3cret")
	factory.AssertNotCalled(t, "Create")
}

// MockUserRepository mocks ports.UserRepository.
type MockUserRepository struct{ mock.Mock }

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

// MockStaffUoW mocks commands.StaffUoW.
type MockStaffUoW struct{ mock.Mock }

func (m *MockStaffUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

// MockStaffUoWFactory mocks commands.StaffUoWFactory.
type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}
