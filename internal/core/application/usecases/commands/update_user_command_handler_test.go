package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/core/domain/model/staff"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	phone := "555-0200"

	cmd, err := commands.NewUpdateUserCommand(userID, nil, nil, &phone, nil, nil, adminPrincipal(t))
	require.NoError(t, err)

	testUser, err := staff.NewUser(userID, "Dana Ops", "dana@logistics.test", "", "$2a$hash", principal.RoleLogistics, time.Now())
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	userRepo := new(MockUserRepository)
	uow := new(MockStaffUoW)

	uow.On("UserRepository").Return(userRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		userRepo.On("Get", ctx, userID).Return(testUser, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*staff.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateUserCommandHandler(factory, hasher)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "555-0200", updated.Phone())
	require.Equal(t, "Dana Ops", updated.Name())
	// No password in the patch, no hashing.
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateUserCommandHandler_Handle_ForbiddenForLogistics(t *testing.T) {
	ctx := t.Context()
	name := "Dana Ops"

	cmd, err := commands.NewUpdateUserCommand(kernel.NewUUID(), &name, nil, nil, nil, nil, logisticsPrincipal(t))
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	factory := new(MockStaffUoWFactory)

	handler := commands.NewUpdateUserCommandHandler(factory, hasher)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
