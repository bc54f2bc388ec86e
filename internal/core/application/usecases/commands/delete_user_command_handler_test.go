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

func TestDeleteUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	cmd, err := commands.NewDeleteUserCommand(userID, adminPrincipal(t))
	require.NoError(t, err)

	testUser, err := staff.NewUser(userID, "Dana Ops", "dana@logistics.test", "", "$2a$hash", principal.RoleLogistics, time.Now())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockStaffUoW)

	uow.On("UserRepository").Return(userRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		userRepo.On("Get", ctx, userID).Return(testUser, nil).Once(),
		userRepo.On("Delete", ctx, userID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteUserCommandHandler_Handle_ForbiddenForLogistics(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewDeleteUserCommand(kernel.NewUUID(), logisticsPrincipal(t))
	require.NoError(t, err)

	factory := new(MockStaffUoWFactory)
	handler := commands.NewDeleteUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
