package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeCustomerPasswordCommandHandler_Handle_CustomerChangesOwnPassword(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewChangeCustomerPasswordCommand(customerID, "n3w-pass", customerPrincipal(t, customerID))
	require.NoError(t, err)

	testCustomer, err := customer.NewCustomer(customerID, "Acme", "acme@example.com", "old-hash", "555-0101", time.Now())
	require.NoError(t, err)
	require.True(t, testCustomer.FirstLogin())

	customerRepo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	hasher := new(MockPasswordHasher)

	hasher.On("Hash", "n3w-pass").Return("new-hash", nil).Once()
	uow.On("CustomerRepository").Return(customerRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		customerRepo.On("Get", ctx, customerID).Return(testCustomer, nil).Once(),
		customerRepo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeCustomerPasswordCommandHandler(factory, hasher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "new-hash", testCustomer.PasswordHash())
	assert.False(t, testCustomer.FirstLogin())
	customerRepo.AssertExpectations(t)
}

func TestChangeCustomerPasswordCommandHandler_Handle_CustomerCannotChangeOthers(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewChangeCustomerPasswordCommand(
		kernel.NewUUID(), "n3w-pass", customerPrincipal(t, kernel.NewUUID()),
	)
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	factory := new(MockCustomerUoWFactory)

	handler := commands.NewChangeCustomerPasswordCommandHandler(factory, hasher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	hasher.AssertNotCalled(t, "Hash", "n3w-pass")
	factory.AssertNotCalled(t, "Create")
}

func TestChangeCustomerPasswordCommandHandler_Handle_StaffChangesAnyPassword(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewChangeCustomerPasswordCommand(customerID, "reset-pass", logisticsPrincipal(t))
	require.NoError(t, err)

	testCustomer, err := customer.NewCustomer(customerID, "Acme", "acme@example.com", "old-hash", "555-0101", time.Now())
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	hasher := new(MockPasswordHasher)

	hasher.On("Hash", "reset-pass").Return("reset-hash", nil).Once()
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	customerRepo.On("Get", ctx, customerID).Return(testCustomer, nil).Once()
	customerRepo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeCustomerPasswordCommandHandler(factory, hasher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "reset-hash", testCustomer.PasswordHash())
}
