package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateCustomerCommandHandler handles customer registration.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	hasher     ports.PasswordHasher
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	logger *slog.Logger,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		mailer:     mailer,
		logger:     logger,
	}
}

// Handle processes the command and returns the created customer. The account
// starts active with first_login set. The credential email goes out only
// after the commit and is best-effort: a delivery failure is logged and the
// account stays created.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().CanManageCustomers() {
		return nil, errs.NewForbiddenError("create customer")
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := customer.NewCustomer(kernel.NewUUID(), cmd.Name(), cmd.Email(), hash, cmd.Phone(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.CustomerRepository().Add(ctx, cust); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.mailer.SendCustomerCredentials(ctx, cust.Email(), cust.Name(), cmd.Password()); err != nil {
		h.logger.Warn("credential email delivery failed",
			slog.String("customerId", cust.ID().String()),
			slog.String("error", err.Error()),
		)
	}

	return cust, nil
}
