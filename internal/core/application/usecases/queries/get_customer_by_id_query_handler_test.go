package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestGetCustomerByIDQuery_RequiresCustomerID(t *testing.T) {
	actor, err := principal.NewPrincipal(kernel.NewUUID(), "admin@logistics.test", principal.RoleAdmin)
	require.NoError(t, err)

	_, err = queries.NewGetCustomerByIDQuery(kernel.UUID{}, actor)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetCustomerByIDQueryHandler_Handle_ForbiddenForOtherCustomer(t *testing.T) {
	ownID := kernel.NewUUID()
	actor, err := principal.NewPrincipal(ownID, "acme@example.com", principal.RoleCustomer)
	require.NoError(t, err)

	query, err := queries.NewGetCustomerByIDQuery(kernel.NewUUID(), actor)
	require.NoError(t, err)

	// The gate fails before any statement runs, so no connection is needed.
	handler := queries.NewGetCustomerByIDQueryHandler(nil)
	_, err = handler.Handle(t.Context(), query)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestGetCustomerByIDQueryHandler_Handle_RejectsZeroValueQuery(t *testing.T) {
	handler := queries.NewGetCustomerByIDQueryHandler(nil)

	_, err := handler.Handle(t.Context(), queries.GetCustomerByIDQuery{})

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetCustomerByIDQueryIsNotConstructed)
}
