package principal_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/principal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		input string
		want  principal.Role
	}{
		{"admin", principal.RoleAdmin},
		{"logistica", principal.RoleLogistics},
		{"customer", principal.RoleCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := principal.RoleFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
			assert.Equal(t, tt.input, role.String())
		})
	}

	t.Run("unknown_role_rejected", func(t *testing.T) {
		_, err := principal.RoleFromString("superuser")
		require.Error(t, err)
	})
}

func TestNewPrincipal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := principal.NewPrincipal(kernel.NewUUID(), "ops@example.com", principal.RoleAdmin)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "ops@example.com", p.Email())
		assert.Equal(t, principal.RoleAdmin, p.Role())
	})

	t.Run("zero_uuid_rejected", func(t *testing.T) {
		_, err := principal.NewPrincipal(kernel.UUID{}, "ops@example.com", principal.RoleAdmin)
		require.Error(t, err)
	})

	t.Run("unknown_role_rejected", func(t *testing.T) {
		_, err := principal.NewPrincipal(kernel.NewUUID(), "ops@example.com", principal.RoleUnknown)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p principal.Principal
		assert.ErrorIs(t, p.Validate(), principal.ErrPrincipalIsNotConstructed)
	})
}

func TestCapabilities(t *testing.T) {
	mustPrincipal := func(role principal.Role) principal.Principal {
		p, err := principal.NewPrincipal(kernel.NewUUID(), "actor@example.com", role)
		require.NoError(t, err)
		return p
	}

	admin := mustPrincipal(principal.RoleAdmin)
	logistics := mustPrincipal(principal.RoleLogistics)
	customer := mustPrincipal(principal.RoleCustomer)

	t.Run("order_management_is_staff_only", func(t *testing.T) {
		assert.True(t, admin.CanManageOrders())
		assert.True(t, logistics.CanManageOrders())
		assert.False(t, customer.CanManageOrders())
	})

	t.Run("order_deletion_is_admin_only", func(t *testing.T) {
		assert.True(t, admin.CanDeleteOrders())
		assert.False(t, logistics.CanDeleteOrders())
		assert.False(t, customer.CanDeleteOrders())
	})

	t.Run("route_update_is_admin_only", func(t *testing.T) {
		assert.True(t, admin.CanUpdateRoutes())
		assert.False(t, logistics.CanUpdateRoutes())
	})

	t.Run("carrier_management_is_admin_only", func(t *testing.T) {
		assert.True(t, admin.CanManageCarriers())
		assert.False(t, logistics.CanManageCarriers())
		assert.True(t, logistics.CanViewCarriers())
		assert.False(t, customer.CanViewCarriers())
	})

	t.Run("staff_management_is_admin_only", func(t *testing.T) {
		assert.True(t, admin.CanManageStaff())
		assert.False(t, logistics.CanManageStaff())
	})

	t.Run("customer_ownership", func(t *testing.T) {
		someCustomer := kernel.NewUUID()

		assert.True(t, admin.CanActForCustomer(someCustomer))
		assert.True(t, logistics.CanActForCustomer(someCustomer))
		assert.False(t, customer.CanActForCustomer(someCustomer))
		assert.True(t, customer.CanActForCustomer(customer.ID()))
	})
}
