package carrier_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCarrier(t *testing.T) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(kernel.NewUUID(), "Andes Freight", "+57 300 000 0000", time.Now())
	require.NoError(t, err)
	return c
}

func TestNewCarrier(t *testing.T) {
	t.Run("defaults_to_available", func(t *testing.T) {
		c := newTestCarrier(t)

		require.NoError(t, c.Validate())
		assert.Equal(t, carrier.StateAvailable, c.State())
	})

	t.Run("name_is_required", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), "  ", "contact", time.Now())
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var c carrier.Carrier
		assert.ErrorIs(t, c.Validate(), carrier.ErrCarrierIsNotConstructed)
	})
}

func TestMarkOnTrip(t *testing.T) {
	c := newTestCarrier(t)

	c.MarkOnTrip()

	assert.Equal(t, carrier.StateOnTrip, c.State())
}

func TestCarrierApplyUpdate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("partial_update_keeps_omitted_fields", func(t *testing.T) {
		c := newTestCarrier(t)

		require.NoError(t, c.ApplyUpdate(nil, strPtr("ops@andesfreight.co"), nil))

		assert.Equal(t, "Andes Freight", c.Name())
		assert.Equal(t, "ops@andesfreight.co", c.Contact())
		assert.Equal(t, carrier.StateAvailable, c.State())
	})

	t.Run("manual_state_reset", func(t *testing.T) {
		c := newTestCarrier(t)
		c.MarkOnTrip()

		require.NoError(t, c.ApplyUpdate(nil, nil, strPtr(carrier.StateAvailable)))

		assert.Equal(t, carrier.StateAvailable, c.State())
	})

	t.Run("free_form_state_is_accepted", func(t *testing.T) {
		c := newTestCarrier(t)
		require.NoError(t, c.ApplyUpdate(nil, nil, strPtr("in maintenance")))
		assert.Equal(t, "in maintenance", c.State())
	})

	t.Run("blank_name_is_rejected", func(t *testing.T) {
		c := newTestCarrier(t)
		require.Error(t, c.ApplyUpdate(strPtr(""), nil, nil))
	})
}
