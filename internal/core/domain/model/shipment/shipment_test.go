package shipment_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	t.Run("starts in created with no timestamps", func(t *testing.T) {
		s, err := shipment.NewShipment(7, "Taro 〒150-0001 Japan Shibuya")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, int64(7), s.PaymentID())
		assert.Equal(t, shipment.Created, s.State())
		assert.Equal(t, shipment.Timestamps{}, s.Timestamps())
	})

	t.Run("requires payment and address", func(t *testing.T) {
		_, err := shipment.NewShipment(0, " ")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreShipment(t *testing.T) {
	shippedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("derives the state from timestamps", func(t *testing.T) {
		s, err := shipment.RestoreShipment(3, 7, "addr", shipment.Timestamps{ShippedAt: &shippedAt}, shippedAt)

		require.NoError(t, err)
		assert.Equal(t, int64(3), s.ID())
		assert.Equal(t, shipment.Shipped, s.State())
		assert.Equal(t, []shipment.Action{shipment.ActionDelivered}, s.AllowedActions())
	})

	t.Run("rejects unreachable rows", func(t *testing.T) {
		_, err := shipment.RestoreShipment(3, 7, "addr", shipment.Timestamps{DeliveredAt: &shippedAt}, shippedAt)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_Apply(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("shipped then delivered", func(t *testing.T) {
		s, err := shipment.NewShipment(1, "addr")
		require.NoError(t, err)

		require.NoError(t, s.Apply(shipment.ActionShipped, now))
		require.NoError(t, s.Apply(shipment.ActionDelivered, now.Add(time.Hour)))

		assert.Equal(t, shipment.Delivered, s.State())
		require.NotNil(t, s.Timestamps().DeliveredAt)
		assert.Equal(t, now.Add(time.Hour), *s.Timestamps().DeliveredAt)
	})

	t.Run("illegal action leaves the shipment untouched", func(t *testing.T) {
		s, err := shipment.NewShipment(1, "addr")
		require.NoError(t, err)

		err = s.Apply(shipment.ActionDelivered, now)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, shipment.Created, s.State())
		assert.Nil(t, s.Timestamps().DeliveredAt)
	})

	t.Run("cancelled is final", func(t *testing.T) {
		s, err := shipment.NewShipment(1, "addr")
		require.NoError(t, err)
		require.NoError(t, s.Apply(shipment.ActionCancelled, now))

		for _, a := range allActions {
			assert.ErrorIs(t, s.Apply(a, now), errs.ErrIllegalTransition, a.String())
		}
		assert.Equal(t, shipment.Cancelled, s.State())
	})
}

func TestShipment_ValidateZeroValue(t *testing.T) {
	var s *shipment.Shipment
	assert.Equal(t, shipment.ErrShipmentIsNotConstructed, s.Validate())
}
