package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T, lines ...[2]int) cart.Cart {
	t.Helper()
	cl := make([]cart.Line, 0, len(lines))
	for _, l := range lines {
		line, err := cart.NewLine(int64(l[0]), l[1])
		require.NoError(t, err)
		cl = append(cl, line)
	}
	c, err := cart.NewCart(cl)
	require.NoError(t, err)
	return c
}

func mustMerchantPaymentID(t *testing.T, raw string) payment.MerchantPaymentID {
	t.Helper()
	id, err := payment.NewMerchantPaymentID(raw)
	require.NoError(t, err)
	return id
}

func TestNewCreateOrderCommand(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(userID, newCart(t, [2]int{1, 2}), mustMerchantPaymentID(t, "M1"))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "M1", cmd.MerchantPaymentID().String())
		assert.True(t, cmd.UserID().IsEqual(userID))
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, cart.Cart{}, payment.MerchantPaymentID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, commands.ErrCartIsEmpty)
		assert.ErrorIs(t, err, commands.ErrMerchantPaymentIDIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
