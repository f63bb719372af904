package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentFinder struct{ mock.Mock }

func (m *MockPaymentFinder) GetByMerchantPaymentID(
	ctx context.Context,
	id payment.MerchantPaymentID,
) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func storedPayment(t *testing.T, owner kernel.UUID, raw string) *payment.Payment {
	t.Helper()
	id, err := payment.NewMerchantPaymentID(raw)
	require.NoError(t, err)
	p, err := payment.RestorePayment(1, owner, id, time.Now())
	require.NoError(t, err)
	return p
}

func TestHandlePaymentCallbackQueryHandler_Handle(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("owner is redirected to the result page", func(t *testing.T) {
		finder := new(MockPaymentFinder)
		finder.On("GetByMerchantPaymentID", mock.Anything, mock.Anything).
			Return(storedPayment(t, owner, "M1"), nil).Once()
		h := queries.NewHandlePaymentCallbackQueryHandler(finder, "/orders/{merchantPaymentId}/result")

		q, err := queries.NewHandlePaymentCallbackQuery("M1", owner)
		require.NoError(t, err)

		got, err := h.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, "/orders/M1/result", got.RedirectTo)
		assert.Equal(t, "M1", got.MerchantPaymentID)
		finder.AssertExpectations(t)
	})

	t.Run("another user gets unauthorized", func(t *testing.T) {
		finder := new(MockPaymentFinder)
		finder.On("GetByMerchantPaymentID", mock.Anything, mock.Anything).
			Return(storedPayment(t, owner, "M1"), nil).Once()
		h := queries.NewHandlePaymentCallbackQueryHandler(finder, "/orders/{merchantPaymentId}/result")

		q, err := queries.NewHandlePaymentCallbackQuery("M1", kernel.NewUUID())
		require.NoError(t, err)

		got, err := h.Handle(t.Context(), q)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Empty(t, got.RedirectTo)
	})

	t.Run("unknown payment is not found", func(t *testing.T) {
		finder := new(MockPaymentFinder)
		finder.On("GetByMerchantPaymentID", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("merchantPaymentId", "M404")).Once()
		h := queries.NewHandlePaymentCallbackQueryHandler(finder, "/orders/{merchantPaymentId}/result")

		q, err := queries.NewHandlePaymentCallbackQuery("M404", owner)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unconstructed query is rejected before any read", func(t *testing.T) {
		finder := new(MockPaymentFinder)
		h := queries.NewHandlePaymentCallbackQueryHandler(finder, "/orders/{merchantPaymentId}/result")

		_, err := h.Handle(t.Context(), queries.HandlePaymentCallbackQuery{})

		require.ErrorIs(t, err, queries.ErrHandlePaymentCallbackQueryIsNotConstructed)
		finder.AssertNotCalled(t, "GetByMerchantPaymentID", mock.Anything, mock.Anything)
	})
}

func TestNewHandlePaymentCallbackQuery_Validation(t *testing.T) {
	_, err := queries.NewHandlePaymentCallbackQuery("", kernel.UUID{})

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
