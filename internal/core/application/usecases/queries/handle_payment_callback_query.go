package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/pkg/guard"
)

var ErrHandlePaymentCallbackQueryIsNotConstructed = errors.New(
	"HandlePaymentCallbackQuery must be created via NewHandlePaymentCallbackQuery constructor",
)

// HandlePaymentCallbackQuery is built from the gateway's redirect back to the storefront.
type HandlePaymentCallbackQuery struct { //nolint:recvcheck //using for validation
	merchantPaymentID payment.MerchantPaymentID
	userID            kernel.UUID

	guard guard.ConstructorGuard
}

func NewHandlePaymentCallbackQuery(merchantPaymentID string, userID kernel.UUID) (HandlePaymentCallbackQuery, error) {
	q := HandlePaymentCallbackQuery{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		q.setMerchantPaymentID(merchantPaymentID),
		q.setUserID(userID),
	); err != nil {
		return HandlePaymentCallbackQuery{}, err
	}
	return q, nil
}

func (q HandlePaymentCallbackQuery) Validate() error {
	return q.guard.Validate(ErrHandlePaymentCallbackQueryIsNotConstructed)
}

func (q HandlePaymentCallbackQuery) MerchantPaymentID() payment.MerchantPaymentID {
	return q.merchantPaymentID
}

func (q HandlePaymentCallbackQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *HandlePaymentCallbackQuery) setMerchantPaymentID(raw string) error {
	id, err := payment.NewMerchantPaymentID(raw)
	if err != nil {
		return err
	}
	q.merchantPaymentID = id
	return nil
}

func (q *HandlePaymentCallbackQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	q.userID = userID
	return nil
}

// HandlePaymentCallbackQueryResponse is where the user is sent next.
type HandlePaymentCallbackQueryResponse struct {
	MerchantPaymentID string
	RedirectTo        string
}
