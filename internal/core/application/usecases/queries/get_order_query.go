package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery reads one of the caller's orders by merchant payment id.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	merchantPaymentID payment.MerchantPaymentID
	userID            kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(merchantPaymentID string, userID kernel.UUID) (GetOrderQuery, error) {
	id, err := payment.NewMerchantPaymentID(merchantPaymentID)
	if err := errors.Join(err, userID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		merchantPaymentID: id,
		userID:            userID,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) MerchantPaymentID() payment.MerchantPaymentID { return q.merchantPaymentID }
func (q GetOrderQuery) UserID() kernel.UUID                         { return q.userID }
