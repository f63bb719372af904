package payment

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is the local record of a PayPay checkout. ID is 0 until the row is inserted.
type Payment struct {
	id                int64
	userID            kernel.UUID
	merchantPaymentID MerchantPaymentID
	createdAt         time.Time

	isConstructed bool
}

func NewPayment(userID kernel.UUID, merchantPaymentID MerchantPaymentID) (*Payment, error) {
	p := &Payment{isConstructed: true}
	if err := errors.Join(
		p.setUserID(userID),
		p.setMerchantPaymentID(merchantPaymentID),
	); err != nil {
		return nil, err
	}
	return p, nil
}

func RestorePayment(
	id int64,
	userID kernel.UUID,
	merchantPaymentID MerchantPaymentID,
	createdAt time.Time,
) (*Payment, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("payment id")
	}
	p, err := NewPayment(userID, merchantPaymentID)
	if err != nil {
		return nil, err
	}
	p.id = id
	p.createdAt = createdAt
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() int64                            { return p.id }
func (p *Payment) UserID() kernel.UUID                  { return p.userID }
func (p *Payment) MerchantPaymentID() MerchantPaymentID { return p.merchantPaymentID }
func (p *Payment) CreatedAt() time.Time                 { return p.createdAt }

// IsOwnedBy reports whether userID placed this payment.
func (p *Payment) IsOwnedBy(userID kernel.UUID) bool {
	return p.userID.IsEqual(userID)
}

// CheckOwner returns an UnauthorizedError when userID is not the owner.
func (p *Payment) CheckOwner(userID kernel.UUID) error {
	if !p.IsOwnedBy(userID) {
		return errs.NewUnauthorizedError("payment", p.merchantPaymentID.String())
	}
	return nil
}

func (p *Payment) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	p.userID = userID
	return nil
}

func (p *Payment) setMerchantPaymentID(id MerchantPaymentID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("merchantPaymentId")
	}
	p.merchantPaymentID = id
	return nil
}
