// Package paymentrepo persists PayPay payments and their line items.
package paymentrepo

import (
	"time"

	"github.com/google/uuid"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
)

type PaymentDTO struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	UserID            uuid.UUID `gorm:"type:uuid;index"`
	MerchantPaymentID string    `gorm:"uniqueIndex"`
	CreatedAt         time.Time
}

func (PaymentDTO) TableName() string {
	return "paypay_payments"
}

// LineItemDTO is a payment_products row. Price is the unit price at checkout.
type LineItemDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	PaypayPaymentID int64 `gorm:"index"`
	ProductID       int64
	Quantity        int
	Price           int64
}

func (LineItemDTO) TableName() string {
	return "payment_products"
}

func paymentFromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:                p.ID(),
		UserID:            p.UserID().Google(),
		MerchantPaymentID: p.MerchantPaymentID().String(),
		CreatedAt:         p.CreatedAt(),
	}
}

func paymentToDomain(dto PaymentDTO) (*payment.Payment, error) {
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}
	id, err := payment.NewMerchantPaymentID(dto.MerchantPaymentID)
	if err != nil {
		return nil, err
	}
	return payment.RestorePayment(dto.ID, userID, id, dto.CreatedAt)
}

func lineItemFromDomain(li payment.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:              li.ID(),
		PaypayPaymentID: li.PaymentID(),
		ProductID:       li.ProductID(),
		Quantity:        li.Quantity(),
		Price:           li.Price().Amount(),
	}
}

func lineItemToDomain(dto LineItemDTO) (payment.LineItem, error) {
	price, err := kernel.NewMoney(dto.Price, kernel.DefaultCurrency)
	if err != nil {
		return payment.LineItem{}, err
	}
	return payment.RestoreLineItem(dto.ID, dto.PaypayPaymentID, dto.ProductID, dto.Quantity, price)
}
