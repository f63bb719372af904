package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// QRCodeRequest asks the gateway for a checkout URL.
type QRCodeRequest struct {
	MerchantPaymentID string
	Items             []QRCodeItem
}

type QRCodeItem struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice kernel.Money
}

// QRCode is the gateway's answer to a successful QRCodeRequest.
type QRCode struct {
	CodeID   string
	URL      string
	DeepLink string
}

// PaymentDetails is the gateway's view of a payment.
type PaymentDetails struct {
	Status      string
	Amount      kernel.Money
	RequestedAt time.Time
	AcceptedAt  *time.Time
}

// PaymentGateway is the outbound payment provider. Every failure, including a
// response without a URL, is reported as *errs.GatewayError.
type PaymentGateway interface {
	CreateQRCode(ctx context.Context, req QRCodeRequest) (QRCode, error)

	// GetPaymentDetails returns (nil, nil) when the gateway does not know the payment.
	GetPaymentDetails(ctx context.Context, merchantPaymentID string) (*PaymentDetails, error)
}
