// Package ports defines the contracts between the storefront core and its
// infrastructure: repositories bound to a unit of work and the payment gateway.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipment"
)

// AddressRepository persists the one address each user keeps on file.
type AddressRepository interface {
	// Upsert creates the user's address or replaces it, keyed by user id.
	// Returns the stored address with its id.
	Upsert(ctx context.Context, a *address.Address) (*address.Address, error)

	// GetByUser returns *errs.ObjectNotFoundError when the user has no address.
	GetByUser(ctx context.Context, userID kernel.UUID) (*address.Address, error)
}

// ProductRepository reads catalog entries. The core never writes products.
type ProductRepository interface {
	// GetByIDs returns every requested product keyed by id, or
	// *errs.ObjectNotFoundError naming the first id that does not exist.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]cart.Product, error)
}

// PaymentRepository persists PayPay checkout attempts.
type PaymentRepository interface {
	// Add inserts the payment and returns its id. A duplicate merchant payment id
	// yields *errs.ConflictError.
	Add(ctx context.Context, p *payment.Payment) (int64, error)

	// GetByMerchantPaymentID returns *errs.ObjectNotFoundError for an unknown id.
	GetByMerchantPaymentID(ctx context.Context, id payment.MerchantPaymentID) (*payment.Payment, error)
}

// LineItemRepository persists the purchased products of a payment.
type LineItemRepository interface {
	AddAll(ctx context.Context, items []payment.LineItem) error
	ListByPayment(ctx context.Context, paymentID int64) ([]payment.LineItem, error)
}

// ShipmentRepository persists shipments and their status timestamps.
type ShipmentRepository interface {
	// Add inserts the shipment and returns its id. A second shipment for the
	// same payment yields *errs.ConflictError.
	Add(ctx context.Context, s *shipment.Shipment) (int64, error)

	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// Transition sets the timestamp named by action to at, but only while the
	// row is still in state from. When the row has moved on it returns
	// *errs.IllegalTransitionError and writes nothing.
	Transition(ctx context.Context, id int64, from shipment.State, action shipment.Action, at time.Time) error
}
