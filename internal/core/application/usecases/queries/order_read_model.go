package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/core/ports"
)

// OrderResponse is the order read model: a payment joined with its shipment
// and line items. It is never persisted.
type OrderResponse struct {
	PaymentID         int64
	MerchantPaymentID string
	UserID            kernel.UUID
	CreatedAt         time.Time
	Shipment          ShipmentResponse
	Items             []OrderItemResponse
	Total             kernel.Money

	// Gateway is filled on the detail view only, and only when the gateway answered.
	Gateway *ports.PaymentDetails
}

type ShipmentResponse struct {
	ID              int64
	Address         string
	State           shipment.State
	AllowedActions  []shipment.Action
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	PaymentFailedAt *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time
}

type OrderItemResponse struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
}

const orderSelect = `
	SELECT
		p.id,
		p.user_id,
		p.merchant_payment_id,
		p.created_at,
		s.id,
		s.address,
		s.shipped_at,
		s.delivered_at,
		s.payment_failed_at,
		s.cancelled_at,
		s.created_at
	FROM paypay_payments p
	JOIN shipments s ON s.paypay_payment_id = p.id
`

const orderItemsSelect = `
	SELECT
		pp.paypay_payment_id,
		pp.product_id,
		pr.name,
		pp.quantity,
		pp.price
	FROM payment_products pp
	JOIN products pr ON pr.id = pp.product_id
	WHERE pp.paypay_payment_id = ANY(?)
	ORDER BY pp.id
`

// orderReader runs the projections shared by the order queries.
type orderReader struct {
	db *gorm.DB
}

// page bounds a listing. The zero page is unbounded and only fits lookups by a
// unique key.
type page struct {
	limit  int
	offset int
}

// find returns the orders matching where, newest first, with their items loaded.
func (r orderReader) find(ctx context.Context, paging page, where string, args ...any) ([]OrderResponse, error) {
	stmt := orderSelect + " WHERE " + where + " ORDER BY p.created_at DESC, p.id DESC"
	if paging.limit > 0 {
		stmt += " LIMIT ? OFFSET ?"
		args = append(args, paging.limit, paging.offset)
	}

	rows, err := r.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var o OrderResponse
		var userID uuid.UUID
		var ts shipment.Timestamps

		if err = rows.Scan(
			&o.PaymentID,
			&userID,
			&o.MerchantPaymentID,
			&o.CreatedAt,
			&o.Shipment.ID,
			&o.Shipment.Address,
			&ts.ShippedAt,
			&ts.DeliveredAt,
			&ts.PaymentFailedAt,
			&ts.CancelledAt,
			&o.Shipment.CreatedAt,
		); err != nil {
			return nil, err
		}

		if o.UserID, err = kernel.UUIDFromGoogle(userID); err != nil {
			return nil, err
		}
		if o.Shipment.State, err = shipment.DeriveState(ts); err != nil {
			return nil, err
		}
		o.Shipment.AllowedActions = shipment.AllowedActions(o.Shipment.State)
		o.Shipment.ShippedAt = ts.ShippedAt
		o.Shipment.DeliveredAt = ts.DeliveredAt
		o.Shipment.PaymentFailedAt = ts.PaymentFailedAt
		o.Shipment.CancelledAt = ts.CancelledAt
		o.Items = make([]OrderItemResponse, 0)
		o.Total = kernel.Yen(0)

		index[o.PaymentID] = len(orders)
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}
	if err = r.loadItems(ctx, orders, index); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r orderReader) loadItems(ctx context.Context, orders []OrderResponse, index map[int64]int) error {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.PaymentID)
	}

	rows, err := r.db.WithContext(ctx).Raw(orderItemsSelect, pq.Array(ids)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var paymentID int64
		var item OrderItemResponse
		var price int64

		if err = rows.Scan(&paymentID, &item.ProductID, &item.ProductName, &item.Quantity, &price); err != nil {
			return err
		}

		item.UnitPrice = kernel.Yen(price)
		if item.Subtotal, err = item.UnitPrice.Times(item.Quantity); err != nil {
			return err
		}

		o := &orders[index[paymentID]]
		o.Items = append(o.Items, item)
		if o.Total, err = o.Total.Add(item.Subtotal); err != nil {
			return err
		}
	}
	return rows.Err()
}
