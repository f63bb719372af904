package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListStalePaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListStalePaymentsQueryHandler(db *gorm.DB) ListStalePaymentsQueryHandler {
	return ListStalePaymentsQueryHandler{db: db}
}

// Handle returns the oldest stale payments first.
func (h ListStalePaymentsQueryHandler) Handle(
	ctx context.Context,
	query ListStalePaymentsQuery,
) ([]StalePaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.id, p.merchant_payment_id, p.created_at
		FROM paypay_payments p
		JOIN shipments s ON s.paypay_payment_id = p.id
		WHERE s.shipped_at IS NULL
			AND s.delivered_at IS NULL
			AND s.payment_failed_at IS NULL
			AND s.cancelled_at IS NULL
			AND p.created_at < ?
		ORDER BY p.created_at, p.id
		LIMIT ?
	`, query.CreatedBefore(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]StalePaymentResponse, 0)
	for rows.Next() {
		var p StalePaymentResponse
		if err = rows.Scan(&p.PaymentID, &p.MerchantPaymentID, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
