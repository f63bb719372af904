package queries

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrListStalePaymentsQueryIsNotConstructed = errors.New(
	"ListStalePaymentsQuery must be created via NewListStalePaymentsQuery constructor",
)

// ListStalePaymentsQuery finds payments whose shipment never left Created and
// that were placed before a cutoff. These are the candidates for payments the
// gateway never heard of.
type ListStalePaymentsQuery struct {
	createdBefore time.Time
	limit         int

	guard guard.ConstructorGuard
}

func NewListStalePaymentsQuery(createdBefore time.Time, limit int) (ListStalePaymentsQuery, error) {
	if createdBefore.IsZero() {
		return ListStalePaymentsQuery{}, errs.NewValueIsRequiredError("createdBefore")
	}
	if limit <= 0 {
		return ListStalePaymentsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}
	return ListStalePaymentsQuery{
		createdBefore: createdBefore,
		limit:         limit,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListStalePaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListStalePaymentsQueryIsNotConstructed)
}

func (q ListStalePaymentsQuery) CreatedBefore() time.Time { return q.createdBefore }
func (q ListStalePaymentsQuery) Limit() int               { return q.limit }

type StalePaymentResponse struct {
	PaymentID         int64
	MerchantPaymentID string
	CreatedAt         time.Time
}
