package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	DefaultOrdersPageSize = 50
	MaxOrdersPageSize     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery or NewListAllOrdersQuery",
)

// ListOrdersQuery lists one page of one user's orders, or of every order for
// the admin console.
type ListOrdersQuery struct {
	userID *kernel.UUID
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery pages through userID's orders. A zero limit means
// DefaultOrdersPageSize.
func NewListOrdersQuery(userID kernel.UUID, limit, offset int) (ListOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	q, err := newListOrdersQuery(limit, offset)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	q.userID = &userID
	return q, nil
}

func NewListAllOrdersQuery(limit, offset int) (ListOrdersQuery, error) {
	return newListOrdersQuery(limit, offset)
}

func newListOrdersQuery(limit, offset int) (ListOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultOrdersPageSize
	}
	if limit < 1 || limit > MaxOrdersPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrdersPageSize)
	}
	if offset < 0 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return ListOrdersQuery{limit: limit, offset: offset, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID is nil for the admin listing.
func (q ListOrdersQuery) UserID() *kernel.UUID {
	return q.userID
}

func (q ListOrdersQuery) Limit() int  { return q.limit }
func (q ListOrdersQuery) Offset() int { return q.offset }
