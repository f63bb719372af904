package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetAddressQueryIsNotConstructed = errors.New("GetAddressQuery must be created via NewGetAddressQuery constructor")

type GetAddressQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAddressQuery(userID kernel.UUID) (GetAddressQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetAddressQuery{}, err
	}
	return GetAddressQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressQueryIsNotConstructed)
}

func (q GetAddressQuery) UserID() kernel.UUID {
	return q.userID
}

type GetAddressQueryResponse struct {
	ID         int64
	Name       string
	Country    string
	PostalCode string
	Address    string
	Snapshot   string
}
