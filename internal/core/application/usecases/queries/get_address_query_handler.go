package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

type GetAddressQueryHandler struct {
	db *gorm.DB
}

func NewGetAddressQueryHandler(db *gorm.DB) GetAddressQueryHandler {
	return GetAddressQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when the user has not saved an address yet.
func (h GetAddressQueryHandler) Handle(ctx context.Context, query GetAddressQuery) (GetAddressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAddressQueryResponse{}, err
	}

	var row struct {
		ID         int64
		UserID     uuid.UUID
		Name       string
		Country    string
		PostalCode string
		Address    string
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, user_id, name, country, postal_code, address
		FROM addresses
		WHERE user_id = ?
	`, query.UserID().String()).Row().Scan(
		&row.ID, &row.UserID, &row.Name, &row.Country, &row.PostalCode, &row.Address,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAddressQueryResponse{}, errs.NewObjectNotFoundError("address", query.UserID().String())
		}
		return GetAddressQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromGoogle(row.UserID)
	if err != nil {
		return GetAddressQueryResponse{}, err
	}
	a, err := address.RestoreAddress(row.ID, userID, row.Name, row.Country, row.PostalCode, row.Address)
	if err != nil {
		return GetAddressQueryResponse{}, err
	}

	return GetAddressQueryResponse{
		ID:         a.ID(),
		Name:       a.Name(),
		Country:    a.Country(),
		PostalCode: a.PostalCode(),
		Address:    a.Line(),
		Snapshot:   a.Snapshot(),
	}, nil
}
