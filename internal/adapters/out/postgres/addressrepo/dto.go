// Package addressrepo persists the single shipping address kept per user.
package addressrepo

import (
	"time"

	"github.com/google/uuid"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
)

type AddressDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name       string
	Country    string
	PostalCode string
	Address    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(a *address.Address) AddressDTO {
	return AddressDTO{
		ID:         a.ID(),
		UserID:     a.UserID().Google(),
		Name:       a.Name(),
		Country:    a.Country(),
		PostalCode: a.PostalCode(),
		Address:    a.Line(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}
	return address.RestoreAddress(dto.ID, userID, dto.Name, dto.Country, dto.PostalCode, dto.Address)
}
