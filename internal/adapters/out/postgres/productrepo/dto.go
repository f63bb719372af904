// Package productrepo reads catalog entries. Products are maintained outside
// the storefront core and are never written here.
package productrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

type ProductDTO struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	Price     int64
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (cart.Product, error) {
	price, err := kernel.NewMoney(dto.Price, kernel.DefaultCurrency)
	if err != nil {
		return cart.Product{}, err
	}
	return cart.RestoreProduct(dto.ID, dto.Name, price)
}
