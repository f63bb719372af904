package productrepo

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/pkg/errs"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetByIDs loads the current catalog price of every requested product.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]cart.Product, error) {
	products := make(map[int64]cart.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products[p.ID()] = p
	}

	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
	}

	return products, nil
}
