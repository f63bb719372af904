package addressrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/adapters/out/postgres/pgerrs"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// userForeignKey is the constraint PostgreSQL names for addresses.user_id REFERENCES users.
const userForeignKey = "addresses_user_id_fkey"

type GormAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

func NewGormAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormAddressRepository {
	return &GormAddressRepository{db: db, tracker: tracker}
}

// Upsert inserts the address or, when the user already has one, overwrites it
// in place. The row id of an existing address is kept. A user unknown to the
// users table yields *errs.ObjectNotFoundError.
func (r *GormAddressRepository) Upsert(ctx context.Context, a *address.Address) (*address.Address, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(a)
	dto.ID = 0
	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "country", "postal_code", "address", "updated_at"}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "created_at"}}},
		).
		Create(&dto).Error
	if err != nil {
		if constraint, ok := pgerrs.ForeignKeyViolation(err); ok && constraint == userForeignKey {
			return nil, errs.NewObjectNotFoundErrorWithCause("user", a.UserID().String(), err)
		}
		return nil, err
	}

	stored, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	r.tracker.TrackAggregate(stored.ID(), stored)
	return stored, nil
}

func (r *GormAddressRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*address.Address, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
