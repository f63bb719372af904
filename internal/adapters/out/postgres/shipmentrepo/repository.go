package shipmentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"storefront/internal/adapters/out/postgres/pgerrs"
	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/pkg/errs"
)

type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{db: db, tracker: tracker}
}

// actionColumns maps an action to the timestamp column it sets.
var actionColumns = map[shipment.Action]string{
	shipment.ActionShipped:       "shipped_at",
	shipment.ActionDelivered:     "delivered_at",
	shipment.ActionPaymentFailed: "payment_failed_at",
	shipment.ActionCancelled:     "cancelled_at",
}

// statePredicates restates a non-terminal state as a WHERE clause over the timestamps.
var statePredicates = map[shipment.State]string{
	shipment.Created: "shipped_at IS NULL AND delivered_at IS NULL " +
		"AND payment_failed_at IS NULL AND cancelled_at IS NULL",
	shipment.Shipped: "shipped_at IS NOT NULL AND delivered_at IS NULL " +
		"AND payment_failed_at IS NULL AND cancelled_at IS NULL",
}

// Add inserts the shipment. A payment already having a shipment yields *errs.ConflictError.
func (r *GormShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) (int64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if _, ok := pgerrs.UniqueViolation(err); ok {
			return 0, errs.NewConflictErrorWithCause("shipment for payment", dto.PaypayPaymentID, err)
		}
		return 0, err
	}

	r.tracker.TrackAggregate(dto.ID, s)
	return dto.ID, nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Transition writes one timestamp with a conditional UPDATE. The WHERE clause
// restates from, so the write only lands if nobody moved the shipment since it
// was read. Zero affected rows on an existing shipment is an illegal transition.
func (r *GormShipmentRepository) Transition(
	ctx context.Context,
	id int64,
	from shipment.State,
	action shipment.Action,
	at time.Time,
) error {
	if _, err := shipment.Transition(from, action); err != nil {
		return err
	}
	column, ok := actionColumns[action]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q has no column", action))
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", id).
		Where(statePredicates[from]).
		Update(column, at.UTC())
	if result.Error != nil {
		if constraint, isCheck := pgerrs.CheckViolation(result.Error); isCheck {
			return errs.NewValueIsInvalidErrorWithCause(constraint, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("shipment", id)
		}
		return errs.NewIllegalTransitionError(from.String(), action.String())
	}

	return nil
}
