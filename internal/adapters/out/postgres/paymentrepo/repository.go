package paymentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/adapters/out/postgres/pgerrs"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/pkg/errs"
)

// userForeignKey is the constraint PostgreSQL names for paypay_payments.user_id REFERENCES users.
const userForeignKey = "paypay_payments_user_id_fkey"

type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{db: db, tracker: tracker}
}

// Add inserts the payment. The merchant payment id is unique in the table, so a
// second checkout with the same id fails with *errs.ConflictError. A user
// unknown to the users table yields *errs.ObjectNotFoundError.
func (r *GormPaymentRepository) Add(ctx context.Context, p *payment.Payment) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	dto := paymentFromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if _, ok := pgerrs.UniqueViolation(err); ok {
			return 0, errs.NewConflictErrorWithCause("merchantPaymentId", dto.MerchantPaymentID, err)
		}
		if constraint, ok := pgerrs.ForeignKeyViolation(err); ok && constraint == userForeignKey {
			return 0, errs.NewObjectNotFoundErrorWithCause("user", p.UserID().String(), err)
		}
		return 0, err
	}

	r.tracker.TrackAggregate(dto.ID, p)
	return dto.ID, nil
}

func (r *GormPaymentRepository) GetByMerchantPaymentID(
	ctx context.Context,
	id payment.MerchantPaymentID,
) (*payment.Payment, error) {
	if id.IsZero() {
		return nil, errs.NewValueIsRequiredError("merchantPaymentId")
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "merchant_payment_id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("merchantPaymentId", id.String())
		}
		return nil, err
	}

	return paymentToDomain(dto)
}

type GormLineItemRepository struct {
	db *gorm.DB
}

func NewGormLineItemRepository(db *gorm.DB) *GormLineItemRepository {
	return &GormLineItemRepository{db: db}
}

// AddAll inserts every line item in one statement.
func (r *GormLineItemRepository) AddAll(ctx context.Context, items []payment.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	dtos := make([]LineItemDTO, 0, len(items))
	for _, li := range items {
		dtos = append(dtos, lineItemFromDomain(li))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormLineItemRepository) ListByPayment(ctx context.Context, paymentID int64) ([]payment.LineItem, error) {
	var dtos []LineItemDTO
	if err := r.db.WithContext(ctx).
		Where("paypay_payment_id = ?", paymentID).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]payment.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		li, err := lineItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, nil
}
