// Package postgres implements the storefront's unit of work on GORM.
//
// A unit of work is created per request. Repositories taken from it before
// Begin run on the plain connection pool; after Begin they share the
// transaction until Commit or Rollback:
//
//	uow := factory.Create()
//	addr, err := uow.AddressRepository().GetByUser(ctx, userID) // pool
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//	id, err := uow.PaymentRepository().Add(ctx, p) // transaction
//	...
//	return uow.Commit(ctx)
//
// Begin is idempotent within one unit of work; there are no nested transactions.
package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront/internal/adapters/out/postgres/addressrepo"
	"storefront/internal/adapters/out/postgres/paymentrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/shipmentrepo"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/logger"
)

// trackedAggregate is an aggregate written during the unit of work, keyed by its row id.
type trackedAggregate struct {
	ID        int64
	Aggregate any
}

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens a transaction on a dedicated connection. Calling it again while a
// transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.inTransaction() {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open. The
// connection is released whether or not the commit succeeds. Every aggregate
// written in the transaction is logged at debug level once it is durable.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if !uow.inTransaction() {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	for _, written := range uow.tracked() {
		log.Debug("aggregate committed",
			zap.Int64("id", written.ID),
			zap.String("type", fmt.Sprintf("%T", written.Aggregate)))
	}
	return nil
}

// Rollback discards the transaction and everything tracked in it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if !uow.inTransaction() {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// inTransaction reports whether Begin has been called without a matching Commit or Rollback.
func (uow *GormUnitOfWork) inTransaction() bool {
	return uow.tx != nil
}

func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return addressrepo.NewGormAddressRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LineItemRepository() ports.LineItemRepository {
	return paymentrepo.NewGormLineItemRepository(uow.conn())
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(id int64, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// tracked returns the aggregates written since the last Begin. After a
// rollback it is empty.
func (uow *GormUnitOfWork) tracked() []trackedAggregate {
	out := make([]trackedAggregate, len(uow.trackedAggregates))
	copy(out, uow.trackedAggregates)
	return out
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
