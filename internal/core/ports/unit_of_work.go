package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary. Repositories obtained after Begin run
// inside the transaction; before Begin they use the plain connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	AddressRepository() AddressRepository
	ProductRepository() ProductRepository
	PaymentRepository() PaymentRepository
	LineItemRepository() LineItemRepository
	ShipmentRepository() ShipmentRepository
}
