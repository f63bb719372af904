// Package commands contains the storefront's write operations: placing an order,
// moving a shipment through its lifecycle and saving a shipping address.
// Every handler follows the same shape: validate the command, run the writes in
// one transaction through ExecuteTransaction, then perform any side effect that
// must not hold the transaction open.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// OrderUoW covers everything order creation touches.
	//
	// Example:
	//   uow := factory.Create()
	//   addr, err := uow.AddressRepository().GetByUser(ctx, userID) // outside the transaction
	//   id, err := ExecuteTransaction(ctx, uow, func(ctx context.Context, uow OrderUoW) (int64, error) {
	//       return uow.PaymentRepository().Add(ctx, p)
	//   })
	OrderUoW interface {
		TxManager
		AddressRepoFactory
		ProductRepoFactory
		PaymentRepoFactory
		LineItemRepoFactory
		ShipmentRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ShipmentUoW is used by status transitions, which only touch shipments.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	AddressUoWFactory interface {
		Create() AddressUoW
	}
)
