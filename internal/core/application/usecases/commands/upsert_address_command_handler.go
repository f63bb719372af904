package commands

import (
	"context"

	"storefront/internal/core/domain/model/address"
)

type UpsertAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewUpsertAddressCommandHandler(uowFactory AddressUoWFactory) UpsertAddressCommandHandler {
	return UpsertAddressCommandHandler{uowFactory: uowFactory}
}

// Handle creates the user's address or replaces the existing one and returns the stored row.
func (h *UpsertAddressCommandHandler) Handle(ctx context.Context, cmd UpsertAddressCommand) (*address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	a, err := address.NewAddress(cmd.UserID(), cmd.Name(), cmd.Country(), cmd.PostalCode(), cmd.Line())
	if err != nil {
		return nil, err
	}

	return ExecuteTransaction(ctx, h.uowFactory.Create(),
		func(ctx context.Context, uow AddressUoW) (*address.Address, error) {
			return uow.AddressRepository().Upsert(ctx, a)
		})
}
