package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpsertAddressCommandIsNotConstructed = errors.New(
	"UpsertAddressCommand must be created via NewUpsertAddressCommand constructor",
)

// UpsertAddressCommand saves the caller's shipping address. Field validation is
// left to address.NewAddress.
type UpsertAddressCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	name       string
	country    string
	postalCode string
	line       string

	guard guard.ConstructorGuard
}

func NewUpsertAddressCommand(userID kernel.UUID, name, country, postalCode, line string) (UpsertAddressCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpsertAddressCommand{}, err
	}

	return UpsertAddressCommand{
		userID:     userID,
		name:       name,
		country:    country,
		postalCode: postalCode,
		line:       line,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpsertAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpsertAddressCommandIsNotConstructed)
}

func (c UpsertAddressCommand) UserID() kernel.UUID { return c.userID }
func (c UpsertAddressCommand) Name() string        { return c.name }
func (c UpsertAddressCommand) Country() string     { return c.country }
func (c UpsertAddressCommand) PostalCode() string  { return c.postalCode }
func (c UpsertAddressCommand) Line() string        { return c.line }
