package commands

import (
	"errors"

	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand asks to set one more status timestamp on a shipment.
// The raw status is parsed here, so an unknown value never reaches the handler.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID int64
	action     shipment.Action

	guard guard.ConstructorGuard
}

func NewUpdateShipmentStatusCommand(shipmentID int64, status string) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setAction(status),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func (c UpdateShipmentStatusCommand) ShipmentID() int64        { return c.shipmentID }
func (c UpdateShipmentStatusCommand) Action() shipment.Action { return c.action }

func (c *UpdateShipmentStatusCommand) setShipmentID(id int64) error {
	if id <= 0 {
		return ErrShipmentIDIsInvalid
	}
	c.shipmentID = id
	return nil
}

func (c *UpdateShipmentStatusCommand) setAction(status string) error {
	action, err := shipment.ParseAction(status)
	if err != nil {
		return err
	}
	c.action = action
	return nil
}
