package commands

import (
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places one checkout attempt for a user's cart.
//
// Example:
//
//	line, _ := cart.NewLine(1, 2)
//	c, _ := cart.NewCart([]cart.Line{line})
//	id, _ := payment.NewMerchantPaymentID("M1")
//	cmd, err := NewCreateOrderCommand(userID, c, id)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID            kernel.UUID
	cart              cart.Cart
	merchantPaymentID payment.MerchantPaymentID

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	userID kernel.UUID,
	c cart.Cart,
	merchantPaymentID payment.MerchantPaymentID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setCart(c),
		cmd.setMerchantPaymentID(merchantPaymentID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() kernel.UUID                        { return c.userID }
func (c CreateOrderCommand) Cart() cart.Cart                            { return c.cart }
func (c CreateOrderCommand) MerchantPaymentID() payment.MerchantPaymentID { return c.merchantPaymentID }

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setCart(v cart.Cart) error {
	if v.IsEmpty() {
		return ErrCartIsEmpty
	}
	c.cart = v
	return nil
}

func (c *CreateOrderCommand) setMerchantPaymentID(id payment.MerchantPaymentID) error {
	if id.IsZero() {
		return ErrMerchantPaymentIDIsRequired
	}
	c.merchantPaymentID = id
	return nil
}
