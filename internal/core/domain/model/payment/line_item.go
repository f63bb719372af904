package payment

import (
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// LineItem is one purchased product with the unit price frozen at checkout.
type LineItem struct {
	id        int64
	paymentID int64
	productID int64
	quantity  int
	price     kernel.Money
}

// NewLineItem builds the row for a cart line priced from product.
func NewLineItem(paymentID int64, line cart.Line, product cart.Product) (LineItem, error) {
	if paymentID <= 0 {
		return LineItem{}, errs.NewValueIsInvalidError("payment id")
	}
	if line.ProductID() != product.ID() {
		return LineItem{}, errs.NewValueIsInvalidError("product")
	}
	return RestoreLineItem(0, paymentID, line.ProductID(), line.Quantity(), product.Price())
}

func RestoreLineItem(id, paymentID, productID int64, quantity int, price kernel.Money) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, cart.MaxQuantity)
	}
	return LineItem{
		id:        id,
		paymentID: paymentID,
		productID: productID,
		quantity:  quantity,
		price:     price,
	}, nil
}

func (li LineItem) ID() int64           { return li.id }
func (li LineItem) PaymentID() int64    { return li.paymentID }
func (li LineItem) ProductID() int64    { return li.productID }
func (li LineItem) Quantity() int       { return li.quantity }
func (li LineItem) Price() kernel.Money { return li.price }

// Subtotal is price times quantity.
func (li LineItem) Subtotal() (kernel.Money, error) {
	return li.price.Times(li.quantity)
}

// Total sums the subtotals of items. All items must share one currency.
func Total(items []LineItem) (kernel.Money, error) {
	total := kernel.Yen(0)
	if len(items) > 0 {
		zero, err := kernel.NewMoney(0, items[0].price.Currency())
		if err != nil {
			return kernel.Money{}, err
		}
		total = zero
	}
	for _, li := range items {
		sub, err := li.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(sub); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}
