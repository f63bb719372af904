package cart

import (
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Product is the read-only catalog entry a cart line points at. Its price is
// the one captured into the order at checkout.
type Product struct {
	id    int64
	name  string
	price kernel.Money
}

func RestoreProduct(id int64, name string, price kernel.Money) (Product, error) {
	if id <= 0 {
		return Product{}, errs.NewValueIsInvalidError("product id")
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, errs.NewValueIsRequiredError("product name")
	}
	return Product{id: id, name: name, price: price}, nil
}

func (p Product) ID() int64           { return p.id }
func (p Product) Name() string        { return p.name }
func (p Product) Price() kernel.Money { return p.price }
