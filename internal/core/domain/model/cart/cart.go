package cart

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// MaxQuantity bounds a single cart line.
const MaxQuantity = 99

type Line struct {
	productID int64
	quantity  int
}

func NewLine(productID int64, quantity int) (Line, error) {
	if productID <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%d is not a product id", productID))
	}
	if quantity < 1 || quantity > MaxQuantity {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return Line{productID: productID, quantity: quantity}, nil
}

func (l Line) ProductID() int64 { return l.productID }
func (l Line) Quantity() int    { return l.quantity }

type Cart struct {
	lines []Line
}

// NewCart rejects an empty cart and folds repeated products into one line,
// keeping the order in which products first appear.
func NewCart(lines []Line) (Cart, error) {
	if len(lines) == 0 {
		return Cart{}, errs.NewValueIsRequiredError("items")
	}

	index := make(map[int64]int, len(lines))
	merged := make([]Line, 0, len(lines))
	var errList []error
	for _, l := range lines {
		if l.productID <= 0 {
			errList = append(errList, errs.NewValueIsInvalidError("productId"))
			continue
		}
		i, seen := index[l.productID]
		if !seen {
			index[l.productID] = len(merged)
			merged = append(merged, l)
			continue
		}
		sum := merged[i].quantity + l.quantity
		if sum > MaxQuantity {
			errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", sum, 1, MaxQuantity))
			continue
		}
		merged[i].quantity = sum
	}
	if err := errors.Join(errList...); err != nil {
		return Cart{}, err
	}

	return Cart{lines: merged}, nil
}

func (c Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.lines))
	for _, l := range c.lines {
		ids = append(ids, l.productID)
	}
	return ids
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
