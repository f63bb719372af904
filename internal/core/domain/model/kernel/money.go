package kernel

import (
	"fmt"
	"math"
	"strings"

	"storefront/internal/pkg/errs"
)

// DefaultCurrency is the currency the storefront prices its catalog in.
const DefaultCurrency = "JPY"

// Money is an amount in the smallest unit of its currency. JPY has no minor unit,
// so 500 means 500 yen.
type Money struct {
	amount   int64
	currency string
}

func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(math.MaxInt64))
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not an ISO 4217 code", currency))
	}
	return Money{amount: amount, currency: currency}, nil
}

// Yen is shorthand for NewMoney(amount, DefaultCurrency) with a non-negative amount.
func Yen(amount int64) Money {
	if amount < 0 {
		amount = 0
	}
	return Money{amount: amount, currency: DefaultCurrency}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

// Times multiplies by a line quantity.
func (m Money) Times(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt32)
	}
	if quantity != 0 && m.amount > math.MaxInt64/int64(quantity) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", m.amount, 0, math.MaxInt64/int64(quantity))
	}
	return Money{amount: m.amount * int64(quantity), currency: m.Currency()}, nil
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("cannot add %s to %s", other.Currency(), m.Currency()))
	}
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", m.amount, 0, math.MaxInt64-other.amount)
	}
	return Money{amount: m.amount + other.amount, currency: m.Currency()}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.Currency())
}
