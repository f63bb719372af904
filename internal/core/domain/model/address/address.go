package address

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress")

type Address struct {
	id         int64
	userID     kernel.UUID
	name       string
	country    string
	postalCode string
	line       string

	isConstructed bool
}

// NewAddress builds an address that has not been persisted yet (ID 0).
func NewAddress(userID kernel.UUID, name, country, postalCode, line string) (*Address, error) {
	a := &Address{isConstructed: true}
	if err := errors.Join(
		a.setUserID(userID),
		a.setFields(name, country, postalCode, line),
	); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreAddress rebuilds a persisted address.
func RestoreAddress(id int64, userID kernel.UUID, name, country, postalCode, line string) (*Address, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("address id")
	}
	a, err := NewAddress(userID, name, country, postalCode, line)
	if err != nil {
		return nil, err
	}
	a.id = id
	return a, nil
}

func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Update replaces every field. The owner never changes.
func (a *Address) Update(name, country, postalCode, line string) error {
	return a.setFields(name, country, postalCode, line)
}

func (a *Address) ID() int64           { return a.id }
func (a *Address) UserID() kernel.UUID { return a.userID }
func (a *Address) Name() string        { return a.name }
func (a *Address) Country() string     { return a.country }
func (a *Address) PostalCode() string  { return a.postalCode }
func (a *Address) Line() string        { return a.line }

// Snapshot flattens the address into the string stored on a shipment.
func (a *Address) Snapshot() string {
	return strings.Join([]string{a.name, "〒" + a.postalCode, a.country, a.line}, " ")
}

func (a *Address) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	a.userID = userID
	return nil
}

func (a *Address) setFields(name, country, postalCode, line string) error {
	fields := map[string]*string{"name": &name, "country": &country, "postalCode": &postalCode, "address": &line}
	var errList []error
	for _, param := range []string{"name", "country", "postalCode", "address"} {
		v := fields[param]
		*v = strings.TrimSpace(*v)
		if *v == "" {
			errList = append(errList, errs.NewValueIsRequiredError(param))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	a.name = name
	a.country = country
	a.postalCode = postalCode
	a.line = line
	return nil
}
