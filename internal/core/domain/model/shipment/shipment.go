package shipment

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/pkg/errs"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the fulfillment record of one payment. The address is a frozen
// snapshot taken when the order was placed.
type Shipment struct {
	id         int64
	paymentID  int64
	address    string
	timestamps Timestamps
	createdAt  time.Time
	state      State

	isConstructed bool
}

// NewShipment creates a shipment in the Created state for a persisted payment.
func NewShipment(paymentID int64, addressSnapshot string) (*Shipment, error) {
	s := &Shipment{state: Created, isConstructed: true}
	if err := errors.Join(
		s.setPaymentID(paymentID),
		s.setAddress(addressSnapshot),
	); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreShipment rebuilds a shipment from storage and derives its state.
func RestoreShipment(
	id, paymentID int64,
	addressSnapshot string,
	ts Timestamps,
	createdAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(paymentID, addressSnapshot)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("shipment id")
	}
	state, err := DeriveState(ts)
	if err != nil {
		return nil, err
	}

	s.id = id
	s.timestamps = ts
	s.createdAt = createdAt
	s.state = state
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() int64                { return s.id }
func (s *Shipment) PaymentID() int64         { return s.paymentID }
func (s *Shipment) Address() string          { return s.address }
func (s *Shipment) Timestamps() Timestamps   { return s.timestamps }
func (s *Shipment) CreatedAt() time.Time     { return s.createdAt }
func (s *Shipment) State() State             { return s.state }
func (s *Shipment) AllowedActions() []Action { return AllowedActions(s.state) }

// Apply moves the shipment forward by setting the timestamp named by action.
// On an illegal pair the shipment is left untouched.
func (s *Shipment) Apply(action Action, at time.Time) error {
	next, err := Transition(s.state, action)
	if err != nil {
		return err
	}

	at = at.UTC()
	switch action {
	case ActionShipped:
		s.timestamps.ShippedAt = &at
	case ActionDelivered:
		s.timestamps.DeliveredAt = &at
	case ActionPaymentFailed:
		s.timestamps.PaymentFailedAt = &at
	case ActionCancelled:
		s.timestamps.CancelledAt = &at
	}
	s.state = next
	return nil
}

func (s *Shipment) setPaymentID(paymentID int64) error {
	if paymentID <= 0 {
		return errs.NewValueIsInvalidError("payment id")
	}
	s.paymentID = paymentID
	return nil
}

func (s *Shipment) setAddress(snapshot string) error {
	if strings.TrimSpace(snapshot) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = snapshot
	return nil
}
