package shipment

import (
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
)

// State is the fulfillment state of a shipment, computed once from its timestamps.
type State int

const (
	// Unknown catches uninitialized State values.
	Unknown State = iota

	// Created means no timestamp is set yet: the order is paid for or awaiting payment.
	Created

	// Shipped means the parcel has left the warehouse.
	Shipped

	// Delivered is terminal.
	Delivered

	// PaymentFailed is terminal. The gateway never captured the payment.
	PaymentFailed

	// Cancelled is terminal.
	Cancelled
)

var stateNames = map[State]string{
	Created:       "created",
	Shipped:       "shipped",
	Delivered:     "delivered",
	PaymentFailed: "payment_failed",
	Cancelled:     "cancelled",
}

// String returns the snake_case name used in the API, or "unknown".
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate reports whether s is one of the five known states.
func (s State) Validate() error {
	if _, ok := stateNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// IsTerminal reports whether no action is legal from s.
func (s State) IsTerminal() bool {
	return s == Delivered || s == PaymentFailed || s == Cancelled
}

// Action names the single timestamp an admin may set next.
type Action string

const (
	ActionShipped       Action = "shipped"
	ActionDelivered     Action = "delivered"
	ActionPaymentFailed Action = "payment_failed"
	ActionCancelled     Action = "cancelled"
)

// ParseAction accepts exactly the four action names.
func ParseAction(raw string) (Action, error) {
	switch a := Action(raw); a {
	case ActionShipped, ActionDelivered, ActionPaymentFailed, ActionCancelled:
		return a, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a shipment action", raw))
	}
}

func (a Action) String() string {
	return string(a)
}

// transitions is the whole state machine. A pair missing here is illegal.
var transitions = map[State]map[Action]State{
	Created: {
		ActionShipped:       Shipped,
		ActionPaymentFailed: PaymentFailed,
		ActionCancelled:     Cancelled,
	},
	Shipped: {
		ActionDelivered: Delivered,
	},
}

// Transition returns the state reached by applying action to from.
//
// Returns:
//   - (next, nil) when the pair is legal
//   - (Unknown, *errs.IllegalTransitionError) otherwise, including every action from a terminal state
func Transition(from State, action Action) (State, error) {
	if next, ok := transitions[from][action]; ok {
		return next, nil
	}
	return Unknown, errs.NewIllegalTransitionError(from.String(), action.String())
}

// AllowedActions lists the actions legal from s in a stable order. Terminal states return nil.
func AllowedActions(s State) []Action {
	var actions []Action
	for _, a := range []Action{ActionShipped, ActionDelivered, ActionPaymentFailed, ActionCancelled} {
		if _, ok := transitions[s][a]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}

// Timestamps are the four nullable status columns of a shipment row.
type Timestamps struct {
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	PaymentFailedAt *time.Time
	CancelledAt     *time.Time
}

// DeriveState maps a combination of timestamps to its State. Combinations the
// state machine can never produce (both terminal timestamps, delivered without
// shipped, shipped and then failed or cancelled) are rejected.
func DeriveState(ts Timestamps) (State, error) {
	shipped := ts.ShippedAt != nil
	delivered := ts.DeliveredAt != nil
	failed := ts.PaymentFailedAt != nil
	cancelled := ts.CancelledAt != nil

	switch {
	case failed && !cancelled && !shipped && !delivered:
		return PaymentFailed, nil
	case cancelled && !failed && !shipped && !delivered:
		return Cancelled, nil
	case shipped && delivered && !failed && !cancelled:
		return Delivered, nil
	case shipped && !delivered && !failed && !cancelled:
		return Shipped, nil
	case !shipped && !delivered && !failed && !cancelled:
		return Created, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"shipment timestamps",
			fmt.Errorf("shipped=%t delivered=%t payment_failed=%t cancelled=%t is not a reachable state",
				shipped, delivered, failed, cancelled),
		)
	}
}
