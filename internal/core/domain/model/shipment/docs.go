// Package shipment models the fulfillment record that accompanies every payment.
//
// A shipment has no status column. Its State is derived from which of the four
// timestamps are set, and the only way to move it forward is an Action that sets
// exactly one more timestamp:
//
//	Created ──shipped──────────> Shipped ──delivered──> Delivered
//	   │
//	   ├──payment_failed──> PaymentFailed
//	   │
//	   └──cancelled───────> Cancelled
//
// Delivered, PaymentFailed and Cancelled are terminal. Transition is a pure
// function over (State, Action) and rejects every other pair with
// errs.IllegalTransitionError.
package shipment
