// Package payment models a checkout attempt against the PayPay gateway and the
// line items it bought.
//
// Key business rules:
//   - The merchant payment id is generated by the caller, shared with the gateway
//     and unique across all payments. A retry after a failed checkout needs a new id
//   - A payment belongs to exactly one user; only that user may see it
//   - A line item's price is the unit price at checkout and is never re-read
//     from the catalog afterwards
package payment
