// Package address models the single shipping address a user keeps on file.
//
// Key business rules:
//   - A user has at most one address; saving again updates it in place
//   - Every field is required
//   - Orders never reference the address row: they copy Snapshot() into the
//     shipment, so later edits do not rewrite placed orders
package address
