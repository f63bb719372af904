// Package kernel provides the shared primitives of the storefront domain model.
//
// The package includes:
//   - UUID: identifier of a user account, issued by the external auth system
//   - Money: a non-negative amount in minor units of a single currency
//
// Both are immutable value objects and safe for concurrent use.
package kernel
