// Package queries contains the storefront's read operations. None of them
// mutates state: the payment callback only checks ownership and resolves a
// redirect, and the order views are projections over payments and shipments.
package queries
