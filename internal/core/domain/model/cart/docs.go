// Package cart holds the checkout payload: which products and how many of each.
// The cart is passed explicitly into order creation. Prices are never taken from
// the cart; they are read from the catalog (Product) at checkout.
package cart
