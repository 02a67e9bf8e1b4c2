// Package orders owns purchase transactions against catalog records.
//
// Order creation validates the requested quantity against current stock,
// prices the order at the moment of the check, and then performs the stock
// decrement and order insert inside a single database transaction. The
// decrement is a conditional delta update, so concurrent orders against the
// same record can never oversell it. Orders are immutable once created.
package orders
