// Package store owns the SQLite database shared by the catalog and order
// components. It applies connection pragmas and the embedded schema, and
// hands out the *sql.DB the entity stores operate on. Keeping a single
// connection pool lets order fulfillment run its stock decrement and order
// insert inside one transaction.
package store
