// Package queries contains the read side of the request registry. Handlers
// query the database directly with raw SQL and return flat response structs;
// they never load aggregates.
package queries
