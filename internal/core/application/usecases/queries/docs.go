// Package queries contains read operations over fulfillment state. Queries
// bypass the domain repositories and read the database directly, returning
// read models shaped for the warehouse console.
package queries
