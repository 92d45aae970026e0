// Package kernel contains shared value objects used across the fulfillment
// domain model. It currently provides UUID, the identity type for aggregates
// and operation log entries.
//
// Value objects in this package are immutable and must be created through
// their constructor functions; zero values fail Validate.
package kernel
