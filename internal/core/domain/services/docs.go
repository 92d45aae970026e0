// Package services contains stateless domain services that coordinate logic
// across aggregates without owning state themselves.
//
// ScanMatcher implements the scan-matching algorithm of the preparation
// console: deciding whether a scanned code identifies the active order, one
// of its unfulfilled product lines, or nothing.
package services
