// Package session models an in-flight preparation batch: the set of orders a
// warehouse operator is picking, the per-order scan progress, and the
// append-only scan log shown on the console.
//
// A PreparationSession is a singleton: at most one exists at a time, held in
// a durable single-slot store so in-progress work survives a restart. The
// session owns a working copy of each order's product lines; the order
// aggregates themselves are only touched when the batch is committed.
//
// The "active order" rule is deterministic: the first order in the stored
// sequence whose lines are not all complete. Scans only ever affect the
// active order's state; scanning another order's barcode is an invalid scan,
// not a navigation action.
package session
