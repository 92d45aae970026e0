// Package order provides the Order aggregate and its fulfillment lifecycle.
//
// An order moves through the physical fulfillment stages:
//
//	Confirmed ──(print label)──> Preparing ──(commit preparation)──> Prepared
//	Prepared ──(ship)──> Shipped ──(return intake)──> Confirmed (carrier cleared)
//	Confirmed | Preparing ──(reject)──> Rejected ──(retry)──> Confirmed
//
// Key business rules:
//   - A carrier must be assigned before the label can be printed or the order shipped
//   - Product lines are fixed at order creation; only their scanned quantity moves
//   - Every transition is validated by the Status value object; an invalid
//     request fails with an explicit error and mutates nothing
//
// The aggregate exclusively owns status mutation. Callers drive transitions
// through the operator-action methods; nothing outside the package can touch
// the fields directly.
package order
