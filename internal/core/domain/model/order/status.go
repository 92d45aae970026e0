package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the fulfillment lifecycle state of an order.
// It is a value object implementing the transition rules of the state
// machine; every transition method validates the current state and returns
// the next one without side effects.
//
// State graph:
//
//	Confirmed ──> Preparing ──> Prepared ──> Shipped ──> Confirmed (return)
//	     │             │
//	     └──────┬──────┘
//	            v
//	        Rejected ──> Confirmed (retry)
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value (0)
	// helps catch uninitialized Status fields.
	Unknown Status = iota

	// Confirmed is the entry state: the order is accepted and waiting for
	// carrier assignment and label printing. Returned and retried orders
	// re-enter this state.
	Confirmed

	// Preparing means the shipping label is printed and warehouse picking
	// is in progress, driven by barcode scans.
	Preparing

	// Prepared means every product line was fully scanned and the
	// preparation batch was committed.
	Prepared

	// Shipped means the order was handed off to the carrier and inventory
	// was deducted.
	Shipped

	// Rejected is a side branch reachable from Confirmed or Preparing.
	// Terminal unless the order is retried.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Prepared:  "Prepared",
		Shipped:   "Shipped",
		Rejected:  "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Prepared:  "Prepared",
		Shipped:   "Shipped",
		Rejected:  "Rejected",
	}
}

// Validate checks that the Status holds one of the defined lifecycle states.
// Used when rehydrating orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value; invalid
// statuses render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// ValidateAssignCarrier checks whether a carrier may be assigned in the
// current state. Assignment itself does not change the status.
func (s Status) ValidateAssignCarrier() error {
	if s != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign a carrier", s),
		)
	}
	return nil
}

// Print transitions Confirmed -> Preparing when the label is first printed.
func (s Status) Print() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to print a label", s),
		)
	}

	return Preparing, nil
}

// CompletePreparation transitions Preparing -> Prepared when a preparation
// batch is committed.
func (s Status) CompletePreparation() (Status, error) {
	if s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete preparation", s),
		)
	}

	return Prepared, nil
}

// Ship transitions Prepared -> Shipped on carrier hand-off.
func (s Status) Ship() (Status, error) {
	if s != Prepared {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to ship", s),
		)
	}

	return Shipped, nil
}

// Return transitions Shipped -> Confirmed on return intake. The order
// re-enters the fulfillment flow from the start.
func (s Status) Return() (Status, error) {
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept a return", s),
		)
	}

	return Confirmed, nil
}

// Reject transitions Confirmed or Preparing -> Rejected.
func (s Status) Reject() (Status, error) {
	if s != Confirmed && s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s),
		)
	}

	return Rejected, nil
}

// Retry transitions Rejected -> Confirmed, putting the order back into play.
func (s Status) Retry() (Status, error) {
	if s != Rejected {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to retry", s),
		)
	}

	return Confirmed, nil
}
