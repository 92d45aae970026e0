package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/session"
)

// ScanMatcher decides what a scanned barcode identifies within the currently
// active order of a preparation batch. Operators interleave scans of the
// order barcode and product barcodes, so both go through this single entry
// point.
//
// The matcher is deterministic and side-effect free: given the same code and
// scan state it always returns the same verdict, and it never mutates the
// state it inspects. Applying the verdict is the session's job.
type ScanMatcher struct{}

// NewScanMatcher creates a ScanMatcher.
func NewScanMatcher() ScanMatcher {
	return ScanMatcher{}
}

// Evaluate matches a code against the active order, in this sequence:
//
//  1. The order's own barcode: success unless already scanned.
//  2. A product line SKU: success while the line is not fully scanned,
//     "already fully scanned" once it is.
//  3. Anything else: rejected as not part of this order.
func (m ScanMatcher) Evaluate(code, orderCode string, state *session.OrderScanState) session.ScanResult {
	if code == orderCode {
		if state.OrderScanned() {
			return session.ScanResult{
				Kind:    session.ScanRejected,
				Message: fmt.Sprintf("order %s was already scanned", orderCode),
				Reason:  session.ReasonOrderAlreadyScanned,
			}
		}
		return session.ScanResult{
			Kind:    session.ScanMatchedOrder,
			Message: fmt.Sprintf("order %s scanned", orderCode),
		}
	}

	line, found := state.Line(code)
	if !found {
		return session.ScanResult{
			Kind:    session.ScanRejected,
			Message: fmt.Sprintf("code %s does not match order %s", code, orderCode),
			Reason:  session.ReasonUnknownCode,
		}
	}

	if line.Completed() {
		return session.ScanResult{
			Kind:    session.ScanRejected,
			SKU:     line.SKU(),
			Message: fmt.Sprintf("%s is already fully scanned (%d/%d)", line.SKU(), line.ScannedQty(), line.RequestedQty()),
			Reason:  session.ReasonLineComplete,
		}
	}

	return session.ScanResult{
		Kind:    session.ScanMatchedProduct,
		SKU:     line.SKU(),
		Message: fmt.Sprintf("%s scanned %d/%d", line.SKU(), line.ScannedQty()+1, line.RequestedQty()),
	}
}
