package session

import (
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// OrderScanState holds one order's progress inside a preparation session:
// whether the order barcode itself was scanned, a working copy of the
// product lines, and the scan log (newest first).
//
// The working lines are a copy of the order's lines; the order aggregate is
// only updated from them when the whole batch is committed.
type OrderScanState struct {
	orderScanned bool
	lines        []order.ProductLine
	scanLogs     []ScanLogEntry
}

// NewOrderScanState seeds scan state from an order's product lines.
func NewOrderScanState(lines []order.ProductLine) *OrderScanState {
	working := make([]order.ProductLine, len(lines))
	copy(working, lines)
	return &OrderScanState{lines: working}
}

// RestoreOrderScanState rehydrates state from the session store.
func RestoreOrderScanState(orderScanned bool, lines []order.ProductLine, scanLogs []ScanLogEntry) *OrderScanState {
	return &OrderScanState{
		orderScanned: orderScanned,
		lines:        lines,
		scanLogs:     scanLogs,
	}
}

// OrderScanned reports whether the order's own barcode was scanned.
func (s *OrderScanState) OrderScanned() bool {
	return s.orderScanned
}

// Lines returns a copy of the working product lines.
func (s *OrderScanState) Lines() []order.ProductLine {
	lines := make([]order.ProductLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Line looks a working line up by SKU.
func (s *OrderScanState) Line(sku string) (order.ProductLine, bool) {
	for _, line := range s.lines {
		if line.SKU() == sku {
			return line, true
		}
	}
	return order.ProductLine{}, false
}

// ScanLogs returns a copy of the scan log, newest first.
func (s *OrderScanState) ScanLogs() []ScanLogEntry {
	logs := make([]ScanLogEntry, len(s.scanLogs))
	copy(logs, s.scanLogs)
	return logs
}

// Completed reports whether every working line is fully scanned.
func (s *OrderScanState) Completed() bool {
	for _, line := range s.lines {
		if !line.Completed() {
			return false
		}
	}
	return true
}

// Apply records a scan verdict: mutates the working state for successful
// matches and prepends a log entry for every outcome, success or failure.
func (s *OrderScanState) Apply(result ScanResult) error {
	switch result.Kind {
	case ScanMatchedOrder:
		s.orderScanned = true
	case ScanMatchedProduct:
		if err := s.scanLine(result.SKU); err != nil {
			return err
		}
		// A product scan implies the operator holds the right package.
		s.orderScanned = true
	case ScanRejected:
		// log only
	}

	s.scanLogs = append([]ScanLogEntry{newScanLogEntry(result)}, s.scanLogs...)
	return nil
}

func (s *OrderScanState) scanLine(sku string) error {
	for i, line := range s.lines {
		if line.SKU() != sku {
			continue
		}
		scanned, err := line.Scan()
		if err != nil {
			return err
		}
		s.lines[i] = scanned
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("sku", fmt.Errorf("%s is not part of this state", sku))
}
