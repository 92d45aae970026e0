package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrLineAlreadyComplete is returned when a scan targets a product line whose
// requested quantity was already fully scanned.
var ErrLineAlreadyComplete = errs.NewValueIsInvalidError("product line is already fully scanned")

// ProductLine is a value object representing one SKU within an order: the
// requested quantity fixed at order creation versus the quantity scanned so
// far during preparation.
//
// ProductLine uses value semantics: Scan returns an updated copy, leaving the
// receiver untouched.
type ProductLine struct {
	sku          string
	name         string
	requestedQty int
	scannedQty   int
}

// NewProductLine creates a line with no scan progress.
// The SKU must be non-empty and the requested quantity at least 1.
func NewProductLine(sku, name string, requestedQty int) (ProductLine, error) {
	if sku == "" {
		return ProductLine{}, errs.NewValueIsRequiredError("sku")
	}
	if requestedQty < 1 {
		return ProductLine{}, errs.NewValueIsInvalidErrorWithCause(
			"requestedQty", fmt.Errorf("%d is not greater than 0", requestedQty))
	}

	return ProductLine{
		sku:          sku,
		name:         name,
		requestedQty: requestedQty,
	}, nil
}

// RestoreProductLine rehydrates a line from persistence, including its
// accumulated scan progress.
func RestoreProductLine(sku, name string, requestedQty, scannedQty int) (ProductLine, error) {
	line, err := NewProductLine(sku, name, requestedQty)
	if err != nil {
		return ProductLine{}, err
	}
	if scannedQty < 0 {
		return ProductLine{}, errs.NewValueIsInvalidErrorWithCause(
			"scannedQty", fmt.Errorf("%d is negative", scannedQty))
	}

	line.scannedQty = scannedQty
	return line, nil
}

// SKU identifies the catalog variant this line refers to.
func (l ProductLine) SKU() string {
	return l.sku
}

// Name returns the display name of the product.
func (l ProductLine) Name() string {
	return l.name
}

// RequestedQty returns the ordered quantity, fixed at order creation.
func (l ProductLine) RequestedQty() int {
	return l.requestedQty
}

// ScannedQty returns the quantity scanned so far.
func (l ProductLine) ScannedQty() int {
	return l.scannedQty
}

// Completed reports whether the line needs no further scans.
func (l ProductLine) Completed() bool {
	return l.scannedQty >= l.requestedQty
}

// Scan registers one scanned unit and returns the updated line.
// The completion guard runs before the increment, so scanning past the
// requested quantity is impossible.
func (l ProductLine) Scan() (ProductLine, error) {
	if l.Completed() {
		return l, ErrLineAlreadyComplete
	}

	l.scannedQty++
	return l, nil
}

// Reset returns the line with scan progress cleared. Used when a returned
// order re-enters the fulfillment flow.
func (l ProductLine) Reset() ProductLine {
	l.scannedQty = 0
	return l
}
