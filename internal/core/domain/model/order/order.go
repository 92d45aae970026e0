package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrCarrierIsRequired is returned when printing or shipping is attempted
	// before a carrier was assigned.
	ErrCarrierIsRequired = errs.NewValueIsRequiredError("carrier must be assigned first")

	// ErrRejectReasonIsRequired is returned when a rejection carries no reason.
	ErrRejectReasonIsRequired = errs.NewValueIsRequiredError("reject reason")

	// ErrLinesAreIncomplete is returned when preparation is committed while
	// some product line is not fully scanned.
	ErrLinesAreIncomplete = errs.NewValueIsInvalidError("not all product lines are fully scanned")
)

// Order is the aggregate root for a confirmed customer order moving through
// physical fulfillment. It owns the lifecycle status exclusively: state only
// changes through the operator-action methods below, each of which validates
// its precondition before touching any field. An action whose precondition
// does not hold fails with an explicit error and leaves the order unchanged.
//
// Invariants:
//   - code is unique, immutable and non-empty
//   - product lines are non-empty and fixed at creation
//   - a carrier is assigned before printing or shipping
//   - status transitions follow the graph documented on Status
type Order struct {
	id      kernel.UUID
	code    string
	carrier *string

	status Status
	lines  []ProductLine

	labelPrinted bool
	trackingCode string

	printedAt  *time.Time
	preparedAt *time.Time
	shippedAt  *time.Time
	returnedAt *time.Time
	rejectedAt *time.Time

	rejectReason    string
	returnCondition string

	isConstructed bool
}

// NewOrder creates a confirmed order with the given business code and
// product lines. The code doubles as the order's own barcode.
func NewOrder(id kernel.UUID, code string, lines []ProductLine) (*Order, error) {
	o := &Order{
		status:        Confirmed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID              kernel.UUID
	Code            string
	Carrier         *string
	Status          Status
	Lines           []ProductLine
	LabelPrinted    bool
	TrackingCode    string
	PrintedAt       *time.Time
	PreparedAt      *time.Time
	ShippedAt       *time.Time
	ReturnedAt      *time.Time
	RejectedAt      *time.Time
	RejectReason    string
	ReturnCondition string
}

// RestoreOrder rehydrates an order from persistence, re-validating the
// identifier, code, status and lines.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCode(p.Code),
		o.setLines(p.Lines),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	o.carrier = p.Carrier
	o.status = p.Status
	o.labelPrinted = p.LabelPrinted
	o.trackingCode = p.TrackingCode
	o.printedAt = p.PrintedAt
	o.preparedAt = p.PreparedAt
	o.shippedAt = p.ShippedAt
	o.returnedAt = p.ReturnedAt
	o.rejectedAt = p.RejectedAt
	o.rejectReason = p.RejectReason
	o.returnCondition = p.ReturnCondition

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the immutable business code, which is also the order barcode.
func (o *Order) Code() string {
	return o.code
}

// Carrier returns the assigned carrier name, or nil when unassigned.
func (o *Order) Carrier() *string {
	return o.carrier
}

// TrackingCode returns the carrier tracking code, empty when not set.
func (o *Order) TrackingCode() string {
	return o.trackingCode
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns a copy of the product lines.
func (o *Order) Lines() []ProductLine {
	lines := make([]ProductLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// LabelPrinted reports whether a shipping label was ever printed.
func (o *Order) LabelPrinted() bool {
	return o.labelPrinted
}

// PrintedAt returns the time of the most recent label print.
func (o *Order) PrintedAt() *time.Time {
	return o.printedAt
}

// PreparedAt returns the time preparation was committed.
func (o *Order) PreparedAt() *time.Time {
	return o.preparedAt
}

// ShippedAt returns the carrier hand-off time.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// ReturnedAt returns the return intake time.
func (o *Order) ReturnedAt() *time.Time {
	return o.returnedAt
}

// RejectedAt returns the rejection time.
func (o *Order) RejectedAt() *time.Time {
	return o.rejectedAt
}

// RejectReason returns the operator-supplied rejection reason.
func (o *Order) RejectReason() string {
	return o.rejectReason
}

// ReturnCondition returns the operator-assessed condition of a return.
func (o *Order) ReturnCondition() string {
	return o.returnCondition
}

// AssignCarrier sets the shipping carrier (and optional tracking code).
// Allowed only while Confirmed; the status itself does not change.
func (o *Order) AssignCarrier(carrier, trackingCode string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	if err := o.status.ValidateAssignCarrier(); err != nil {
		return err
	}

	o.carrier = &carrier
	o.trackingCode = trackingCode
	return nil
}

// PrintLabel records a label print. The first print requires an assigned
// carrier and advances Confirmed -> Preparing; a reprint only refreshes the
// printed timestamp and leaves the status alone.
func (o *Order) PrintLabel() error {
	if o.carrier == nil {
		return ErrCarrierIsRequired
	}

	now := time.Now()
	if o.labelPrinted {
		o.printedAt = &now
		return nil
	}

	newStatus, err := o.status.Print()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.labelPrinted = true
	o.printedAt = &now
	return nil
}

// CompletePreparation commits the preparation batch result for this order:
// the scanned lines replace the order's lines and the status advances
// Preparing -> Prepared. Every line must be fully scanned.
func (o *Order) CompletePreparation(scannedLines []ProductLine) error {
	if len(scannedLines) == 0 {
		return errs.NewValueIsRequiredError("scannedLines")
	}
	for _, line := range scannedLines {
		if !line.Completed() {
			return ErrLinesAreIncomplete
		}
	}

	newStatus, err := o.status.CompletePreparation()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.lines = scannedLines
	now := time.Now()
	o.preparedAt = &now
	return nil
}

// Ship records the carrier hand-off: Prepared -> Shipped.
func (o *Order) Ship() error {
	if o.carrier == nil {
		return ErrCarrierIsRequired
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now()
	o.shippedAt = &now
	return nil
}

// AcceptReturn takes a shipped order back: Shipped -> Confirmed with carrier
// and tracking code cleared and scan progress reset, so the order can go
// through fulfillment again from the start.
func (o *Order) AcceptReturn(condition string) error {
	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.carrier = nil
	o.trackingCode = ""
	o.labelPrinted = false
	for i, line := range o.lines {
		o.lines[i] = line.Reset()
	}
	now := time.Now()
	o.returnedAt = &now
	o.returnCondition = condition
	return nil
}

// Reject aborts fulfillment with a mandatory reason: Confirmed or
// Preparing -> Rejected.
func (o *Order) Reject(reason string) error {
	if reason == "" {
		return ErrRejectReasonIsRequired
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.rejectReason = reason
	now := time.Now()
	o.rejectedAt = &now
	return nil
}

// Retry puts a rejected order back into play: Rejected -> Confirmed with the
// rejection details and carrier cleared.
func (o *Order) Retry() error {
	newStatus, err := o.status.Retry()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.rejectReason = ""
	o.rejectedAt = nil
	o.carrier = nil
	o.trackingCode = ""
	o.labelPrinted = false
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	o.code = code
	return nil
}

func (o *Order) setLines(lines []ProductLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	o.lines = make([]ProductLine, len(lines))
	copy(o.lines, lines)
	return nil
}
