// Package operation models the append-only operation log: one immutable
// entry per state transition or committed preparation, forming the audit
// trail and the input for downstream stage-completion documents.
package operation

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Type enumerates the operations recorded in the log.
type Type int

const (
	// TypeUnknown marks an uninitialized Type value.
	TypeUnknown Type = iota

	// OrderPrepared records a committed preparation; the only entry type
	// carrying the scan-log and product-line snapshots.
	OrderPrepared

	// RejectOrder records a rejection with its reason.
	RejectOrder

	// AssignCarrier records a carrier assignment.
	AssignCarrier

	// PrintLabel records a label print or reprint.
	PrintLabel

	// ShipOrder records a carrier hand-off.
	ShipOrder

	// ReturnOrder records a return intake.
	ReturnOrder

	// RetryOrder records a rejected order re-entering fulfillment.
	RetryOrder
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:   "UNKNOWN",
		OrderPrepared: "ORDER_PREPARED",
		RejectOrder:   "REJECT_ORDER",
		AssignCarrier: "ASSIGN_CARRIER",
		PrintLabel:    "PRINT_LABEL",
		ShipOrder:     "SHIP_ORDER",
		ReturnOrder:   "RETURN_ORDER",
		RetryOrder:    "RETRY_ORDER",
	}
}

// Validate checks the Type holds one of the defined operations.
func (t Type) Validate() error {
	if t <= TypeUnknown || t > RetryOrder {
		return errs.NewValueIsInvalidErrorWithCause(
			"operationType", fmt.Errorf("%d is not a valid operation type", t))
	}
	return nil
}

// String returns the wire name of the operation type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Result classifies the recorded outcome.
type Result int

const (
	// ResultUnknown marks an uninitialized Result value.
	ResultUnknown Result = iota

	// ResultSuccess marks a completed operation.
	ResultSuccess

	// ResultFailed marks an operation recorded as a failure, such as a
	// rejection.
	ResultFailed
)

// Validate checks the Result holds a defined outcome.
func (r Result) Validate() error {
	if r != ResultSuccess && r != ResultFailed {
		return errs.NewValueIsInvalidErrorWithCause(
			"result", fmt.Errorf("%d is not a valid result", r))
	}
	return nil
}

// String returns the wire name of the result.
func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "SUCCESS"
	case ResultFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Entry is one immutable record of the operation log. Entries of type
// OrderPrepared additionally carry the full scan log and final product
// lines of the committed order; those snapshots are frozen at write time
// and are the sole input for downstream manifest generation.
type Entry struct {
	id        kernel.UUID
	opType    Type
	orderCode string
	carrier   string
	employee  string
	details   string
	result    Result
	createdAt time.Time

	scanLogs []session.ScanLogEntry
	lines    []order.ProductLine

	isConstructed bool
}

// NewEntryParams carries the fields of a new log entry. ScanLogs and Lines
// are only valid for OrderPrepared entries.
type NewEntryParams struct {
	Type      Type
	OrderCode string
	Carrier   string
	Employee  string
	Details   string
	Result    Result
	ScanLogs  []session.ScanLogEntry
	Lines     []order.ProductLine
}

// NewEntry creates a log entry timestamped now. The identifier is left
// unassigned; the log assigns one on push when absent.
func NewEntry(p NewEntryParams) (*Entry, error) {
	if err := errors.Join(p.Type.Validate(), p.Result.Validate()); err != nil {
		return nil, err
	}
	if p.OrderCode == "" {
		return nil, errs.NewValueIsRequiredError("orderCode")
	}
	if p.Type != OrderPrepared && (len(p.ScanLogs) > 0 || len(p.Lines) > 0) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"snapshots", fmt.Errorf("%s entries must not carry snapshots", p.Type))
	}

	return &Entry{
		opType:        p.Type,
		orderCode:     p.OrderCode,
		carrier:       p.Carrier,
		employee:      p.Employee,
		details:       p.Details,
		result:        p.Result,
		createdAt:     time.Now(),
		scanLogs:      p.ScanLogs,
		lines:         p.Lines,
		isConstructed: true,
	}, nil
}

// RestoreEntry rehydrates an entry from persistence.
func RestoreEntry(id kernel.UUID, p NewEntryParams, createdAt time.Time) (*Entry, error) {
	entry, err := NewEntry(p)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}

	entry.id = id
	entry.createdAt = createdAt
	return entry, nil
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// EnsureID assigns a fresh identifier when none was set yet.
func (e *Entry) EnsureID() {
	if e.id.Validate() != nil {
		e.id = kernel.NewUUID()
	}
}

// ID returns the entry's identifier, zero until assigned.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OperationType returns the recorded operation type.
func (e *Entry) OperationType() Type {
	return e.opType
}

// OrderCode returns the code of the order the entry refers to.
func (e *Entry) OrderCode() string {
	return e.orderCode
}

// Carrier returns the carrier involved, empty when not applicable.
func (e *Entry) Carrier() string {
	return e.carrier
}

// Employee returns the operator who performed the operation.
func (e *Entry) Employee() string {
	return e.employee
}

// Details returns the free-text summary of the operation.
func (e *Entry) Details() string {
	return e.details
}

// Result returns the recorded outcome.
func (e *Entry) Result() Result {
	return e.result
}

// CreatedAt returns the write time of the entry.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// ScanLogs returns the scan-log snapshot of an OrderPrepared entry.
func (e *Entry) ScanLogs() []session.ScanLogEntry {
	logs := make([]session.ScanLogEntry, len(e.scanLogs))
	copy(logs, e.scanLogs)
	return logs
}

// Lines returns the product-line snapshot of an OrderPrepared entry.
func (e *Entry) Lines() []order.ProductLine {
	lines := make([]order.ProductLine, len(e.lines))
	copy(lines, e.lines)
	return lines
}
