package session

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a PreparationSession was not
	// created through NewPreparationSession or RestorePreparationSession.
	ErrSessionIsNotConstructed = errors.New(
		"PreparationSession must be created via NewPreparationSession or RestorePreparationSession")

	// ErrBatchIncomplete is returned when a commit is attempted while some
	// order still has unscanned lines.
	ErrBatchIncomplete = errors.New("preparation batch has incomplete orders")
)

// Matcher decides what a scanned code identifies within the active order.
// Implementations must be pure: they read the state and return a verdict
// without mutating anything.
type Matcher interface {
	Evaluate(code, orderCode string, state *OrderScanState) ScanResult
}

// PreparationSession is the aggregate for one in-flight preparation batch.
// It holds the worked orders in a fixed sequence, per-order scan state, and
// operator metadata. At most one session exists at a time; the command layer
// enforces the single-slot rule against the session store.
type PreparationSession struct {
	orderCodes []string
	states     map[string]*OrderScanState
	operator   string
	notes      string
	savedAt    time.Time

	isConstructed bool
}

// NewPreparationSession starts a batch over the given orders, seeding each
// order's scan state from its product lines. Order sequence is preserved:
// it determines the active-order pick sequence.
func NewPreparationSession(orders []*order.Order, operator string) (*PreparationSession, error) {
	if len(orders) == 0 {
		return nil, errs.NewValueIsRequiredError("orders")
	}

	s := &PreparationSession{
		orderCodes:    make([]string, 0, len(orders)),
		states:        make(map[string]*OrderScanState, len(orders)),
		operator:      operator,
		savedAt:       time.Now(),
		isConstructed: true,
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, exists := s.states[o.Code()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"orders", fmt.Errorf("order %s appears twice in the batch", o.Code()))
		}
		s.orderCodes = append(s.orderCodes, o.Code())
		s.states[o.Code()] = NewOrderScanState(o.Lines())
	}

	return s, nil
}

// RestorePreparationSession rehydrates a session from the durable slot.
func RestorePreparationSession(
	orderCodes []string,
	states map[string]*OrderScanState,
	operator, notes string,
	savedAt time.Time,
) (*PreparationSession, error) {
	if len(orderCodes) == 0 {
		return nil, errs.NewValueIsRequiredError("orderCodes")
	}
	for _, code := range orderCodes {
		if _, ok := states[code]; !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"states", fmt.Errorf("no scan state for order %s", code))
		}
	}

	return &PreparationSession{
		orderCodes:    orderCodes,
		states:        states,
		operator:      operator,
		notes:         notes,
		savedAt:       savedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the session was created through a constructor.
func (s *PreparationSession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// OrderCodes returns the batch's order codes in pick sequence.
func (s *PreparationSession) OrderCodes() []string {
	codes := make([]string, len(s.orderCodes))
	copy(codes, s.orderCodes)
	return codes
}

// State returns the scan state for one order of the batch.
func (s *PreparationSession) State(orderCode string) (*OrderScanState, bool) {
	state, ok := s.states[orderCode]
	return state, ok
}

// Operator returns the operator name entered on the console.
func (s *PreparationSession) Operator() string {
	return s.operator
}

// Notes returns free-text notes attached to the batch.
func (s *PreparationSession) Notes() string {
	return s.notes
}

// SavedAt returns the time of the last mutation.
func (s *PreparationSession) SavedAt() time.Time {
	return s.savedAt
}

// SetOperator updates the operator name.
func (s *PreparationSession) SetOperator(operator string) {
	s.operator = operator
	s.touch()
}

// SetNotes updates the free-text notes.
func (s *PreparationSession) SetNotes(notes string) {
	s.notes = notes
	s.touch()
}

// ActiveOrderCode selects the order scans currently apply to: the first
// order in sequence whose lines are not all complete. The second return is
// false when the batch is fully scanned.
func (s *PreparationSession) ActiveOrderCode() (string, bool) {
	for _, code := range s.orderCodes {
		if !s.states[code].Completed() {
			return code, true
		}
	}
	return "", false
}

// ReadyToCommit reports whether every order in the batch is fully scanned.
func (s *PreparationSession) ReadyToCommit() bool {
	_, active := s.ActiveOrderCode()
	return !active
}

// RecordScan matches a scanned code against the active order and applies
// the verdict: progress on success, a failure log entry otherwise. An
// invalid scan never aborts the session. Once every order is fully scanned
// the batch stays open until it is saved or discarded; stray scans in that
// window land on the last order as logged rejections.
func (s *PreparationSession) RecordScan(code string, matcher Matcher) (ScanResult, error) {
	activeCode, ok := s.ActiveOrderCode()
	if !ok {
		activeCode = s.orderCodes[len(s.orderCodes)-1]
	}

	state := s.states[activeCode]
	result := matcher.Evaluate(code, activeCode, state)
	if err := state.Apply(result); err != nil {
		return ScanResult{}, err
	}

	s.touch()
	return result, nil
}

func (s *PreparationSession) touch() {
	s.savedAt = time.Now()
}
