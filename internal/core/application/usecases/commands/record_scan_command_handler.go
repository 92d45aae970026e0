package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/session"
)

// RecordScanCommandHandler feeds one barcode into the active session. The
// matcher's verdict is returned to the caller so the console can show it,
// and failed scans are kept in the session's scan log alongside successes.
type RecordScanCommandHandler struct {
	registry *SessionRegistry
	matcher  session.Matcher
}

// NewRecordScanCommandHandler creates a handler for barcode scans.
func NewRecordScanCommandHandler(registry *SessionRegistry, matcher session.Matcher) RecordScanCommandHandler {
	return RecordScanCommandHandler{
		registry: registry,
		matcher:  matcher,
	}
}

// Handle processes one scan and returns the matching verdict.
func (h RecordScanCommandHandler) Handle(ctx context.Context, cmd RecordScanCommand) (session.ScanResult, error) {
	if err := cmd.Validate(); err != nil {
		return session.ScanResult{}, err
	}

	var result session.ScanResult
	err := h.registry.Mutate(ctx, func(s *session.PreparationSession) error {
		var scanErr error
		result, scanErr = s.RecordScan(cmd.Code(), h.matcher)
		return scanErr
	})
	if err != nil {
		return session.ScanResult{}, err
	}

	return result, nil
}
