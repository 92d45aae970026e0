package session

import "time"

// ScanLogEntry is one immutable line of the per-order scan log. Entries are
// only ever prepended; the newest entry sits at index 0.
type ScanLogEntry struct {
	Success bool
	Message string
	Reason  string
	At      time.Time
}

// newScanLogEntry derives a log entry from a scan verdict.
func newScanLogEntry(result ScanResult) ScanLogEntry {
	entry := ScanLogEntry{
		Success: result.Success(),
		Message: result.Message,
		At:      time.Now(),
	}
	if !result.Success() {
		entry.Reason = result.Reason.String()
	}
	return entry
}
