package repositories

import "context"

// ScanHistoryRepository defines the interface for the bounded list of
// previously resolved codes.
type ScanHistoryRepository interface {
	// Record adds a code to the front of the history and drops anything past
	// the retention cap. Recording a code that is already present leaves the
	// stored list untouched; it is not promoted to the front.
	Record(ctx context.Context, code string) error

	// Load returns the stored codes most-recent-first. Absent or unreadable
	// storage yields an empty slice, not an error.
	Load(ctx context.Context) ([]string, error)

	// Clear drops the stored history.
	Clear(ctx context.Context) error
}
