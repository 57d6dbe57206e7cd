package repositories

import (
	"context"

	"github.com/mediscan/mediscan/internal/domain/entities"
)

// FeedbackRepository defines the interface for feedback persistence.
type FeedbackRepository interface {
	// Add persists a fully materialized entry, placing it before all existing
	// entries.
	Add(ctx context.Context, entry *entities.FeedbackEntry) error

	// GetForDrug returns the persisted entries for one drug code,
	// most-recently-added first. Absent or unreadable storage yields an empty
	// slice, not an error.
	GetForDrug(ctx context.Context, drugID string) ([]entities.FeedbackEntry, error)
}
