package repositories

import (
	"context"

	"github.com/mediscan/mediscan/internal/domain/entities"
)

// MedicationRepository defines the interface for medication catalog lookups.
type MedicationRepository interface {
	// Lookup resolves a decoded code to its medication record. The match is
	// case-sensitive and exact; a miss yields a not-found error whose message
	// includes the code.
	Lookup(ctx context.Context, code string) (*entities.MedicationRecord, error)

	// List returns every catalog record in catalog order.
	List(ctx context.Context) ([]*entities.MedicationRecord, error)
}
