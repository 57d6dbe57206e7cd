package services

import (
	"context"
	"time"

	"github.com/mediscan/mediscan/internal/domain/entities"
	"github.com/mediscan/mediscan/internal/domain/repositories"
)

// MedicationService resolves catalog codes and answers expiry questions.
type MedicationService struct {
	repo repositories.MedicationRepository
}

// NewMedicationService creates a new medication service.
func NewMedicationService(repo repositories.MedicationRepository) *MedicationService {
	return &MedicationService{repo: repo}
}

// Lookup resolves a decoded code to its catalog record.
func (s *MedicationService) Lookup(ctx context.Context, code string) (*entities.MedicationRecord, error) {
	return s.repo.Lookup(ctx, code)
}

// List returns the full catalog.
func (s *MedicationService) List(ctx context.Context) ([]*entities.MedicationRecord, error) {
	return s.repo.List(ctx)
}

// IsExpired reports whether now is strictly after the expiry date. Both
// instants are anchored at midnight UTC first, so the answer on the expiry
// date itself does not flip with the time of day: a medication expiring today
// is not yet expired.
func (s *MedicationService) IsExpired(expiry, now time.Time) bool {
	return startOfDay(now).After(startOfDay(expiry))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
