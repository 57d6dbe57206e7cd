package services

import (
	"context"

	"github.com/mediscan/mediscan/internal/domain/entities"
	"github.com/mediscan/mediscan/internal/domain/repositories"
	apperrors "github.com/mediscan/mediscan/pkg/errors"
)

// HistoryItem is one past scan, resolved against the catalog for display.
// Record is nil for codes that no longer resolve.
type HistoryItem struct {
	Code   string
	Record *entities.MedicationRecord
}

// HistoryService exposes the scan history for browsing.
type HistoryService struct {
	repo repositories.ScanHistoryRepository
	meds repositories.MedicationRepository
}

// NewHistoryService creates a new history service.
func NewHistoryService(repo repositories.ScanHistoryRepository, meds repositories.MedicationRepository) *HistoryService {
	return &HistoryService{repo: repo, meds: meds}
}

// Recent returns past scans most-recent-first with their catalog records
// attached where the code still resolves.
func (s *HistoryService) Recent(ctx context.Context) ([]HistoryItem, error) {
	codes, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]HistoryItem, 0, len(codes))
	for _, code := range codes {
		item := HistoryItem{Code: code}
		rec, err := s.meds.Lookup(ctx, code)
		if err == nil {
			item.Record = rec
		} else if !apperrors.IsNotFound(err) {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Clear drops the stored history.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
