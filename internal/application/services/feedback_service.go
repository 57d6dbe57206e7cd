package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mediscan/mediscan/internal/domain/entities"
	"github.com/mediscan/mediscan/internal/domain/providers"
	"github.com/mediscan/mediscan/internal/domain/repositories"
	apperrors "github.com/mediscan/mediscan/pkg/errors"
)

// FeedbackService handles feedback submissions and reads.
type FeedbackService struct {
	repo repositories.FeedbackRepository
	ids  providers.IDGenerator
	now  func() time.Time
}

// NewFeedbackService creates a new feedback service. A nil IDGenerator
// defaults to UUIDs.
func NewFeedbackService(repo repositories.FeedbackRepository, ids providers.IDGenerator) *FeedbackService {
	if ids == nil {
		ids = uuidGenerator{}
	}
	return &FeedbackService{repo: repo, ids: ids, now: time.Now}
}

// Add validates, materializes and persists a new entry, filling in its
// identity and creation time, and returns it. PriceInfo may be absent.
func (s *FeedbackService) Add(ctx context.Context, entry *entities.FeedbackEntry) (*entities.FeedbackEntry, error) {
	if entry == nil {
		return nil, apperrors.NewValidationError("feedback entry is nil")
	}
	if entry.DrugID == "" {
		return nil, apperrors.NewValidationError("drug code is required")
	}
	if entry.Rating < 1 || entry.Rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5")
	}
	if entry.PriceInfo != nil {
		if entry.PriceInfo.Pharmacy == "" {
			return nil, apperrors.NewValidationError("price report needs a pharmacy name")
		}
		if entry.PriceInfo.Price < 0 {
			return nil, apperrors.NewValidationError("price must not be negative")
		}
	}

	if entry.ID == "" {
		entry.ID = s.ids.NewID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}

	if err := s.repo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetForDrug returns the stored entries for one drug code,
// most-recently-added first.
func (s *FeedbackService) GetForDrug(ctx context.Context, drugID string) ([]entities.FeedbackEntry, error) {
	return s.repo.GetForDrug(ctx, drugID)
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.New().String()
}
