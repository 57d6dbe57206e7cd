// Package localstore persists the feedback and scan history collections as
// whole JSON blobs in a key-value StorageProvider, mirroring the two
// localStorage keys of the original web client. Reads are best-effort: an
// absent or malformed blob degrades to an empty collection.
package localstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mediscan/mediscan/internal/domain/entities"
	"github.com/mediscan/mediscan/internal/domain/providers"
	"github.com/mediscan/mediscan/internal/domain/repositories"
	apperrors "github.com/mediscan/mediscan/pkg/errors"
)

const feedbackKey = "drugFeedback"

// FeedbackAdapter implements FeedbackRepository over a blob store.
type FeedbackAdapter struct {
	store providers.StorageProvider
}

// NewFeedbackAdapter creates a new feedback adapter.
func NewFeedbackAdapter(store providers.StorageProvider) repositories.FeedbackRepository {
	return &FeedbackAdapter{store: store}
}

// Add prepends the entry to the persisted collection and rewrites the blob.
func (a *FeedbackAdapter) Add(ctx context.Context, entry *entities.FeedbackEntry) error {
	if entry == nil {
		return apperrors.NewValidationError("feedback entry is nil")
	}

	entries := a.loadAll(ctx)
	entries = append([]entities.FeedbackEntry{*entry}, entries...)

	raw, err := json.Marshal(entries)
	if err != nil {
		return apperrors.NewInternalError("failed to encode feedback", err)
	}
	if err := a.store.Set(ctx, feedbackKey, raw); err != nil {
		return apperrors.NewInternalError("failed to persist feedback", err)
	}
	return nil
}

// GetForDrug returns the persisted entries for one drug code in stored order.
func (a *FeedbackAdapter) GetForDrug(ctx context.Context, drugID string) ([]entities.FeedbackEntry, error) {
	var out []entities.FeedbackEntry
	for _, entry := range a.loadAll(ctx) {
		if entry.DrugID == drugID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (a *FeedbackAdapter) loadAll(ctx context.Context) []entities.FeedbackEntry {
	raw, err := a.store.Get(ctx, feedbackKey)
	if err != nil {
		if !errors.Is(err, providers.ErrKeyNotFound) {
			log.Warn().Err(err).Msg("feedback blob unreadable, treating as empty")
		}
		return nil
	}

	var entries []entities.FeedbackEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Warn().Err(err).Msg("feedback blob malformed, treating as empty")
		return nil
	}
	return entries
}
