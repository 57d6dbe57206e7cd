package localstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mediscan/mediscan/internal/domain/providers"
	"github.com/mediscan/mediscan/internal/domain/repositories"
	apperrors "github.com/mediscan/mediscan/pkg/errors"
)

const (
	historyKey = "scanHistory"

	// historyLimit caps the stored list; the oldest code is evicted beyond it.
	historyLimit = 10
)

// HistoryAdapter implements ScanHistoryRepository over a blob store.
type HistoryAdapter struct {
	store providers.StorageProvider
}

// NewHistoryAdapter creates a new scan history adapter.
func NewHistoryAdapter(store providers.StorageProvider) repositories.ScanHistoryRepository {
	return &HistoryAdapter{store: store}
}

// Record prepends a code and truncates to the retention cap. A code that is
// already present leaves the stored list exactly as it was: re-scanning does
// not promote it to the front.
func (a *HistoryAdapter) Record(ctx context.Context, code string) error {
	codes := a.loadAll(ctx)
	for _, c := range codes {
		if c == code {
			return nil
		}
	}

	codes = append([]string{code}, codes...)
	if len(codes) > historyLimit {
		codes = codes[:historyLimit]
	}

	raw, err := json.Marshal(codes)
	if err != nil {
		return apperrors.NewInternalError("failed to encode scan history", err)
	}
	if err := a.store.Set(ctx, historyKey, raw); err != nil {
		return apperrors.NewInternalError("failed to persist scan history", err)
	}
	return nil
}

// Load returns the stored codes most-recent-first.
func (a *HistoryAdapter) Load(ctx context.Context) ([]string, error) {
	return a.loadAll(ctx), nil
}

// Clear drops the stored history.
func (a *HistoryAdapter) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, historyKey); err != nil {
		return apperrors.NewInternalError("failed to clear scan history", err)
	}
	return nil
}

func (a *HistoryAdapter) loadAll(ctx context.Context) []string {
	raw, err := a.store.Get(ctx, historyKey)
	if err != nil {
		if !errors.Is(err, providers.ErrKeyNotFound) {
			log.Warn().Err(err).Msg("scan history blob unreadable, treating as empty")
		}
		return nil
	}

	var codes []string
	if err := json.Unmarshal(raw, &codes); err != nil {
		log.Warn().Err(err).Msg("scan history blob malformed, treating as empty")
		return nil
	}
	return codes
}
