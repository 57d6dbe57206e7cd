package localstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediscan/mediscan/internal/adapters/localstore"
	"github.com/mediscan/mediscan/internal/adapters/storage"
	"github.com/mediscan/mediscan/internal/domain/entities"
)

func entry(id, drugID string, rating int) *entities.FeedbackEntry {
	return &entities.FeedbackEntry{
		ID:        id,
		DrugID:    drugID,
		Rating:    rating,
		Timestamp: time.Now().UTC(),
	}
}

func TestFeedbackAdapter_AddPlacesNewestFirst(t *testing.T) {
	ctx := context.Background()
	adapter := localstore.NewFeedbackAdapter(storage.NewMemoryStore())

	require.NoError(t, adapter.Add(ctx, entry("fb-1", "MED001", 4)))
	require.NoError(t, adapter.Add(ctx, entry("fb-2", "MED001", 5)))

	got, err := adapter.GetForDrug(ctx, "MED001")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "fb-2", got[0].ID)
	assert.Equal(t, "fb-1", got[1].ID)
}

func TestFeedbackAdapter_GetForDrugFiltersOtherCodes(t *testing.T) {
	ctx := context.Background()
	adapter := localstore.NewFeedbackAdapter(storage.NewMemoryStore())

	require.NoError(t, adapter.Add(ctx, entry("fb-1", "MED001", 4)))
	require.NoError(t, adapter.Add(ctx, entry("fb-2", "MED002", 2)))

	got, err := adapter.GetForDrug(ctx, "MED001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fb-1", got[0].ID)
}

func TestFeedbackAdapter_EmptyStorageYieldsEmpty(t *testing.T) {
	adapter := localstore.NewFeedbackAdapter(storage.NewMemoryStore())

	got, err := adapter.GetForDrug(context.Background(), "MED001")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestFeedbackAdapter_MalformedBlobYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "drugFeedback", []byte("{not json")))

	adapter := localstore.NewFeedbackAdapter(store)

	got, err := adapter.GetForDrug(ctx, "MED001")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestFeedbackAdapter_AddRecoversFromMalformedBlob(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "drugFeedback", []byte("garbage")))

	adapter := localstore.NewFeedbackAdapter(store)
	require.NoError(t, adapter.Add(ctx, entry("fb-1", "MED001", 3)))

	got, err := adapter.GetForDrug(ctx, "MED001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fb-1", got[0].ID)
}

func TestFeedbackAdapter_PriceInfoSurvivesRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := localstore.NewFeedbackAdapter(storage.NewMemoryStore())

	e := entry("fb-1", "MED001", 5)
	e.Comment = "worked well"
	e.PriceInfo = &entities.FeedbackPrice{Pharmacy: "Walgreens", Price: 7.49, Location: "West Side"}
	require.NoError(t, adapter.Add(ctx, e))

	got, err := adapter.GetForDrug(ctx, "MED001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].PriceInfo)
	assert.Equal(t, "Walgreens", got[0].PriceInfo.Pharmacy)
	assert.InDelta(t, 7.49, got[0].PriceInfo.Price, 0.0001)
	assert.Equal(t, "worked well", got[0].Comment)
}

func TestFeedbackAdapter_DanglingDrugIDIsLegal(t *testing.T) {
	ctx := context.Background()
	adapter := localstore.NewFeedbackAdapter(storage.NewMemoryStore())

	require.NoError(t, adapter.Add(ctx, entry("fb-1", "GONE999", 1)))

	got, err := adapter.GetForDrug(ctx, "GONE999")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
