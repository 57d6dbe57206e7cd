package localstore_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediscan/mediscan/internal/adapters/localstore"
	"github.com/mediscan/mediscan/internal/adapters/storage"
)

func TestHistoryAdapter_RecordPrependsNewCodes(t *testing.T) {
	ctx := context.Background()
	adapter := localstore.NewHistoryAdapter(storage.NewMemoryStore())

	require.NoError(t, adapter.Record(ctx, "MED001"))
	require.NoError(t, adapter.Record(ctx, "MED002"))

	codes, err := adapter.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"MED002", "MED001"}, codes)
}

func TestHistoryAdapter_DuplicateIsNoOpWithoutPromotion(t *testing.T) {
	ctx := context.Background()
	adapter := localstore.NewHistoryAdapter(storage.NewMemoryStore())

	require.NoError(t, adapter.Record(ctx, "MED001"))
	require.NoError(t, adapter.Record(ctx, "MED002"))
	require.NoError(t, adapter.Record(ctx, "MED001"))

	codes, err := adapter.Load(ctx)
	require.NoError(t, err)
	// MED001 stays where it was; a re-scan does not move it to the front.
	assert.Equal(t, []string{"MED002", "MED001"}, codes)
}

func TestHistoryAdapter_EvictsOldestBeyondTen(t *testing.T) {
	ctx := context.Background()
	adapter := localstore.NewHistoryAdapter(storage.NewMemoryStore())

	for i := 1; i <= 11; i++ {
		require.NoError(t, adapter.Record(ctx, fmt.Sprintf("MED%03d", i)))
	}

	codes, err := adapter.Load(ctx)
	require.NoError(t, err)
	require.Len(t, codes, 10)
	assert.Equal(t, "MED011", codes[0])
	assert.Equal(t, "MED002", codes[9])
	assert.NotContains(t, codes, "MED001")
}

func TestHistoryAdapter_EmptyStorageYieldsEmpty(t *testing.T) {
	adapter := localstore.NewHistoryAdapter(storage.NewMemoryStore())

	codes, err := adapter.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, codes)
}

func TestHistoryAdapter_MalformedBlobYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "scanHistory", []byte("[[[")))

	adapter := localstore.NewHistoryAdapter(store)

	codes, err := adapter.Load(ctx)
	assert.NoError(t, err)
	assert.Empty(t, codes)
}

func TestHistoryAdapter_Clear(t *testing.T) {
	ctx := context.Background()
	adapter := localstore.NewHistoryAdapter(storage.NewMemoryStore())

	require.NoError(t, adapter.Record(ctx, "MED001"))
	require.NoError(t, adapter.Clear(ctx))

	codes, err := adapter.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
