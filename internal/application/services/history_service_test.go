package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediscan/mediscan/internal/adapters/catalog"
	"github.com/mediscan/mediscan/internal/adapters/localstore"
	"github.com/mediscan/mediscan/internal/adapters/storage"
	"github.com/mediscan/mediscan/internal/application/services"
)

func TestHistoryService_RecentResolvesCodes(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewHistoryAdapter(storage.NewMemoryStore())
	require.NoError(t, repo.Record(ctx, "MED001"))
	require.NoError(t, repo.Record(ctx, "MED002"))

	svc := services.NewHistoryService(repo, catalog.NewStaticCatalog())

	items, err := svc.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "MED002", items[0].Code)
	require.NotNil(t, items[0].Record)
	assert.Equal(t, "Amoxicillin", items[0].Record.Name)
	assert.Equal(t, "MED001", items[1].Code)
}

func TestHistoryService_RecentToleratesDanglingCodes(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewHistoryAdapter(storage.NewMemoryStore())
	require.NoError(t, repo.Record(ctx, "GONE999"))

	svc := services.NewHistoryService(repo, catalog.NewStaticCatalog())

	items, err := svc.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "GONE999", items[0].Code)
	assert.Nil(t, items[0].Record)
}

func TestHistoryService_Clear(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewHistoryAdapter(storage.NewMemoryStore())
	require.NoError(t, repo.Record(ctx, "MED001"))

	svc := services.NewHistoryService(repo, catalog.NewStaticCatalog())
	require.NoError(t, svc.Clear(ctx))

	items, err := svc.Recent(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
