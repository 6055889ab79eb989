package kv_test

import (
	"context"
	"testing"

	"alcyxob/fittracker/internal/repository"
	"alcyxob/fittracker/internal/repository/kv"
	"alcyxob/fittracker/internal/store"
	"alcyxob/fittracker/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRepository_LoadEmptyStoreIsNotFound(t *testing.T) {
	repo := kv.NewTemplateRepository(memory.New())
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTemplateRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewTemplateRepository(memory.New())

	saved := testTemplates()
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestTemplateRepository_UnparseableBlobIsNotFound(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.New()
	require.NoError(t, kvStore.Set(ctx, store.KeyTemplates, "][garbage"))

	repo := kv.NewTemplateRepository(kvStore)
	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
