package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quickstart/pkg/domain"
)

// RunDocumentStoreContract runs a suite of tests to verify that a DocumentStore
// implementation adheres to the defined interface contract.
func RunDocumentStoreContract(t *testing.T, store DocumentStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		content := map[string]any{
			"version": 1,
			"project": map[string]any{"name": "acme"},
			"php": map[string]any{
				"enabled":    true,
				"extensions": map[string]any{"base": []any{"intl", "bcmath"}},
			},
		}

		err := store.Save(ctx, key, content)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, content, loaded)
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := store.Exists(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, "non-existent-"+key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, map[string]any{"version": 2}))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"version": 2}, loaded)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound, "Load after Delete should return ErrDocumentNotFound")
	})
}
