package ports

import (
	"context"
	"testing"

	"github.com/aretw0/termgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a Store implementation
// adheres to the defined interface contract. The store must be fresh.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("Read Before Write", func(t *testing.T) {
		_, err := store.Read(ctx)
		assert.ErrorIs(t, err, domain.ErrDestinationNotFound)
	})

	t.Run("Write and Read", func(t *testing.T) {
		terms := []domain.Term{
			{"f", "a", "b"},
			{"c"},
			{"h", "g", "a", "b", "d"},
			{"c"},
		}

		require.NoError(t, store.Write(ctx, terms), "Write should not return error")

		loaded, err := store.Read(ctx)
		require.NoError(t, err, "Read should not return error")
		assert.Equal(t, terms, loaded, "terms must come back in collection order")
	})

	t.Run("Write Overwrites", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, []domain.Term{{"a"}, {"b"}, {"c"}}))
		require.NoError(t, store.Write(ctx, []domain.Term{{"g", "d"}}))

		loaded, err := store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Term{{"g", "d"}}, loaded)
	})

	t.Run("Write Empty", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, []domain.Term{{"a"}}))
		require.NoError(t, store.Write(ctx, nil))

		loaded, err := store.Read(ctx)
		require.NoError(t, err, "an empty write still creates the destination")
		assert.Empty(t, loaded)
	})

	t.Run("Destination", func(t *testing.T) {
		assert.NotEmpty(t, store.Destination())
	})
}
