package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
)

func TestMemoryResultRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Saved results can be read back", func(t *testing.T) {
		// Given
		resultRepo := NewMemoryResultRepository(10)
		result := newResult("abc")

		// When
		require.NoError(t, resultRepo.Save(ctx, result))
		retrieved, err := resultRepo.GetByID(ctx, "abc")

		// Then: a copy is returned
		require.NoError(t, err)
		assert.Equal(t, result, retrieved)
		assert.NotSame(t, result, retrieved)
	})

	t.Run("Unknown id", func(t *testing.T) {
		resultRepo := NewMemoryResultRepository(10)

		_, err := resultRepo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrResultNotFound)
	})

	t.Run("Keeps only the newest results", func(t *testing.T) {
		// Given: four results with room for two
		resultRepo := NewMemoryResultRepository(2)
		for i := range 4 {
			require.NoError(t, resultRepo.Save(ctx, newResult(fmt.Sprintf("r%d", i))))
		}

		// When
		results, err := resultRepo.ListRecent(ctx, 10)

		// Then
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "r3", results[0].ID)
		assert.Equal(t, "r2", results[1].ID)

		_, err = resultRepo.GetByID(ctx, "r0")
		require.ErrorIs(t, err, apperror.ErrResultNotFound)
	})

	t.Run("Limit caps the listing", func(t *testing.T) {
		resultRepo := NewMemoryResultRepository(10)
		for i := range 3 {
			require.NoError(t, resultRepo.Save(ctx, newResult(fmt.Sprintf("r%d", i))))
		}

		results, err := resultRepo.ListRecent(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, results, 1)

		results, err = resultRepo.ListRecent(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
