package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/testing/suite"
)

func newResult(id string) *entity.Result {
	winner := entity.NewPlayer("alice", entity.SymbolX, entity.Human)
	loser := entity.NewPlayer("bob", entity.SymbolO, entity.Computer)

	return entity.NewResult(id, "Standard Tic-Tac-Toe", entity.WinFor(winner, loser), 5,
		time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC))
}

func TestResultRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	resultRepo := NewResultRepository(st.Storage.Connection, 10)

	// Given: a finished game result
	result := newResult("123")

	// When: Save is called
	err := resultRepo.Save(ctx, result)

	// Then: no error should be returned, and the id is listed
	require.NoError(t, err)

	ids, err := st.Storage.Connection.LRange(ctx, resultsListKey, 0, -1).Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, ids)
}

func TestResultRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage.Connection, 10)

		// Given: a stored result
		result := newResult("123")
		require.NoError(t, resultRepo.Save(ctx, result))

		// When: GetByID is called with existing ID
		retrieved, err := resultRepo.GetByID(ctx, result.ID)

		// Then: the retrieved result should match the saved one
		require.NoError(t, err)
		assert.Equal(t, result.WinnerName, retrieved.WinnerName)
		assert.Equal(t, result.Moves, retrieved.Moves)
		assert.True(t, result.FinishedAt.Equal(retrieved.FinishedAt))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage.Connection, 10)

		// When: GetByID is called with a missing ID
		retrieved, err := resultRepo.GetByID(ctx, "9999999")

		// Then: ErrResultNotFound should be returned
		require.ErrorIs(t, err, apperror.ErrResultNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestResultRepository_ListRecent(t *testing.T) {
	ctx, st := suite.New(t)

	resultRepo := NewResultRepository(st.Storage.Connection, 3)

	// Given: five results saved in order while only three are kept
	for i := range 5 {
		require.NoError(t, resultRepo.Save(ctx, newResult(fmt.Sprintf("r%d", i))))
	}

	// When
	results, err := resultRepo.ListRecent(ctx, 10)

	// Then: the newest three come back, newest first
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "r4", results[0].ID)
	assert.Equal(t, "r2", results[2].ID)

	// When: fewer are asked for
	results, err = resultRepo.ListRecent(ctx, 1)

	// Then
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "r4", results[0].ID)
}
