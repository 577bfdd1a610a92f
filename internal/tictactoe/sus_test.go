package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

var (
	playerS = entity.NewPlayer("sam", entity.SymbolS, entity.Human)
	playerU = entity.NewPlayer("uma", entity.SymbolU, entity.Human)
)

func TestSUS_Scoring(t *testing.T) {
	t.Run("Completing SUS on a row scores one for the placed letter", func(t *testing.T) {
		// Given
		board := NewSUS()

		// When: S, U, S along the top row
		play(t, board, mv(0, 0, 'S'), mv(0, 1, 'U'), mv(0, 2, 'S'))

		// Then
		assert.Equal(t, 1, board.Score(entity.SymbolS))
		assert.Equal(t, 0, board.Score(entity.SymbolU))
	})

	t.Run("Every line through the cell is scored independently", func(t *testing.T) {
		// Given: S on all four sides of the center
		board := NewSUS()
		play(t, board, mv(0, 1, 'S'), mv(1, 0, 'S'), mv(1, 2, 'S'), mv(2, 1, 'S'))

		// When: U takes the center
		play(t, board, mv(1, 1, 'U'))

		// Then: the row and the column both score for U
		assert.Equal(t, 2, board.Score(entity.SymbolU))
		assert.Equal(t, 0, board.Score(entity.SymbolS))
	})

	t.Run("Diagonals count through their cells", func(t *testing.T) {
		board := NewSUS()
		play(t, board, mv(0, 2, 'S'), mv(2, 0, 'S'), mv(1, 1, 'U'))

		assert.Equal(t, 1, board.Score(entity.SymbolU))
	})

	t.Run("Other symbols are rejected", func(t *testing.T) {
		board := NewSUS()

		assert.False(t, board.UpdateBoard(mv(0, 0, 'X')))
		assert.True(t, board.UpdateBoard(mv(0, 0, 's')))
		assert.Equal(t, entity.SymbolS, board.Cell(0, 0))
	})
}

func TestSUS_Result(t *testing.T) {
	// Given: S scored once and the board is filled with U
	board := NewSUS()
	fill(t, board, "SUS", "UUU", "UUU")

	// Then: S wins, U loses
	assert.Equal(t, 1, board.Score(entity.SymbolS))
	assert.Equal(t, 0, board.Score(entity.SymbolU))
	assert.True(t, board.IsWin(playerS))
	assert.True(t, board.IsLose(playerU))
	assert.False(t, board.IsDraw(playerS))
	assert.True(t, board.GameIsOver(playerU))
}

func TestSUS_NoResultBeforeNinthMove(t *testing.T) {
	board := NewSUS()
	fill(t, board, "SUS", "...", "...")

	assert.False(t, board.IsWin(playerS))
	assert.False(t, board.IsLose(playerU))
	assert.False(t, board.GameIsOver(playerS))
}

func TestSUS_EqualScoresDraw(t *testing.T) {
	board := NewSUS()
	fill(t, board, "SSU", "SSU", "UUS")

	assert.Equal(t, board.Score(entity.SymbolS), board.Score(entity.SymbolU))
	assert.True(t, board.IsDraw(playerS))
	assert.True(t, board.IsDraw(playerU))
}
