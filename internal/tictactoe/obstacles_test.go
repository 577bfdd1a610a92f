package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/random"
)

func TestObstacles_PlacementAddsTwoObstacles(t *testing.T) {
	// Given: a source that always picks the first available cell
	rnd := random.NewScripted(0)
	board := NewObstacles(rnd)

	// When
	play(t, board, mv(5, 5, 'X'))

	// Then: the two first free cells are blocked
	assert.Equal(t, entity.Obstacle, board.Cell(0, 0))
	assert.Equal(t, entity.Obstacle, board.Cell(0, 1))
	assert.Equal(t, 33, board.Available())
	assert.Equal(t, 2, rnd.Calls())
	assert.Equal(t, 1, board.MoveCount())

	// Then: obstacles can be neither played on nor undone
	assert.False(t, board.UpdateBoard(mv(0, 0, 'O')))
	assert.False(t, board.UpdateBoard(entity.NewUndoMove(0, 1)))
}

func TestObstacles_UndoReturnsCellToPool(t *testing.T) {
	board := NewObstacles(random.NewScripted(0))
	play(t, board, mv(3, 3, 'X'))

	require.True(t, board.UpdateBoard(entity.NewUndoMove(3, 3)))
	assert.Equal(t, 34, board.Available())
	assert.Equal(t, entity.Obstacle, board.Cell(0, 0))
}

func TestObstacles_FourThroughLastCellWins(t *testing.T) {
	// Given: obstacles pile up from the top-left while both players use the bottom rows
	board := NewObstacles(random.NewScripted(0))
	play(t, board,
		mv(5, 0, 'X'), mv(4, 0, 'O'),
		mv(5, 1, 'X'), mv(4, 1, 'O'),
		mv(5, 2, 'X'), mv(4, 2, 'O'),
	)
	require.False(t, board.IsWin(playerX))

	// When: X completes four on the bottom row
	play(t, board, mv(5, 3, 'X'))

	// Then: X wins, and O cannot since the last cell is not theirs
	assert.True(t, board.IsWin(playerX))
	assert.False(t, board.IsWin(playerO))
	assert.True(t, board.GameIsOver(playerX))
}

func TestObstacles_FullBoardIsDraw(t *testing.T) {
	// Given: marks fill the board from the bottom-right while obstacles fill it from the top-left
	board := NewObstacles(random.NewScripted(0))

	symbols := [...]entity.Cell{entity.SymbolX, entity.SymbolO}
	var last *entity.Player
	for i := range 12 {
		index := 35 - i
		play(t, board, mv(index/6, index%6, symbols[i%2]))
		last = []*entity.Player{playerX, playerO}[i%2]
	}

	// Then: nothing is left to play and nobody has four
	assert.Equal(t, 0, board.Available())
	assert.Empty(t, board.LegalMoves(playerX))
	assert.False(t, board.IsWin(last))
	assert.True(t, board.IsDraw(last))
}
