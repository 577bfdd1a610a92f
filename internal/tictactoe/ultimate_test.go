package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

// drawnBoard is a 5 X / 4 O small board with no line.
var drawnBoard = [3]string{"XOX", "XOO", "OXX"}

func fillSubBoard(t *testing.T, board *Ultimate, br, bc int, rows [3]string) {
	t.Helper()

	for r, row := range rows {
		for c, symbol := range row {
			if entity.Cell(symbol).IsMark() {
				play(t, board, mv(br*3+r, bc*3+c, entity.Cell(symbol)))
			}
		}
	}
}

func TestUltimate_DiagonalOfSubBoardsWins(t *testing.T) {
	// Given
	board := NewUltimate()

	// When: X wins the three sub-boards on the main diagonal
	fillSubBoard(t, board, 0, 0, [3]string{"XXX", "...", "..."})
	fillSubBoard(t, board, 1, 1, [3]string{"X..", "X..", "X.."})
	require.False(t, board.IsWin(playerX))
	fillSubBoard(t, board, 2, 2, [3]string{"X..", ".X.", "..X"})

	// Then: the winners grid records X and X wins the game
	for i := range 3 {
		assert.Equal(t, entity.SymbolX, board.Winner(i, i))
	}
	assert.Equal(t, entity.Empty, board.Winner(0, 1))
	assert.True(t, board.IsWin(playerX))
	assert.True(t, board.IsLose(playerO))
	assert.False(t, board.IsDraw(playerX))
	assert.True(t, board.GameIsOver(playerO))
}

func TestUltimate_DecidedSubBoardIsLocked(t *testing.T) {
	// Given: X won the top-left sub-board
	board := NewUltimate()
	fillSubBoard(t, board, 0, 0, [3]string{"XXX", "...", "..."})

	// When: O tries a free cell inside it
	accepted := board.UpdateBoard(mv(1, 1, 'O'))

	// Then
	assert.False(t, accepted)
	assert.Equal(t, entity.Empty, board.Cell(1, 1))
	for _, move := range board.LegalMoves(playerO) {
		assert.False(t, move.Row < 3 && move.Col < 3, "move %s", move)
	}
}

func TestUltimate_FullSubBoardWithoutLineIsDrawn(t *testing.T) {
	// Given
	board := NewUltimate()

	// When: the top-middle sub-board fills with five X and four O and no line
	fillSubBoard(t, board, 0, 1, drawnBoard)

	// Then: it is drawn
	assert.Equal(t, entity.Drawn, board.Winner(0, 1))

	// When: X owns both neighbours on the top row
	fillSubBoard(t, board, 0, 0, [3]string{"XXX", "...", "..."})
	fillSubBoard(t, board, 0, 2, [3]string{"XXX", "...", "..."})

	// Then: the drawn board never completes a line for anyone
	assert.False(t, board.IsWin(playerX))
	assert.False(t, board.IsWin(playerO))
	assert.False(t, board.GameIsOver(playerX))
}

func TestUltimate_AllSubBoardsDecidedWithoutLineIsDraw(t *testing.T) {
	board := NewUltimate()
	for br := range 3 {
		for bc := range 3 {
			fillSubBoard(t, board, br, bc, drawnBoard)
		}
	}

	assert.True(t, board.IsDraw(playerX))
	assert.False(t, board.IsWin(playerX))
	assert.False(t, board.IsLose(playerX))
	assert.Empty(t, board.LegalMoves(playerX))
}

func TestUltimate_WinnerOutOfRange(t *testing.T) {
	board := NewUltimate()

	assert.Equal(t, entity.OffBoard, board.Winner(3, 0))
	assert.Equal(t, entity.OffBoard, board.Winner(0, -1))
}
