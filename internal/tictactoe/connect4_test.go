package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

func TestConnect4_DropRow(t *testing.T) {
	// Given
	board := NewConnect4()

	// When: an empty column is probed
	row, ok := board.DropRow(3)

	// Then: pieces land on the bottom row
	require.True(t, ok)
	assert.Equal(t, 5, row)

	// When: the column fills up
	for r := 5; r >= 0; r-- {
		play(t, board, mv(r, 3, 'X'))
	}

	// Then: there is no room left
	_, ok = board.DropRow(3)
	assert.False(t, ok)

	_, ok = board.DropRow(7)
	assert.False(t, ok)
	_, ok = board.DropRow(-1)
	assert.False(t, ok)
}

func TestConnect4_LegalMovesFollowGravity(t *testing.T) {
	board := NewConnect4()
	play(t, board, mv(5, 0, 'X'))

	moves := board.LegalMoves(playerO)

	require.Len(t, moves, 7)
	assert.Equal(t, mv(4, 0, 'O'), moves[0])
	assert.Equal(t, mv(5, 6, 'O'), moves[6])
}

func TestConnect4_FourInARowWins(t *testing.T) {
	lines := map[string][]entity.Move{
		"vertical":   {mv(5, 0, 'X'), mv(4, 0, 'X'), mv(3, 0, 'X'), mv(2, 0, 'X')},
		"horizontal": {mv(5, 3, 'X'), mv(5, 4, 'X'), mv(5, 5, 'X'), mv(5, 6, 'X')},
		"diagonal":   {mv(2, 0, 'X'), mv(3, 1, 'X'), mv(4, 2, 'X'), mv(5, 3, 'X')},
		"anti":       {mv(5, 0, 'X'), mv(4, 1, 'X'), mv(3, 2, 'X'), mv(2, 3, 'X')},
	}

	for name, moves := range lines {
		t.Run(name, func(t *testing.T) {
			board := NewConnect4()
			play(t, board, moves[:3]...)
			require.False(t, board.IsWin(playerX))

			play(t, board, moves[3])

			assert.True(t, board.IsWin(playerX))
			assert.False(t, board.IsWin(playerO))
			assert.False(t, board.IsLose(playerO))
		})
	}
}

func TestConnect4_FullBoardIsDraw(t *testing.T) {
	// Given: columns filled in pairs so no four ever lines up
	board := NewConnect4()
	fill(t, board,
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
	)

	assert.Equal(t, 42, board.MoveCount())
	assert.True(t, board.IsDraw(playerX))
	assert.Empty(t, board.LegalMoves(playerO))
}
