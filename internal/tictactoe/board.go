// Package tictactoe holds the shared board contract and every rule variant played through it.
package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

// Board is the contract every variant implements.
//
// UpdateBoard validates a move and applies it when legal. A rejected move never
// changes any state. The predicates are pure queries over the current state and
// GameIsOver is always their disjunction. Callers stop submitting moves once
// GameIsOver reports true; the board itself does not enforce it.
type Board interface {
	entity.BoardView

	UpdateBoard(move entity.Move) bool

	IsWin(player *entity.Player) bool
	IsLose(player *entity.Player) bool
	IsDraw(player *entity.Player) bool
	GameIsOver(player *entity.Player) bool

	// LegalMoves lists every move the player could submit right now.
	LegalMoves(player *entity.Player) []entity.Move
}

func gameIsOver(board Board, player *entity.Player) bool {
	return board.IsWin(player) || board.IsLose(player) || board.IsDraw(player)
}

// opponentOf returns the other symbol of a two-symbol variant.
func opponentOf(symbol, first, second entity.Cell) entity.Cell {
	if symbol == first {
		return second
	}

	return first
}
