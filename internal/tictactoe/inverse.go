package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

// Inverse is misère X-O: completing a line of your own symbol loses.
type Inverse struct {
	classic
}

func NewInverse() *Inverse {
	return &Inverse{classic: newClassic()}
}

func (that *Inverse) UpdateBoard(move entity.Move) bool {
	return that.place(move)
}

// IsWin is true when the opponent has three in a row.
func (that *Inverse) IsWin(player *entity.Player) bool {
	return that.hasThree(opponentOf(player.Symbol, entity.SymbolX, entity.SymbolO))
}

// IsLose is true when the player has three in a row.
func (that *Inverse) IsLose(player *entity.Player) bool {
	return that.hasThree(player.Symbol)
}

func (that *Inverse) IsDraw(*entity.Player) bool {
	if that.hasThree(entity.SymbolX) || that.hasThree(entity.SymbolO) {
		return false
	}

	return that.filled()
}

func (that *Inverse) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

// WouldLose reports whether placing the player's symbol at (row, col) completes their own line.
func (that *Inverse) WouldLose(player *entity.Player, row, col int) bool {
	if !that.canPlace(entity.NewMove(row, col, player.Symbol)) {
		return false
	}

	cellAt := func(c coord) entity.Cell {
		if c.row == row && c.col == col {
			return player.Symbol
		}

		return that.at(c)
	}

	return hasThree(cellAt, coord{0, 0}, player.Symbol)
}

func (that *Inverse) LegalMoves(player *entity.Player) []entity.Move {
	return that.placements(player.Symbol)
}
