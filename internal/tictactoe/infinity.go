package tictactoe

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

// infinityCycle is the number of placements between two removals.
const infinityCycle = 3

// Infinity removes the oldest surviving mark, whoever placed it, on every
// placement whose move number n satisfies n > 1 and (n-1) % 3 == 0.
type Infinity struct {
	classic
	history []coord
}

func NewInfinity() *Infinity {
	return &Infinity{classic: newClassic()}
}

func (that *Infinity) UpdateBoard(move entity.Move) bool {
	target := coord{move.Row, move.Col}

	if move.IsUndo() {
		if !that.undo(move) {
			return false
		}
		that.history = slices.DeleteFunc(that.history, func(c coord) bool { return c == target })

		return true
	}

	if !that.place(move) {
		return false
	}
	that.history = append(that.history, target)

	if that.moves > 1 && (that.moves-1)%infinityCycle == 0 {
		that.set(that.history[0], entity.Empty)
		that.history = that.history[1:]
	}

	return true
}

// Oldest returns the mark that will be removed next, if any.
func (that *Infinity) Oldest() (row, col int, ok bool) {
	if len(that.history) == 0 {
		return 0, 0, false
	}

	return that.history[0].row, that.history[0].col, true
}

func (that *Infinity) IsWin(player *entity.Player) bool {
	return that.hasThree(player.Symbol)
}

func (that *Infinity) IsLose(*entity.Player) bool {
	return false
}

func (that *Infinity) IsDraw(player *entity.Player) bool {
	return that.filled() && !that.IsWin(player)
}

func (that *Infinity) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *Infinity) LegalMoves(player *entity.Player) []entity.Move {
	return that.placements(player.Symbol)
}
