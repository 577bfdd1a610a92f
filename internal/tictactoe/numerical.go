package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const numericalTarget = 15

// Numerical is played with the digits 1-9, each usable once per game.
// The odd player holds symbol O, the even player holds X.
// Any full line summing to 15 wins for the mover.
type Numerical struct {
	classic
	used map[entity.Cell]bool
}

func NewNumerical() *Numerical {
	return &Numerical{
		classic: newClassic(),
		used:    make(map[entity.Cell]bool),
	}
}

func (that *Numerical) UpdateBoard(move entity.Move) bool {
	if move.IsUndo() {
		digit := that.Cell(move.Row, move.Col)
		if !that.undo(move) {
			return false
		}
		delete(that.used, digit)

		return true
	}

	if !isDigit(move.Symbol) || that.used[move.Symbol] {
		return false
	}

	if !that.place(move) {
		return false
	}
	that.used[move.Symbol] = true

	return true
}

// Used reports whether the digit has already been placed.
func (that *Numerical) Used(digit entity.Cell) bool {
	return that.used[digit]
}

// Allows reports whether the player may place digit: it must be unused and of
// the player's parity.
func (that *Numerical) Allows(player *entity.Player, digit entity.Cell) bool {
	if !isDigit(digit) || that.used[digit] {
		return false
	}

	odd := (digit-'0')%2 == 1
	if player.Symbol == entity.SymbolX {
		return !odd
	}

	return odd
}

func (that *Numerical) IsWin(*entity.Player) bool {
	for _, combo := range WinCombos {
		sum := 0
		full := true
		for _, c := range comboLine(combo, coord{0, 0}) {
			value := that.at(c)
			if !isDigit(value) {
				full = false
				break
			}
			sum += int(value - '0')
		}

		if full && sum == numericalTarget {
			return true
		}
	}

	return false
}

func (that *Numerical) IsLose(*entity.Player) bool {
	return false
}

func (that *Numerical) IsDraw(player *entity.Player) bool {
	return that.filled() && !that.IsWin(player)
}

func (that *Numerical) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *Numerical) LegalMoves(player *entity.Player) []entity.Move {
	var moves []entity.Move
	for _, c := range that.emptyCells() {
		for digit := entity.Cell('1'); digit <= '9'; digit++ {
			if that.Allows(player, digit) {
				moves = append(moves, entity.NewMove(c.row, c.col, digit))
			}
		}
	}

	return moves
}

func isDigit(c entity.Cell) bool {
	return c >= '1' && c <= '9'
}
