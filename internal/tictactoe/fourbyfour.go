package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const (
	fourByFourSize = 4
	fourByFourRun  = 3
)

var orthogonal = [...]coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// FourByFour starts with four pieces per side on the outer rows. A turn
// slides one of the mover's own pieces into an orthogonally adjacent empty
// cell and takes two UpdateBoard calls: the first names the piece, the second
// names the destination. Three in a row in any direction wins.
type FourByFour struct {
	grid
	lines    []line
	selected *coord
}

func NewFourByFour() *FourByFour {
	that := &FourByFour{
		grid:  newGrid(fourByFourSize, fourByFourSize),
		lines: windows(fourByFourSize, fourByFourSize, fourByFourRun, everywhere),
	}

	top := [...]entity.Cell{entity.SymbolO, entity.SymbolX, entity.SymbolO, entity.SymbolX}
	for c, symbol := range top {
		that.set(coord{0, c}, symbol)
		that.set(coord{fourByFourSize - 1, c}, opponentOf(symbol, entity.SymbolX, entity.SymbolO))
	}

	return that
}

// UpdateBoard selects the piece when the target holds the mover's symbol and
// slides the selected piece when the target is an adjacent empty cell.
func (that *FourByFour) UpdateBoard(move entity.Move) bool {
	symbol := move.Symbol.Upper()
	if !symbol.IsMark() || !that.inBounds(move.Row, move.Col) {
		return false
	}

	target := coord{move.Row, move.Col}

	switch that.at(target) {
	case symbol:
		that.selected = &target

		return true
	case entity.Empty:
		if that.selected == nil || that.at(*that.selected) != symbol || !adjacent(*that.selected, target) {
			return false
		}

		that.set(*that.selected, entity.Empty)
		that.set(target, symbol)
		that.selected = nil
		that.moves++

		return true
	default:
		return false
	}
}

// Selected returns the piece waiting to be moved, if any.
func (that *FourByFour) Selected() (row, col int, ok bool) {
	if that.selected == nil {
		return 0, 0, false
	}

	return that.selected.row, that.selected.col, true
}

func (that *FourByFour) IsWin(player *entity.Player) bool {
	return anyLine(that.at, that.lines, player.Symbol)
}

func (that *FourByFour) IsLose(*entity.Player) bool {
	return false
}

func (that *FourByFour) IsDraw(*entity.Player) bool {
	return false
}

func (that *FourByFour) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

// LegalMoves lists selections of movable pieces, or destinations once a piece is selected.
func (that *FourByFour) LegalMoves(player *entity.Player) []entity.Move {
	if that.selected != nil && that.at(*that.selected) == player.Symbol {
		return that.destinations(*that.selected, player.Symbol)
	}

	var moves []entity.Move
	for r := range that.cells {
		for c := range that.cells[r] {
			origin := coord{r, c}
			if that.at(origin) == player.Symbol && len(that.destinations(origin, player.Symbol)) > 0 {
				moves = append(moves, entity.NewMove(r, c, player.Symbol))
			}
		}
	}

	return moves
}

func (that *FourByFour) destinations(origin coord, symbol entity.Cell) []entity.Move {
	var moves []entity.Move
	for _, step := range orthogonal {
		next := coord{origin.row + step.row, origin.col + step.col}
		if that.at(next) == entity.Empty {
			moves = append(moves, entity.NewMove(next.row, next.col, symbol))
		}
	}

	return moves
}

func adjacent(a, b coord) bool {
	dr, dc := a.row-b.row, a.col-b.col

	return dr*dr+dc*dc == 1
}
