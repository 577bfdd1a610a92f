package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

type coord struct {
	row, col int
}

// grid is the cell storage every variant embeds.
type grid struct {
	cells [][]entity.Cell
	moves int
}

func newGrid(rows, cols int) grid {
	cells := make([][]entity.Cell, rows)
	for r := range cells {
		cells[r] = make([]entity.Cell, cols)
		for c := range cells[r] {
			cells[r][c] = entity.Empty
		}
	}

	return grid{cells: cells}
}

// newMaskedGrid marks every cell outside the playable shape as OffBoard.
func newMaskedGrid(rows, cols int, playable func(row, col int) bool) grid {
	that := newGrid(rows, cols)
	for r := range that.cells {
		for c := range that.cells[r] {
			if !playable(r, c) {
				that.cells[r][c] = entity.OffBoard
			}
		}
	}

	return that
}

func (that *grid) Rows() int {
	return len(that.cells)
}

func (that *grid) Cols() int {
	if len(that.cells) == 0 {
		return 0
	}

	return len(that.cells[0])
}

// Cell returns OffBoard for coordinates outside the grid.
func (that *grid) Cell(row, col int) entity.Cell {
	if !that.inBounds(row, col) {
		return entity.OffBoard
	}

	return that.cells[row][col]
}

func (that *grid) MoveCount() int {
	return that.moves
}

func (that *grid) inBounds(row, col int) bool {
	return row >= 0 && row < that.Rows() && col >= 0 && col < that.Cols()
}

func (that *grid) at(c coord) entity.Cell {
	return that.Cell(c.row, c.col)
}

func (that *grid) set(c coord, value entity.Cell) {
	that.cells[c.row][c.col] = value
}

// canPlace checks the base rule: in bounds, empty target, writable symbol.
func (that *grid) canPlace(move entity.Move) bool {
	if !that.inBounds(move.Row, move.Col) {
		return false
	}

	return that.cells[move.Row][move.Col] == entity.Empty && move.Symbol.Upper().IsMark()
}

func (that *grid) place(move entity.Move) bool {
	if !that.canPlace(move) {
		return false
	}

	that.cells[move.Row][move.Col] = move.Symbol.Upper()
	that.moves++

	return true
}

// undo clears a cell that holds a placed mark and gives the move back.
// Obstacles and off-board cells are never cleared.
func (that *grid) undo(move entity.Move) bool {
	if !that.inBounds(move.Row, move.Col) || !that.cells[move.Row][move.Col].IsMark() {
		return false
	}

	that.cells[move.Row][move.Col] = entity.Empty
	that.moves--

	return true
}

// apply is place or undo depending on the move symbol.
func (that *grid) apply(move entity.Move) bool {
	if move.IsUndo() {
		return that.undo(move)
	}

	return that.place(move)
}

func (that *grid) emptyCells() []coord {
	var cells []coord
	for r := range that.cells {
		for c := range that.cells[r] {
			if that.cells[r][c] == entity.Empty {
				cells = append(cells, coord{r, c})
			}
		}
	}

	return cells
}

func (that *grid) full() bool {
	return len(that.emptyCells()) == 0
}

// placements lists a move with the given symbol for every empty cell.
func (that *grid) placements(symbol entity.Cell) []entity.Move {
	empty := that.emptyCells()
	moves := make([]entity.Move, 0, len(empty))
	for _, c := range empty {
		moves = append(moves, entity.NewMove(c.row, c.col, symbol))
	}

	return moves
}
