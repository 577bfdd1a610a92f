package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

type direction int

const (
	horizontal direction = iota
	vertical
	mainDiagonal
	antiDiagonal
)

var steps = [...]coord{
	horizontal:   {0, 1},
	vertical:     {1, 0},
	mainDiagonal: {1, 1},
	antiDiagonal: {1, -1},
}

// WinCombos are the eight lines of a 3x3 board as row-major cell indexes.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type line struct {
	cells []coord
	dir   direction
}

// comboLine maps a WinCombos entry onto the 3x3 block whose top-left cell is origin.
func comboLine(combo [3]int, origin coord) []coord {
	cells := make([]coord, 0, len(combo))
	for _, index := range combo {
		cells = append(cells, coord{origin.row + index/3, origin.col + index%3})
	}

	return cells
}

// hasThree reports whether symbol fills any WinCombos line of the 3x3 block at origin.
func hasThree(cellAt func(coord) entity.Cell, origin coord, symbol entity.Cell) bool {
	if !symbol.IsMark() {
		return false
	}

	for _, combo := range WinCombos {
		if lineIs(cellAt, comboLine(combo, origin), symbol) {
			return true
		}
	}

	return false
}

func lineIs(cellAt func(coord) entity.Cell, cells []coord, symbol entity.Cell) bool {
	for _, c := range cells {
		if cellAt(c) != symbol {
			return false
		}
	}

	return true
}

// windows enumerates every straight run of length cells in the four directions
// whose cells are all inside the grid and accepted by playable.
func windows(rows, cols, length int, playable func(row, col int) bool) []line {
	var lines []line
	for r := range rows {
		for c := range cols {
			for dir, step := range steps {
				cells := make([]coord, 0, length)
				for k := range length {
					rr, cc := r+k*step.row, c+k*step.col
					if rr < 0 || rr >= rows || cc < 0 || cc >= cols || !playable(rr, cc) {
						break
					}
					cells = append(cells, coord{rr, cc})
				}

				if len(cells) == length {
					lines = append(lines, line{cells: cells, dir: direction(dir)})
				}
			}
		}
	}

	return lines
}

func anyLine(cellAt func(coord) entity.Cell, lines []line, symbol entity.Cell) bool {
	for _, l := range lines {
		if lineIs(cellAt, l.cells, symbol) {
			return true
		}
	}

	return false
}

// runThrough counts the cells holding symbol on the line through origin in direction step.
func runThrough(cellAt func(coord) entity.Cell, origin, step coord, symbol entity.Cell) int {
	if cellAt(origin) != symbol {
		return 0
	}

	count := 1
	for _, sign := range [...]int{1, -1} {
		next := coord{origin.row + sign*step.row, origin.col + sign*step.col}
		for cellAt(next) == symbol {
			count++
			next = coord{next.row + sign*step.row, next.col + sign*step.col}
		}
	}

	return count
}

func everywhere(int, int) bool {
	return true
}
