package entity

import "unicode"

// Cell is a single symbol stored in a board grid.
type Cell rune

const (
	Empty    Cell = '.'
	Undo     Cell = 0
	Obstacle Cell = '#'
	OffBoard Cell = ' '
	Drawn    Cell = 'D'

	SymbolX Cell = 'X'
	SymbolO Cell = 'O'
	SymbolS Cell = 'S'
	SymbolU Cell = 'U'
)

// Upper returns the upper-case form of the cell.
func (c Cell) Upper() Cell {
	return Cell(unicode.ToUpper(rune(c)))
}

// IsMark reports whether the cell holds a symbol written by a move.
func (c Cell) IsMark() bool {
	switch c {
	case Empty, Undo, Obstacle, OffBoard:
		return false
	default:
		return true
	}
}

func (c Cell) String() string {
	if c == Undo {
		return ""
	}

	return string(c)
}
