package entity

import "fmt"

// Move is a request to write Symbol at (Row, Col).
// A move carrying the Undo symbol asks the board to clear the target cell instead.
type Move struct {
	Row    int  `json:"row"`
	Col    int  `json:"col"`
	Symbol Cell `json:"symbol"`
}

func NewMove(row, col int, symbol Cell) Move {
	return Move{Row: row, Col: col, Symbol: symbol}
}

func NewUndoMove(row, col int) Move {
	return Move{Row: row, Col: col, Symbol: Undo}
}

func (that Move) IsUndo() bool {
	return that.Symbol == Undo
}

func (that Move) String() string {
	if that.IsUndo() {
		return fmt.Sprintf("undo(%d,%d)", that.Row, that.Col)
	}

	return fmt.Sprintf("%s(%d,%d)", that.Symbol, that.Row, that.Col)
}
