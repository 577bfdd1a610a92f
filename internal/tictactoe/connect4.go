package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const (
	connect4Rows = 6
	connect4Cols = 7
	connect4Run  = 4
)

// Connect4 expects moves already resolved to the lowest empty row of their column; see DropRow.
type Connect4 struct {
	grid
	lines []line
}

func NewConnect4() *Connect4 {
	return &Connect4{
		grid:  newGrid(connect4Rows, connect4Cols),
		lines: windows(connect4Rows, connect4Cols, connect4Run, everywhere),
	}
}

// DropRow returns the row a piece dropped into col would land on.
func (that *Connect4) DropRow(col int) (int, bool) {
	if col < 0 || col >= that.Cols() {
		return 0, false
	}

	for row := that.Rows() - 1; row >= 0; row-- {
		if that.cells[row][col] == entity.Empty {
			return row, true
		}
	}

	return 0, false
}

func (that *Connect4) UpdateBoard(move entity.Move) bool {
	return that.apply(move)
}

func (that *Connect4) IsWin(player *entity.Player) bool {
	return anyLine(that.at, that.lines, player.Symbol)
}

func (that *Connect4) IsLose(*entity.Player) bool {
	return false
}

func (that *Connect4) IsDraw(player *entity.Player) bool {
	return that.moves >= connect4Rows*connect4Cols && !that.IsWin(player)
}

func (that *Connect4) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *Connect4) LegalMoves(player *entity.Player) []entity.Move {
	var moves []entity.Move
	for col := range that.Cols() {
		if row, ok := that.DropRow(col); ok {
			moves = append(moves, entity.NewMove(row, col, player.Symbol))
		}
	}

	return moves
}
