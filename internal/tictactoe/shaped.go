package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const (
	pyramidRows  = 3
	pyramidCols  = 5
	pyramidCells = 9

	diamondSize   = 5
	diamondCenter = 2
	diamondCells  = 13
)

func pyramidCell(row, col int) bool {
	return col >= pyramidRows-1-row && col <= pyramidRows-1+row
}

var pyramidLines = []line{
	{cells: []coord{{1, 1}, {1, 2}, {1, 3}}, dir: horizontal},
	{cells: []coord{{0, 2}, {1, 2}, {2, 2}}, dir: vertical},
	{cells: []coord{{2, 0}, {2, 1}, {2, 2}}, dir: horizontal},
	{cells: []coord{{2, 1}, {2, 2}, {2, 3}}, dir: horizontal},
	{cells: []coord{{2, 2}, {2, 3}, {2, 4}}, dir: horizontal},
	{cells: []coord{{0, 2}, {1, 3}, {2, 4}}, dir: mainDiagonal},
	{cells: []coord{{0, 2}, {1, 1}, {2, 0}}, dir: antiDiagonal},
}

// Pyramid is a nine-cell triangle laid out on a 3x5 grid.
type Pyramid struct {
	grid
}

func NewPyramid() *Pyramid {
	return &Pyramid{grid: newMaskedGrid(pyramidRows, pyramidCols, pyramidCell)}
}

func (that *Pyramid) UpdateBoard(move entity.Move) bool {
	return that.apply(move)
}

func (that *Pyramid) IsWin(player *entity.Player) bool {
	return anyLine(that.at, pyramidLines, player.Symbol)
}

func (that *Pyramid) IsLose(*entity.Player) bool {
	return false
}

func (that *Pyramid) IsDraw(player *entity.Player) bool {
	return that.moves >= pyramidCells && !that.IsWin(player)
}

func (that *Pyramid) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *Pyramid) LegalMoves(player *entity.Player) []entity.Move {
	return that.placements(player.Symbol)
}

func diamondCell(row, col int) bool {
	return abs(row-diamondCenter)+abs(col-diamondCenter) <= diamondCenter
}

// Diamond is a thirteen-cell rhombus on a 5x5 grid. A player wins by holding
// a complete line of three and a complete line of four running in different
// directions.
type Diamond struct {
	grid
	threes []line
	fours  []line
}

func NewDiamond() *Diamond {
	return &Diamond{
		grid:   newMaskedGrid(diamondSize, diamondSize, diamondCell),
		threes: windows(diamondSize, diamondSize, 3, diamondCell),
		fours:  windows(diamondSize, diamondSize, 4, diamondCell),
	}
}

func (that *Diamond) UpdateBoard(move entity.Move) bool {
	return that.place(move)
}

func (that *Diamond) IsWin(player *entity.Player) bool {
	return that.wins(player.Symbol)
}

func (that *Diamond) wins(symbol entity.Cell) bool {
	for _, four := range that.fours {
		if !lineIs(that.at, four.cells, symbol) {
			continue
		}

		for _, three := range that.threes {
			if three.dir != four.dir && lineIs(that.at, three.cells, symbol) {
				return true
			}
		}
	}

	return false
}

func (that *Diamond) IsLose(*entity.Player) bool {
	return false
}

func (that *Diamond) IsDraw(*entity.Player) bool {
	return that.moves >= diamondCells && !that.wins(entity.SymbolX) && !that.wins(entity.SymbolO)
}

func (that *Diamond) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *Diamond) LegalMoves(player *entity.Player) []entity.Move {
	return that.placements(player.Symbol)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
