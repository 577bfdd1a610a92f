package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const classicSize = 3

// classic is the 3x3 storage shared by the line-of-three variants.
type classic struct {
	grid
}

func newClassic() classic {
	return classic{grid: newGrid(classicSize, classicSize)}
}

func (that *classic) hasThree(symbol entity.Cell) bool {
	return hasThree(that.at, coord{0, 0}, symbol)
}

func (that *classic) filled() bool {
	return that.moves >= classicSize*classicSize
}

// Standard is plain 3x3 X-O: three in a row wins, a full board is a draw.
type Standard struct {
	classic
}

func NewStandard() *Standard {
	return &Standard{classic: newClassic()}
}

func (that *Standard) UpdateBoard(move entity.Move) bool {
	return that.apply(move)
}

func (that *Standard) IsWin(player *entity.Player) bool {
	return that.hasThree(player.Symbol)
}

func (that *Standard) IsLose(*entity.Player) bool {
	return false
}

func (that *Standard) IsDraw(player *entity.Player) bool {
	return that.filled() && !that.IsWin(player)
}

func (that *Standard) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *Standard) LegalMoves(player *entity.Player) []entity.Move {
	return that.placements(player.Symbol)
}

// Memory plays by the standard rules; only its renderer hides the marks.
type Memory struct {
	classic
}

func NewMemory() *Memory {
	return &Memory{classic: newClassic()}
}

func (that *Memory) UpdateBoard(move entity.Move) bool {
	return that.apply(move)
}

func (that *Memory) IsWin(player *entity.Player) bool {
	return that.hasThree(player.Symbol)
}

func (that *Memory) IsLose(*entity.Player) bool {
	return false
}

func (that *Memory) IsDraw(player *entity.Player) bool {
	return that.filled() && !that.IsWin(player)
}

func (that *Memory) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *Memory) LegalMoves(player *entity.Player) []entity.Move {
	return that.placements(player.Symbol)
}
