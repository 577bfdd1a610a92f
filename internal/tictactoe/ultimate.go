package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const (
	subBoards    = 3
	ultimateSize = subBoards * classicSize
)

// Ultimate is nine 3x3 boards in a 3x3 arrangement. Winning a small board
// claims its cell on the winners grid and three claimed cells in a row win
// the game. A small board that fills without a line counts for nobody.
// Decided boards take no more moves.
type Ultimate struct {
	grid
	winners [subBoards][subBoards]entity.Cell
}

func NewUltimate() *Ultimate {
	that := &Ultimate{grid: newGrid(ultimateSize, ultimateSize)}
	for r := range that.winners {
		for c := range that.winners[r] {
			that.winners[r][c] = entity.Empty
		}
	}

	return that
}

func (that *Ultimate) UpdateBoard(move entity.Move) bool {
	if !that.inBounds(move.Row, move.Col) || that.Winner(move.Row/classicSize, move.Col/classicSize) != entity.Empty {
		return false
	}

	if !that.place(move) {
		return false
	}

	br, bc := move.Row/classicSize, move.Col/classicSize
	origin := coord{br * classicSize, bc * classicSize}
	symbol := that.at(coord{move.Row, move.Col})

	switch {
	case hasThree(that.at, origin, symbol):
		that.winners[br][bc] = symbol
	case that.subBoardFull(origin):
		that.winners[br][bc] = entity.Drawn
	}

	return true
}

// Winner reports the state of a small board: Empty while open, the owner's symbol once won, Drawn once filled.
func (that *Ultimate) Winner(br, bc int) entity.Cell {
	if br < 0 || br >= subBoards || bc < 0 || bc >= subBoards {
		return entity.OffBoard
	}

	return that.winners[br][bc]
}

func (that *Ultimate) subBoardFull(origin coord) bool {
	for r := range classicSize {
		for c := range classicSize {
			if that.at(coord{origin.row + r, origin.col + c}) == entity.Empty {
				return false
			}
		}
	}

	return true
}

func (that *Ultimate) winnerAt(c coord) entity.Cell {
	return that.Winner(c.row, c.col)
}

func (that *Ultimate) claims(symbol entity.Cell) bool {
	if symbol == entity.Drawn {
		return false
	}

	return hasThree(that.winnerAt, coord{0, 0}, symbol)
}

func (that *Ultimate) IsWin(player *entity.Player) bool {
	return that.claims(player.Symbol)
}

func (that *Ultimate) IsLose(player *entity.Player) bool {
	return that.claims(opponentOf(player.Symbol, entity.SymbolX, entity.SymbolO))
}

func (that *Ultimate) IsDraw(*entity.Player) bool {
	if that.claims(entity.SymbolX) || that.claims(entity.SymbolO) {
		return false
	}

	for r := range that.winners {
		for c := range that.winners[r] {
			if that.winners[r][c] == entity.Empty {
				return false
			}
		}
	}

	return true
}

func (that *Ultimate) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *Ultimate) LegalMoves(player *entity.Player) []entity.Move {
	var moves []entity.Move
	for _, move := range that.placements(player.Symbol) {
		if that.Winner(move.Row/classicSize, move.Col/classicSize) == entity.Empty {
			moves = append(moves, move)
		}
	}

	return moves
}
