package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const susWord = "SUS"

// SUS is scored rather than won outright. Whenever a placement completes
// "SUS" on its row, column or diagonal (read left to right, top to bottom)
// the owner of the placed letter scores a point. After nine moves the higher
// score wins.
type SUS struct {
	classic
	scores map[entity.Cell]int
}

func NewSUS() *SUS {
	return &SUS{
		classic: newClassic(),
		scores:  make(map[entity.Cell]int),
	}
}

func (that *SUS) UpdateBoard(move entity.Move) bool {
	symbol := move.Symbol.Upper()
	if symbol != entity.SymbolS && symbol != entity.SymbolU {
		return false
	}

	if !that.place(move) {
		return false
	}

	that.scores[symbol] += that.completed(move.Row, move.Col)

	return true
}

// completed counts the SUS lines through (row, col).
func (that *SUS) completed(row, col int) int {
	candidates := [][]coord{
		{{row, 0}, {row, 1}, {row, 2}},
		{{0, col}, {1, col}, {2, col}},
	}
	if row == col {
		candidates = append(candidates, []coord{{0, 0}, {1, 1}, {2, 2}})
	}
	if row+col == classicSize-1 {
		candidates = append(candidates, []coord{{0, 2}, {1, 1}, {2, 0}})
	}

	count := 0
	for _, cells := range candidates {
		word := make([]rune, 0, len(cells))
		for _, c := range cells {
			word = append(word, rune(that.at(c)))
		}

		if string(word) == susWord {
			count++
		}
	}

	return count
}

func (that *SUS) Score(symbol entity.Cell) int {
	return that.scores[symbol]
}

func (that *SUS) IsWin(player *entity.Player) bool {
	return that.filled() && that.scores[player.Symbol] > that.scores[that.opponent(player)]
}

func (that *SUS) IsLose(player *entity.Player) bool {
	return that.filled() && that.scores[player.Symbol] < that.scores[that.opponent(player)]
}

func (that *SUS) IsDraw(player *entity.Player) bool {
	return that.filled() && that.scores[player.Symbol] == that.scores[that.opponent(player)]
}

func (that *SUS) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *SUS) LegalMoves(player *entity.Player) []entity.Move {
	return that.placements(player.Symbol)
}

func (that *SUS) opponent(player *entity.Player) entity.Cell {
	return opponentOf(player.Symbol, entity.SymbolS, entity.SymbolU)
}
