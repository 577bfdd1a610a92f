package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hub/internal/dictionary"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

// Word lets either player write any letter. A full line that spells a
// dictionary word, forward or backward, wins for the mover.
type Word struct {
	classic
	words dictionary.Lookup
}

func NewWord(words dictionary.Lookup) *Word {
	return &Word{
		classic: newClassic(),
		words:   words,
	}
}

// LoadWord builds the board from a dictionary file. A missing file is fatal for the session.
func LoadWord(path string) (*Word, error) {
	words, err := dictionary.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to set up word board: %w", err)
	}

	return NewWord(words), nil
}

func (that *Word) UpdateBoard(move entity.Move) bool {
	if !move.IsUndo() && !isLetter(move.Symbol.Upper()) {
		return false
	}

	return that.apply(move)
}

func (that *Word) IsWin(*entity.Player) bool {
	for _, combo := range WinCombos {
		candidate := make([]rune, 0, len(combo))
		for _, c := range comboLine(combo, coord{0, 0}) {
			candidate = append(candidate, rune(that.at(c)))
		}

		if that.complete(candidate) && that.words.Contains(string(candidate)) {
			return true
		}
	}

	return false
}

func (that *Word) IsLose(*entity.Player) bool {
	return false
}

func (that *Word) IsDraw(player *entity.Player) bool {
	return that.filled() && !that.IsWin(player)
}

func (that *Word) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *Word) LegalMoves(*entity.Player) []entity.Move {
	var moves []entity.Move
	for _, c := range that.emptyCells() {
		for letter := entity.Cell('A'); letter <= 'Z'; letter++ {
			moves = append(moves, entity.NewMove(c.row, c.col, letter))
		}
	}

	return moves
}

func (that *Word) complete(candidate []rune) bool {
	for _, r := range candidate {
		if !isLetter(entity.Cell(r)) {
			return false
		}
	}

	return true
}

func isLetter(c entity.Cell) bool {
	return c >= 'A' && c <= 'Z'
}
