package ui

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

type numericalUI struct {
	base
	numerical *tictactoe.Numerical
}

func (that *numericalUI) DisplayBoard() {
	that.drawGrid()

	for _, symbol := range that.variant.Symbols() {
		player := entity.NewPlayer("", symbol, entity.Human)
		that.console.Printf("Digits left for %s: %s\n", symbol, that.digitsLeft(player))
	}
}

func (that *numericalUI) digitsLeft(player *entity.Player) string {
	var digits []string
	for digit := entity.Cell('1'); digit <= '9'; digit++ {
		if that.numerical.Allows(player, digit) {
			digits = append(digits, digit.String())
		}
	}

	return strings.Join(digits, " ")
}

func (that *numericalUI) GetMove(player *entity.Player) (entity.Move, error) {
	if player.IsComputer() {
		return that.computerMove(player)
	}

	for {
		row, col, token, err := that.console.ReadCoordsAndToken(that.prompt(player, "enter row, column and digit: "))
		if err != nil {
			return entity.Move{}, err
		}

		digit := entity.Cell(token)
		if !that.numerical.Allows(player, digit) {
			that.console.Printf("Pick one of your digits: %s\n", that.digitsLeft(player))
			continue
		}

		return entity.NewMove(row, col, digit), nil
	}
}
