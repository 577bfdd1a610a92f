package ui

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

type wordUI struct {
	base
}

func (that *wordUI) GetMove(player *entity.Player) (entity.Move, error) {
	if player.IsComputer() {
		return that.computerMove(player)
	}

	for {
		row, col, token, err := that.console.ReadCoordsAndToken(that.prompt(player, "enter row, column and letter: "))
		if err != nil {
			return entity.Move{}, err
		}

		letter := entity.Cell(token).Upper()
		if letter < 'A' || letter > 'Z' {
			that.console.Println("Letters A to Z only.")
			continue
		}

		return entity.NewMove(row, col, letter), nil
	}
}
