package ui

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

// connect4UI asks for a column only; the piece falls to the lowest free row.
type connect4UI struct {
	base
	connect4 *tictactoe.Connect4
}

func (that *connect4UI) GetMove(player *entity.Player) (entity.Move, error) {
	if player.IsComputer() {
		return that.computerMove(player)
	}

	for {
		values, err := that.console.ReadInts(that.prompt(player, "choose a column: "), 1)
		if err != nil {
			return entity.Move{}, err
		}

		row, ok := that.connect4.DropRow(values[0])
		if !ok {
			that.console.Println("That column is full or does not exist.")
			continue
		}

		return entity.NewMove(row, values[0], player.Symbol), nil
	}
}
