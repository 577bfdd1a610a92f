package ui

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

var errPieceNotSelected = errors.New("piece was not selected")

// fourByFourUI selects the piece itself and returns the destination as the move.
type fourByFourUI struct {
	base
}

func (that *fourByFourUI) GetMove(player *entity.Player) (entity.Move, error) {
	if player.IsComputer() {
		return that.computerSlide(player)
	}

	for {
		values, err := that.console.ReadInts(that.prompt(player, "piece to move (row column): "), 2)
		if err != nil {
			return entity.Move{}, err
		}

		if that.board.UpdateBoard(entity.NewMove(values[0], values[1], player.Symbol)) {
			break
		}

		that.console.Println("Pick one of your own pieces.")
	}

	values, err := that.console.ReadInts(that.prompt(player, "move it to (row column): "), 2)
	if err != nil {
		return entity.Move{}, err
	}

	return entity.NewMove(values[0], values[1], player.Symbol), nil
}

func (that *fourByFourUI) computerSlide(player *entity.Player) (entity.Move, error) {
	piece, err := that.bot.ChooseMove(that.board, player)
	if err != nil {
		return entity.Move{}, fmt.Errorf("%s has no move: %w", player.Name, err)
	}

	if !that.board.UpdateBoard(piece) {
		return entity.Move{}, fmt.Errorf("%s at %d %d: %w", player.Name, piece.Row, piece.Col, errPieceNotSelected)
	}

	destination, err := that.bot.ChooseMove(that.board, player)
	if err != nil {
		return entity.Move{}, fmt.Errorf("%s has no move: %w", player.Name, err)
	}

	that.console.Printf("%s moves %d %d to %d %d\n", player.Name, piece.Row, piece.Col, destination.Row, destination.Col)

	return destination, nil
}
