package service

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/random"
)

// Board is the part of a game board the bot needs.
type Board interface {
	LegalMoves(player *entity.Player) []entity.Move
}

type BotService interface {
	ChooseMove(board Board, player *entity.Player) (entity.Move, error)
}

type botService struct {
	rnd random.Source
}

func NewBotService(rnd random.Source) BotService {
	return &botService{rnd: rnd}
}

// ChooseMove picks one of the player's legal moves uniformly at random.
func (that *botService) ChooseMove(board Board, player *entity.Player) (entity.Move, error) {
	availableMoves := board.LegalMoves(player)
	if len(availableMoves) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return availableMoves[that.rnd.IntN(len(availableMoves))], nil
}
