package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

// GameUI is what a session needs from the console front end of its variant.
type GameUI interface {
	Title() string
	SetupPlayers() ([2]*entity.Player, error)
	GetMove(player *entity.Player) (entity.Move, error)
	DisplayBoard()
	DisplayMessage(message string)
}

// Session owns everything one game needs. It is dropped as a whole when the game ends.
type Session struct {
	Variant tictactoe.Variant
	Board   tictactoe.Board
	UI      GameUI
	Players [2]*entity.Player
}

// NewSession asks the UI for the two players and binds them to the board.
func NewSession(variant tictactoe.Variant, board tictactoe.Board, ui GameUI) (*Session, error) {
	players, err := ui.SetupPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to set up players: %w", err)
	}

	for _, player := range players {
		player.Bind(board)
	}

	return &Session{
		Variant: variant,
		Board:   board,
		UI:      ui,
		Players: players,
	}, nil
}
