package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

type GameUseCase interface {
	Play(ctx context.Context, variant tictactoe.Variant) (entity.Outcome, error)
	RecentResults(ctx context.Context) ([]*entity.Result, error)
}

// BoardFactory builds a fresh board for a variant.
type BoardFactory func(variant tictactoe.Variant) (tictactoe.Board, error)

// UIFactory builds the front end for a board.
type UIFactory func(variant tictactoe.Variant, board tictactoe.Board) GameUI

type gameRunner interface {
	Run(ctx context.Context, session *Session) (entity.Outcome, error)
}

type gameUseCase struct {
	newBoard    BoardFactory
	newUI       UIFactory
	gameManager gameRunner
	resultRepo  resultRepo
	history     int
}

func NewGameUseCase(newBoard BoardFactory, newUI UIFactory, gameManager gameRunner, resultRepo resultRepo, history int) GameUseCase {
	return &gameUseCase{
		newBoard:    newBoard,
		newUI:       newUI,
		gameManager: gameManager,
		resultRepo:  resultRepo,
		history:     history,
	}
}

// Play builds a session for the variant and runs it to the end.
func (that *gameUseCase) Play(ctx context.Context, variant tictactoe.Variant) (entity.Outcome, error) {
	board, err := that.newBoard(variant)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to create %s board: %w", variant, err)
	}

	gameUI := that.newUI(variant, board)
	gameUI.DisplayMessage("=== " + gameUI.Title() + " ===")

	session, err := NewSession(variant, board, gameUI)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to start %s: %w", variant, err)
	}

	outcome, err := that.gameManager.Run(ctx, session)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to play %s: %w", variant, err)
	}

	return outcome, nil
}

func (that *gameUseCase) RecentResults(ctx context.Context) ([]*entity.Result, error) {
	results, err := that.resultRepo.ListRecent(ctx, that.history)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent results: %w", err)
	}

	return results, nil
}
