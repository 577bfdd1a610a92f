package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

const invalidMoveMessage = "Invalid move, try again."

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	ListRecent(ctx context.Context, limit int) ([]*entity.Result, error)
}

// GameManager is the turn engine shared by every variant.
type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo
	now        func() time.Time
}

func NewGameManager(logger *slog.Logger, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "gameManager"),
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

// Run alternates the session's players until the board reports an outcome.
func (that *GameManager) Run(ctx context.Context, session *Session) (entity.Outcome, error) {
	log := that.logger.With("method", "Run", "variant", session.Variant.String())

	session.UI.DisplayBoard()

	for turn := 0; ; turn = 1 - turn {
		player, opponent := session.Players[turn], session.Players[1-turn]

		if err := that.playTurn(ctx, session, player); err != nil {
			if errors.Is(err, apperror.ErrNoAvailableMoves) {
				log.Warn("player cannot move, ending in a draw", "player", player.Name, "error", err)

				return that.finish(ctx, session, entity.DrawOutcome()), nil
			}

			return entity.Outcome{}, err
		}

		session.UI.DisplayBoard()

		if outcome, over := decide(session.Board, player, opponent); over {
			return that.finish(ctx, session, outcome), nil
		}
	}
}

// playTurn re-prompts the same player until the board accepts a move.
func (that *GameManager) playTurn(ctx context.Context, session *Session, player *entity.Player) error {
	log := that.logger.With("method", "playTurn", "player", player.Name)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		move, err := session.UI.GetMove(player)
		if err != nil {
			return fmt.Errorf("failed to get move: %w", err)
		}

		if session.Board.UpdateBoard(move) {
			log.Debug("move applied", "move", move.String())

			return nil
		}

		log.Debug("move rejected", "move", move.String())
		session.UI.DisplayMessage(invalidMoveMessage)
	}
}

// decide checks the mover first, then the opponent, then a draw.
func decide(board tictactoe.Board, player, opponent *entity.Player) (entity.Outcome, bool) {
	switch {
	case board.IsWin(player):
		return entity.WinFor(player, opponent), true
	case board.IsLose(player):
		return entity.WinFor(opponent, player), true
	case board.IsWin(opponent):
		return entity.WinFor(opponent, player), true
	case board.IsLose(opponent):
		return entity.WinFor(player, opponent), true
	case board.IsDraw(player):
		return entity.DrawOutcome(), true
	default:
		return entity.Outcome{}, false
	}
}

func (that *GameManager) finish(ctx context.Context, session *Session, outcome entity.Outcome) entity.Outcome {
	session.UI.DisplayMessage(outcome.String())
	that.saveResult(ctx, session, outcome)

	return outcome
}

func (that *GameManager) saveResult(ctx context.Context, session *Session, outcome entity.Outcome) {
	log := that.logger.With("method", "saveResult")

	result := entity.NewResult(uuid.NewString(), session.Variant.String(), outcome, session.Board.MoveCount(), that.now())
	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)

		return
	}

	log.Info("result saved", "id", result.ID)
}
