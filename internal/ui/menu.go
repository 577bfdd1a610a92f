package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

const (
	optionExit    = 0
	optionResults = 15
)

type gameUseCase interface {
	Play(ctx context.Context, variant tictactoe.Variant) (entity.Outcome, error)
	RecentResults(ctx context.Context) ([]*entity.Result, error)
}

// Menu is the numbered main menu. It loops until the exit option or the end of input.
type Menu struct {
	logger  *slog.Logger
	console *Console
	games   gameUseCase
}

func NewMenu(logger *slog.Logger, console *Console, games gameUseCase) *Menu {
	return &Menu{
		logger:  logger.With("component", "menu"),
		console: console,
		games:   games,
	}
}

func (that *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("menu stopped: %w", err)
		}

		that.show()

		line, err := that.console.ReadLine("Choose an option: ")
		if errors.Is(err, apperror.ErrInputClosed) {
			that.logger.Info("input closed")

			return nil
		}
		if err != nil {
			return err
		}

		option, err := strconv.Atoi(line)
		if err != nil {
			that.console.Println("Invalid choice, enter one of the numbers above.")
			continue
		}

		switch variant := tictactoe.Variant(option); {
		case option == optionExit:
			that.console.Println("Goodbye!")

			return nil
		case option == optionResults:
			that.showResults(ctx)
		case variant.Valid():
			if err = that.play(ctx, variant); err != nil {
				if errors.Is(err, apperror.ErrInputClosed) {
					that.logger.Info("input closed during a game")

					return nil
				}

				return err
			}
		default:
			that.console.Println("Invalid choice, enter one of the numbers above.")
		}
	}
}

func (that *Menu) show() {
	var sb strings.Builder

	sb.WriteString("\n=== Tic-Tac-Toe Hub ===\n")
	for _, variant := range tictactoe.Variants() {
		fmt.Fprintf(&sb, "%2d. %s\n", int(variant), variant)
	}
	fmt.Fprintf(&sb, "%2d. Recent results\n", optionResults)
	fmt.Fprintf(&sb, "%2d. Exit\n", optionExit)

	that.console.Printf("%s", sb.String())
}

// play runs one session. Only a closed input or a cancelled context stop the menu.
func (that *Menu) play(ctx context.Context, variant tictactoe.Variant) error {
	log := that.logger.With("method", "play", "variant", variant.String())

	outcome, err := that.games.Play(ctx, variant)
	if err != nil {
		if errors.Is(err, apperror.ErrInputClosed) || ctx.Err() != nil {
			return err
		}

		log.Error("game failed", "error", err)
		that.console.Printf("Could not play %s: %v\n", variant, err)

		return nil
	}

	log.Info("game finished", "outcome", outcome.String())

	return nil
}

func (that *Menu) showResults(ctx context.Context) {
	results, err := that.games.RecentResults(ctx)
	if err != nil {
		that.logger.Error("failed to list results", "error", err)
		that.console.Println("Results are not available right now.")

		return
	}

	if len(results) == 0 {
		that.console.Println("No games played yet.")

		return
	}

	that.console.Println("Recent results:")
	for _, result := range results {
		that.console.Printf("  %s  %s\n", result.FinishedAt.Format("2006-01-02 15:04"), result.Summary())
	}
}
