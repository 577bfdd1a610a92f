package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-hub/internal/config"
	"github.com/rocketscienceinc/tictactoe-hub/internal/random"
	"github.com/rocketscienceinc/tictactoe-hub/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hub/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hub/internal/service"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-hub/internal/ui"
	"github.com/rocketscienceinc/tictactoe-hub/internal/usecase"
)

// RunApp - runs the application on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	resultRepo, closeRepo, err := newResultRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close result storage", "error", err)
		}
	}()

	rnd := random.New(conf.Seed)
	botService := service.NewBotService(rnd)
	console := ui.NewConsole(in, out)

	newBoard := func(variant tictactoe.Variant) (tictactoe.Board, error) {
		return tictactoe.New(variant, tictactoe.Dependencies{
			Random:         rnd,
			DictionaryPath: conf.DictionaryPath,
		})
	}
	newUI := func(variant tictactoe.Variant, board tictactoe.Board) usecase.GameUI {
		return ui.New(variant, board, console, botService)
	}

	gameManager := usecase.NewGameManager(logger, resultRepo)
	gameUseCase := usecase.NewGameUseCase(newBoard, newUI, gameManager, resultRepo, conf.Results.History)
	menu := ui.NewMenu(logger, console, gameUseCase)

	// run the menu
	menuErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting menu", "seed", conf.Seed, "results", conf.Results.Enabled)
		menuErrCh <- menu.Run(ctx)
	}()

	select {
	case err = <-menuErrCh:
		if err != nil {
			return fmt.Errorf("menu error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newResultRepository keeps results in Redis when enabled, in memory otherwise.
func newResultRepository(ctx context.Context, conf *config.Config) (repository.ResultRepository, func() error, error) {
	if !conf.Results.Enabled {
		return repository.NewMemoryResultRepository(conf.Results.History), func() error { return nil }, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.Host, conf.Redis.Port)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewResultRepository(redisStorage.Connection, conf.Results.History), redisStorage.Close, nil
}
