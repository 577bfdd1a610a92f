package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-hub/mocks/usecase"
)

var errSetupFailed = errors.New("setup failed")

func boardFactory(board tictactoe.Board, err error) BoardFactory {
	return func(tictactoe.Variant) (tictactoe.Board, error) {
		return board, err
	}
}

func uiFactory(ui GameUI) UIFactory {
	return func(tictactoe.Variant, tictactoe.Board) GameUI {
		return ui
	}
}

func TestGameUseCase_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays a full game on a fresh board", func(t *testing.T) {
		// Given: a scripted UI where alice wins down the first column
		mockResultRepo := mockedUseCase.NewMockresultRepo(t)
		board := tictactoe.NewStandard()
		ui := newScriptedUI(entity.SymbolX, entity.SymbolO,
			mv(0, 0, 'X'), mv(0, 1, 'O'), mv(1, 0, 'X'), mv(1, 1, 'O'), mv(2, 0, 'X'))
		gameUseCase := NewGameUseCase(boardFactory(board, nil), uiFactory(ui),
			NewGameManager(discardLogger(), mockResultRepo), mockResultRepo, 10)

		mockResultRepo.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("*entity.Result")).
			Return(nil).
			Once()

		// When
		outcome, err := gameUseCase.Play(ctx, tictactoe.VariantStandard)

		// Then: the title is shown, the players are bound and alice wins
		require.NoError(t, err)
		assert.Equal(t, "alice", outcome.Winner.Name)
		assert.Equal(t, "=== scripted ===", ui.messages[0])
		assert.Same(t, board, ui.players[0].Board)
	})

	t.Run("Returns error when the board cannot be built", func(t *testing.T) {
		mockResultRepo := mockedUseCase.NewMockresultRepo(t)
		gameUseCase := NewGameUseCase(boardFactory(nil, apperror.ErrDictionaryNotFound), uiFactory(nil),
			NewGameManager(discardLogger(), mockResultRepo), mockResultRepo, 10)

		_, err := gameUseCase.Play(ctx, tictactoe.VariantWord)

		require.ErrorIs(t, err, apperror.ErrDictionaryNotFound)
	})

	t.Run("Returns error when player setup fails", func(t *testing.T) {
		mockResultRepo := mockedUseCase.NewMockresultRepo(t)
		ui := newScriptedUI(entity.SymbolX, entity.SymbolO)
		ui.setupErr = errSetupFailed
		gameUseCase := NewGameUseCase(boardFactory(tictactoe.NewStandard(), nil), uiFactory(ui),
			NewGameManager(discardLogger(), mockResultRepo), mockResultRepo, 10)

		_, err := gameUseCase.Play(ctx, tictactoe.VariantStandard)

		require.ErrorIs(t, err, errSetupFailed)
	})
}

func TestGameUseCase_RecentResults(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists up to the configured history", func(t *testing.T) {
		// Given
		mockResultRepo := mockedUseCase.NewMockresultRepo(t)
		gameUseCase := NewGameUseCase(nil, nil, nil, mockResultRepo, 5)
		stored := []*entity.Result{
			entity.NewResult("r1", "SUS", entity.DrawOutcome(), 9, time.Now()),
		}

		mockResultRepo.EXPECT().
			ListRecent(mock.Anything, 5).
			Return(stored, nil).
			Once()

		// When
		results, err := gameUseCase.RecentResults(ctx)

		// Then
		require.NoError(t, err)
		assert.Equal(t, stored, results)
	})

	t.Run("Returns error if the store fails", func(t *testing.T) {
		mockResultRepo := mockedUseCase.NewMockresultRepo(t)
		gameUseCase := NewGameUseCase(nil, nil, nil, mockResultRepo, 5)

		mockResultRepo.EXPECT().
			ListRecent(mock.Anything, 5).
			Return(nil, errStorageIsDown).
			Once()

		_, err := gameUseCase.RecentResults(ctx)

		require.ErrorIs(t, err, errStorageIsDown)
	})
}
