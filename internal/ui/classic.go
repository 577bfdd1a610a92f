package ui

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

type infinityUI struct {
	base
	infinity *tictactoe.Infinity
}

func (that *infinityUI) DisplayBoard() {
	that.drawGrid()

	if row, col, ok := that.infinity.Oldest(); ok {
		that.console.Printf("Oldest mark: %d %d\n", row, col)
	}
}

type fiveByFiveUI struct {
	base
	fiveByFive *tictactoe.FiveByFive
}

func (that *fiveByFiveUI) DisplayBoard() {
	that.drawGrid()
	that.console.Printf("Runs so far: X %d, O %d\n",
		that.fiveByFive.Tally(entity.SymbolX), that.fiveByFive.Tally(entity.SymbolO))
}

type susUI struct {
	base
	sus *tictactoe.SUS
}

func (that *susUI) DisplayBoard() {
	that.drawGrid()
	that.console.Printf("Score: S %d, U %d\n", that.sus.Score(entity.SymbolS), that.sus.Score(entity.SymbolU))
}

type inverseUI struct {
	base
	inverse *tictactoe.Inverse
}

// GetMove asks for confirmation before a human completes their own line.
func (that *inverseUI) GetMove(player *entity.Player) (entity.Move, error) {
	if player.IsComputer() {
		return that.computerMove(player)
	}

	for {
		values, err := that.console.ReadInts(that.prompt(player, "enter row and column: "), 2)
		if err != nil {
			return entity.Move{}, err
		}

		row, col := values[0], values[1]
		if that.inverse.WouldLose(player, row, col) {
			confirmed, err := that.console.Confirm("That completes your own line and loses the game. Play it anyway? (y/n): ")
			if err != nil {
				return entity.Move{}, err
			}
			if !confirmed {
				continue
			}
		}

		return entity.NewMove(row, col, player.Symbol), nil
	}
}
