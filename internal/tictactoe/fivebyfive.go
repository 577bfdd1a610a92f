package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const (
	fiveByFiveSize  = 5
	fiveByFiveFinal = 24
	fiveByFiveRun   = 3
)

// FiveByFive is scored when 24 cells are filled: every maximal run of three
// or more equal marks adds its length minus two to its symbol's tally.
type FiveByFive struct {
	grid
	tallies map[entity.Cell]int
}

func NewFiveByFive() *FiveByFive {
	return &FiveByFive{grid: newGrid(fiveByFiveSize, fiveByFiveSize)}
}

func (that *FiveByFive) UpdateBoard(move entity.Move) bool {
	if move.IsUndo() {
		if !that.undo(move) {
			return false
		}
		that.tallies = nil

		return true
	}

	return that.place(move)
}

// Tally scans the grid for symbol's runs regardless of the move count.
func (that *FiveByFive) Tally(symbol entity.Cell) int {
	total := 0
	for r := range that.cells {
		for c := range that.cells[r] {
			origin := coord{r, c}
			if that.at(origin) != symbol {
				continue
			}

			for _, step := range steps {
				// count each run once, from its first cell
				if that.at(coord{r - step.row, c - step.col}) == symbol {
					continue
				}

				length := 0
				for next := origin; that.at(next) == symbol; next = (coord{next.row + step.row, next.col + step.col}) {
					length++
				}

				if length >= fiveByFiveRun {
					total += length - (fiveByFiveRun - 1)
				}
			}
		}
	}

	return total
}

func (that *FiveByFive) final() (map[entity.Cell]int, bool) {
	if that.moves < fiveByFiveFinal {
		return nil, false
	}

	if that.tallies == nil {
		that.tallies = map[entity.Cell]int{
			entity.SymbolX: that.Tally(entity.SymbolX),
			entity.SymbolO: that.Tally(entity.SymbolO),
		}
	}

	return that.tallies, true
}

func (that *FiveByFive) compare(player *entity.Player) (int, bool) {
	tallies, ok := that.final()
	if !ok {
		return 0, false
	}

	return tallies[player.Symbol] - tallies[opponentOf(player.Symbol, entity.SymbolX, entity.SymbolO)], true
}

func (that *FiveByFive) IsWin(player *entity.Player) bool {
	diff, ok := that.compare(player)

	return ok && diff > 0
}

func (that *FiveByFive) IsLose(player *entity.Player) bool {
	diff, ok := that.compare(player)

	return ok && diff < 0
}

func (that *FiveByFive) IsDraw(player *entity.Player) bool {
	diff, ok := that.compare(player)

	return ok && diff == 0
}

func (that *FiveByFive) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *FiveByFive) LegalMoves(player *entity.Player) []entity.Move {
	return that.placements(player.Symbol)
}
