package tictactoe

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/random"
)

const (
	obstaclesSize    = 6
	obstaclesRun     = 4
	obstaclesPerMove = 2
)

// Obstacles is a 6x6 board where every placement is followed by two random
// empty cells turning into permanent obstacles. Four in a row through the last
// placed cell wins.
type Obstacles struct {
	grid
	rnd       random.Source
	available []coord
	history   []coord
}

func NewObstacles(rnd random.Source) *Obstacles {
	that := &Obstacles{
		grid: newGrid(obstaclesSize, obstaclesSize),
		rnd:  rnd,
	}
	that.available = that.emptyCells()

	return that
}

func (that *Obstacles) UpdateBoard(move entity.Move) bool {
	target := coord{move.Row, move.Col}

	if move.IsUndo() {
		if !that.undo(move) {
			return false
		}
		that.history = slices.DeleteFunc(that.history, func(c coord) bool { return c == target })
		that.available = append(that.available, target)

		return true
	}

	if !that.place(move) {
		return false
	}
	that.history = append(that.history, target)
	that.release(target)

	for range obstaclesPerMove {
		if len(that.available) == 0 {
			break
		}

		picked := that.available[that.rnd.IntN(len(that.available))]
		that.set(picked, entity.Obstacle)
		that.release(picked)
	}

	return true
}

func (that *Obstacles) release(c coord) {
	that.available = slices.DeleteFunc(that.available, func(a coord) bool { return a == c })
}

// Available is the number of cells that can still take a mark or an obstacle.
func (that *Obstacles) Available() int {
	return len(that.available)
}

func (that *Obstacles) IsWin(player *entity.Player) bool {
	if len(that.history) == 0 {
		return false
	}

	last := that.history[len(that.history)-1]
	if that.at(last) != player.Symbol {
		return false
	}

	for _, step := range steps {
		if runThrough(that.at, last, step, player.Symbol) >= obstaclesRun {
			return true
		}
	}

	return false
}

func (that *Obstacles) IsLose(*entity.Player) bool {
	return false
}

func (that *Obstacles) IsDraw(player *entity.Player) bool {
	return that.full() && !that.IsWin(player)
}

func (that *Obstacles) GameIsOver(player *entity.Player) bool {
	return gameIsOver(that, player)
}

func (that *Obstacles) LegalMoves(player *entity.Player) []entity.Move {
	return that.placements(player.Symbol)
}
