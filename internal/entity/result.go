package entity

import (
	"fmt"
	"time"
)

// Outcome is how a finished game ended. Winner and Loser are nil for a draw.
type Outcome struct {
	Winner *Player
	Loser  *Player
	Draw   bool
}

func WinFor(winner, loser *Player) Outcome {
	return Outcome{Winner: winner, Loser: loser}
}

func DrawOutcome() Outcome {
	return Outcome{Draw: true}
}

func (that Outcome) String() string {
	if that.Draw || that.Winner == nil {
		return "Draw!"
	}

	return that.Winner.Name + " (" + that.Winner.Symbol.String() + ") wins!"
}

// Result is the stored record of a finished game.
type Result struct {
	ID           string    `json:"id"`
	Variant      string    `json:"variant"`
	WinnerName   string    `json:"winner_name,omitempty"`
	WinnerSymbol string    `json:"winner_symbol,omitempty"`
	Draw         bool      `json:"draw"`
	Moves        int       `json:"moves"`
	FinishedAt   time.Time `json:"finished_at"`
}

func NewResult(id, variant string, outcome Outcome, moves int, finishedAt time.Time) *Result {
	result := &Result{
		ID:         id,
		Variant:    variant,
		Draw:       outcome.Draw || outcome.Winner == nil,
		Moves:      moves,
		FinishedAt: finishedAt,
	}

	if !result.Draw {
		result.WinnerName = outcome.Winner.Name
		result.WinnerSymbol = outcome.Winner.Symbol.String()
	}

	return result
}

func (that *Result) Summary() string {
	if that.Draw {
		return fmt.Sprintf("%s: draw after %d moves", that.Variant, that.Moves)
	}

	return fmt.Sprintf("%s: %s (%s) won after %d moves", that.Variant, that.WinnerName, that.WinnerSymbol, that.Moves)
}
