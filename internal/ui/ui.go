// Package ui renders boards on a console and turns typed lines into moves.
package ui

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hub/internal/service"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

// UI is the per-variant front end a game session talks to.
type UI interface {
	Title() string
	SetupPlayers() ([2]*entity.Player, error)
	GetMove(player *entity.Player) (entity.Move, error)
	DisplayBoard()
	DisplayMessage(message string)
}

// New returns the UI matching the board's variant.
func New(variant tictactoe.Variant, board tictactoe.Board, console *Console, bot service.BotService) UI {
	b := base{
		console: console,
		bot:     bot,
		board:   board,
		variant: variant,
	}

	switch board := board.(type) {
	case *tictactoe.Memory:
		b.cellText = hideMarks

		return &b
	case *tictactoe.Infinity:
		return &infinityUI{base: b, infinity: board}
	case *tictactoe.FiveByFive:
		return &fiveByFiveUI{base: b, fiveByFive: board}
	case *tictactoe.Inverse:
		return &inverseUI{base: b, inverse: board}
	case *tictactoe.Numerical:
		return &numericalUI{base: b, numerical: board}
	case *tictactoe.Word:
		return &wordUI{base: b}
	case *tictactoe.SUS:
		return &susUI{base: b, sus: board}
	case *tictactoe.FourByFour:
		return &fourByFourUI{base: b}
	case *tictactoe.Connect4:
		return &connect4UI{base: b, connect4: board}
	case *tictactoe.Ultimate:
		return &ultimateUI{base: b, ultimate: board}
	default:
		return &b
	}
}

// base is the coordinate-entry UI. Variants with extra input or output embed it.
type base struct {
	console  *Console
	bot      service.BotService
	board    tictactoe.Board
	variant  tictactoe.Variant
	cellText func(cell entity.Cell) string
}

func (that *base) Title() string {
	return that.variant.String()
}

func (that *base) DisplayMessage(message string) {
	that.console.Println(message)
}

func (that *base) DisplayBoard() {
	that.drawGrid()
}

func (that *base) drawGrid() {
	that.console.DrawGrid(that.board.Rows(), that.board.Cols(), that.text)
}

func (that *base) text(row, col int) string {
	cell := that.board.Cell(row, col)
	if that.cellText != nil {
		return that.cellText(cell)
	}

	return cell.String()
}

func (that *base) SetupPlayers() ([2]*entity.Player, error) {
	var players [2]*entity.Player

	for i, symbol := range that.variant.Symbols() {
		number := i + 1

		name, err := that.console.ReadLine(fmt.Sprintf("Player %d (%s) name: ", number, symbol))
		if err != nil {
			return players, err
		}
		if name == "" {
			name = fmt.Sprintf("Player %d", number)
		}

		playerType, err := that.askType(number)
		if err != nil {
			return players, err
		}

		players[i] = entity.NewPlayer(name, symbol, playerType)
		players[i].Bind(that.board)
	}

	return players, nil
}

func (that *base) askType(number int) (entity.PlayerType, error) {
	for {
		answer, err := that.console.ReadLine(fmt.Sprintf("Player %d type, (h)uman or (c)omputer: ", number))
		if err != nil {
			return entity.Human, err
		}

		switch strings.ToLower(answer) {
		case "h", "human":
			return entity.Human, nil
		case "c", "computer":
			return entity.Computer, nil
		default:
			that.console.Println("Please answer h or c.")
		}
	}
}

func (that *base) GetMove(player *entity.Player) (entity.Move, error) {
	if player.IsComputer() {
		return that.computerMove(player)
	}

	values, err := that.console.ReadInts(that.prompt(player, "enter row and column: "), 2)
	if err != nil {
		return entity.Move{}, err
	}

	return entity.NewMove(values[0], values[1], player.Symbol), nil
}

func (that *base) prompt(player *entity.Player, question string) string {
	return fmt.Sprintf("%s (%s), %s", player.Name, player.Symbol, question)
}

func (that *base) computerMove(player *entity.Player) (entity.Move, error) {
	move, err := that.bot.ChooseMove(that.board, player)
	if err != nil {
		return entity.Move{}, fmt.Errorf("%s has no move: %w", player.Name, err)
	}

	that.console.Printf("%s plays %s at %d %d\n", player.Name, move.Symbol, move.Row, move.Col)

	return move, nil
}

func hideMarks(cell entity.Cell) string {
	if cell.IsMark() {
		return string(entity.Obstacle)
	}

	return cell.String()
}
