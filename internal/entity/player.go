package entity

type PlayerType int

const (
	Human PlayerType = iota
	Computer
)

func (t PlayerType) String() string {
	if t == Computer {
		return "computer"
	}

	return "human"
}

// BoardView is the read-only part of a board that players and renderers need.
type BoardView interface {
	Rows() int
	Cols() int
	Cell(row, col int) Cell
	MoveCount() int
}

type Player struct {
	Name   string     `json:"name"`
	Symbol Cell       `json:"symbol"`
	Type   PlayerType `json:"type"`
	Board  BoardView  `json:"-"`
}

func NewPlayer(name string, symbol Cell, playerType PlayerType) *Player {
	return &Player{
		Name:   name,
		Symbol: symbol,
		Type:   playerType,
	}
}

func (that *Player) IsComputer() bool {
	return that.Type == Computer
}

// Bind attaches the player to the board it plays on.
func (that *Player) Bind(board BoardView) {
	that.Board = board
}
