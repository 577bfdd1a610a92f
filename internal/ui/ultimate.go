package ui

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

const subBoardSize = 3

type ultimateUI struct {
	base
	ultimate *tictactoe.Ultimate
}

// DisplayBoard draws the 9x9 grid split into its sub-boards, then the winners grid.
func (that *ultimateUI) DisplayBoard() {
	var sb strings.Builder
	size := that.ultimate.Rows()

	sb.WriteString("  ")
	for c := range size {
		if c > 0 && c%subBoardSize == 0 {
			sb.WriteString(" |")
		}
		fmt.Fprintf(&sb, " %d", c)
	}
	sb.WriteByte('\n')

	for r := range size {
		if r > 0 && r%subBoardSize == 0 {
			sb.WriteString("   ------+-------+------\n")
		}

		fmt.Fprintf(&sb, "%d ", r)
		for c := range size {
			if c > 0 && c%subBoardSize == 0 {
				sb.WriteString(" |")
			}
			fmt.Fprintf(&sb, " %s", that.ultimate.Cell(r, c))
		}
		sb.WriteByte('\n')
	}

	that.console.Printf("%s", sb.String())
	that.console.Println("Sub-boards:")
	that.console.DrawGrid(subBoardSize, subBoardSize, func(row, col int) string {
		return that.ultimate.Winner(row, col).String()
	})
}
