package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	cellSeparator = " | "
	rowDivider    = "\n---------\n"
)

type Renderer struct {
	out     io.Writer
	palette Palette
}

func New(out io.Writer, palette Palette) *Renderer {
	return &Renderer{
		out:     out,
		palette: palette,
	}
}

// DisplayBoard writes the board preceded by a blank line.
func (that *Renderer) DisplayBoard(board entity.Board) {
	fmt.Fprintln(that.out, "\n"+FormatBoard(board, that.palette))
}

// AnnounceOutcome prints the final result of a finished game.
func (that *Renderer) AnnounceOutcome(outcome entity.Outcome) {
	if outcome == entity.OutcomeDraw {
		fmt.Fprintln(that.out, that.palette.Tie("It's a tie!"))
		return
	}

	fmt.Fprintf(that.out, "Player %s %s\n", that.palette.Mark(outcome.Winner()), that.palette.Win("wins!"))
}

func FormatBoard(board entity.Board, palette Palette) string {
	rows := make([]string, 0, entity.BoardSize)
	for _, row := range board {
		cells := make([]string, 0, entity.BoardSize)
		for _, cell := range row {
			cells = append(cells, palette.Mark(cell))
		}
		rows = append(rows, strings.Join(cells, cellSeparator))
	}

	return strings.Join(rows, rowDivider)
}
