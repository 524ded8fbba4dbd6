package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/render"
)

const invalidMoveMessage = "Invalid move! Please enter row and column numbers between 1 and 3 for an empty cell."

type line struct {
	text string
	err  error
}

// Handler collects moves from a line-oriented input source.
// A single goroutine owns the reader; a line read after a cancelled call is kept for the next one.
type Handler struct {
	logger  *slog.Logger
	reader  *bufio.Reader
	out     io.Writer
	palette render.Palette

	start   sync.Once
	lines   chan line
	readErr error
}

func NewHandler(logger *slog.Logger, in io.Reader, out io.Writer, palette render.Palette) *Handler {
	return &Handler{
		logger:  logger.With("component", "input"),
		reader:  bufio.NewReader(in),
		out:     out,
		palette: palette,
		lines:   make(chan line),
	}
}

// GetPlayerMove prompts the player whose turn it is until a valid move is entered.
// It fails only when the input source ends or ctx is done.
func (that *Handler) GetPlayerMove(ctx context.Context, board entity.Board, turn int) (entity.Move, error) {
	mark := entity.MarkForTurn(turn)

	for {
		fmt.Fprintf(that.out, "Player %s, enter your move (row, column): ", that.palette.Mark(mark))

		text, err := that.readLine(ctx)
		if err != nil {
			return entity.Move{}, err
		}

		move, err := ParseMove(text)
		if err == nil {
			err = ValidateMove(board, move)
		}

		if err != nil {
			that.logger.Debug("rejected move", "player", mark, "input", text, "error", err)
			fmt.Fprintln(that.out, that.palette.Error(invalidMoveMessage))
			continue
		}

		return move, nil
	}
}

// ParseMove converts "row, col" with 1-indexed values into a zero-indexed move.
func ParseMove(text string) (entity.Move, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrMalformedMove, text)
	}

	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row: %w", apperror.ErrMalformedMove, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column: %w", apperror.ErrMalformedMove, err)
	}

	return entity.Move{Row: row - 1, Col: col - 1}, nil
}

// ValidateMove checks bounds and occupancy of the target cell.
func ValidateMove(board entity.Board, move entity.Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfRange, move)
	}

	if !board.IsEmpty(move.Row, move.Col) {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return nil
}

// readLine waits for the next line or for ctx to be done.
func (that *Handler) readLine(ctx context.Context) (string, error) {
	if that.readErr != nil {
		return "", that.readErr
	}

	that.start.Do(func() { go that.readLines() })

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for move: %w", ctx.Err())
	case l := <-that.lines:
		switch {
		case errors.Is(l.err, io.EOF):
			that.readErr = fmt.Errorf("%w: %w", apperror.ErrInputClosed, l.err)
		case l.err != nil:
			that.readErr = fmt.Errorf("failed to read move: %w", l.err)
		default:
			return l.text, nil
		}
		return "", that.readErr
	}
}

// readLines feeds lines of any length until the reader fails.
func (that *Handler) readLines() {
	for {
		text, err := that.reader.ReadString('\n')
		if text != "" {
			that.lines <- line{text: strings.TrimRight(text, "\r\n")}
		}
		if err != nil {
			that.lines <- line{err: err}
			return
		}
	}
}
