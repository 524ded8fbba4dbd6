package input

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(input string) (*Handler, *bytes.Buffer) {
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewHandler(logger, strings.NewReader(input), &out, render.NewPalette(false)), &out
}

func TestParseMove(t *testing.T) {
	t.Run("Valid move with spaces", func(t *testing.T) {
		// When: parsing a 1-indexed move
		move, err := ParseMove("2, 3")

		// Then: the move should be zero-indexed
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})

	t.Run("Valid move without spaces", func(t *testing.T) {
		move, err := ParseMove("1,1")

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Non-numeric", func(t *testing.T) {
		_, err := ParseMove("a, b")

		assert.ErrorIs(t, err, apperror.ErrMalformedMove)
	})

	t.Run("Missing column", func(t *testing.T) {
		_, err := ParseMove("2")

		assert.ErrorIs(t, err, apperror.ErrMalformedMove)
	})

	t.Run("Too many values", func(t *testing.T) {
		_, err := ParseMove("1,2,3")

		assert.ErrorIs(t, err, apperror.ErrMalformedMove)
	})

	t.Run("Out of range values still parse", func(t *testing.T) {
		// When: parsing numbers outside the board
		move, err := ParseMove("4,1")

		// Then: parsing succeeds and bounds are left to validation
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 3, Col: 0}, move)
	})
}

func TestValidateMove(t *testing.T) {
	t.Run("Empty cell in range", func(t *testing.T) {
		assert.NoError(t, ValidateMove(entity.NewBoard(), entity.Move{Row: 2, Col: 2}))
	})

	t.Run("Out of range", func(t *testing.T) {
		assert.ErrorIs(t, ValidateMove(entity.NewBoard(), entity.Move{Row: 3, Col: 0}), apperror.ErrOutOfRange)
		assert.ErrorIs(t, ValidateMove(entity.NewBoard(), entity.Move{Row: 0, Col: -1}), apperror.ErrOutOfRange)
	})

	t.Run("Occupied cell", func(t *testing.T) {
		// Given: a board with X in the center
		board := entity.NewBoard()
		board.SetCell(1, 1, entity.PlayerX)

		// Then: the center should be rejected
		assert.ErrorIs(t, ValidateMove(board, entity.Move{Row: 1, Col: 1}), apperror.ErrCellOccupied)
	})
}

func TestHandler_GetPlayerMove(t *testing.T) {
	t.Run("Valid move on first try", func(t *testing.T) {
		// Given: a handler fed a single valid line
		handler, out := newTestHandler("1,1\n")

		// When: asking X for a move
		move, err := handler.GetPlayerMove(context.Background(), entity.NewBoard(), 0)

		// Then: the move should be returned after a single prompt
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
		assert.Equal(t, "Player X, enter your move (row, column): ", out.String())
	})

	t.Run("Prompts O on odd turns", func(t *testing.T) {
		handler, out := newTestHandler("3, 3\n")

		_, err := handler.GetPlayerMove(context.Background(), entity.NewBoard(), 1)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Player O, enter your move")
	})

	t.Run("Re-prompts until input is valid", func(t *testing.T) {
		// Given: out of range, non-numeric and occupied targets before a valid one
		board := entity.NewBoard()
		board.SetCell(0, 0, entity.PlayerX)
		handler, out := newTestHandler("4,1\nfoo\n1,1\n2,2\n")

		// When: asking O for a move
		move, err := handler.GetPlayerMove(context.Background(), board, 1)

		// Then: three rejections and four prompts should precede the accepted move
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
		assert.Equal(t, 3, strings.Count(out.String(), invalidMoveMessage))
		assert.Equal(t, 4, strings.Count(out.String(), "enter your move"))
	})

	t.Run("Invalid input never mutates the board", func(t *testing.T) {
		// Given: an empty board and an out of range move followed by end of input
		board := entity.NewBoard()
		handler, out := newTestHandler("4,1\n")

		// When: asking X for a move
		_, err := handler.GetPlayerMove(context.Background(), board, 0)

		// Then: the move is rejected, the player re-prompted, the board unchanged
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Equal(t, 1, strings.Count(out.String(), invalidMoveMessage))
		assert.Equal(t, 2, strings.Count(out.String(), "enter your move"))
		assert.Equal(t, entity.NewBoard(), board)
	})

	t.Run("End of input", func(t *testing.T) {
		handler, _ := newTestHandler("")

		_, err := handler.GetPlayerMove(context.Background(), entity.NewBoard(), 0)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		// Given: a reader that never delivers a line
		pr, pw := io.Pipe()
		t.Cleanup(func() { _ = pw.Close() })

		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		handler := NewHandler(logger, pr, io.Discard, render.NewPalette(false))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: asking for a move with a done context
		_, err := handler.GetPlayerMove(ctx, entity.NewBoard(), 0)

		// Then: the context error should be returned
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestHandler_LongAndUnusualLines(t *testing.T) {
	t.Run("Line longer than the scanner default is re-prompted", func(t *testing.T) {
		// Given: a 70 000 character line followed by a valid move
		handler, out := newTestHandler(strings.Repeat("9", 70000) + "\n1,1\n")

		// When: asking X for a move
		move, err := handler.GetPlayerMove(context.Background(), entity.NewBoard(), 0)

		// Then: the long line is rejected once and the next line is accepted
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
		assert.Equal(t, 1, strings.Count(out.String(), invalidMoveMessage))
		assert.Equal(t, 2, strings.Count(out.String(), "enter your move"))
	})

	t.Run("Windows line endings", func(t *testing.T) {
		handler, _ := newTestHandler("2,3\r\n")

		move, err := handler.GetPlayerMove(context.Background(), entity.NewBoard(), 0)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})

	t.Run("Last line without a newline", func(t *testing.T) {
		handler, _ := newTestHandler("3,1")

		move, err := handler.GetPlayerMove(context.Background(), entity.NewBoard(), 0)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)
	})

	t.Run("End of input is sticky", func(t *testing.T) {
		// Given: a handler whose input already ended
		handler, _ := newTestHandler("")
		_, err := handler.GetPlayerMove(context.Background(), entity.NewBoard(), 0)
		require.ErrorIs(t, err, apperror.ErrInputClosed)

		// When: asking again
		_, err = handler.GetPlayerMove(context.Background(), entity.NewBoard(), 1)

		// Then: the same error should be returned without blocking
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestHandler_ReuseAfterCancel(t *testing.T) {
	// Given: a handler over a pipe and a call cancelled before any input
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	handler := NewHandler(logger, pr, io.Discard, render.NewPalette(false))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := handler.GetPlayerMove(ctx, entity.NewBoard(), 0)
	require.ErrorIs(t, err, context.Canceled)

	// When: a line arrives and the handler is asked again
	go func() { _, _ = pw.Write([]byte("2,2\n")) }()

	move, err := handler.GetPlayerMove(context.Background(), entity.NewBoard(), 0)

	// Then: the line read by the original goroutine should be delivered
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
}
