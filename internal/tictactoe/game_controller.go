package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// WinLines lists every row, column and diagonal of the board.
var WinLines = [][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// IsGameOver reports whether the board has a winning line or no empty cell left.
func IsGameOver(board entity.Board) bool {
	if !WinningMark(board).IsEmpty() {
		return true
	}

	return board.IsFull()
}

// WinningMark returns the mark occupying a complete line, or entity.EmptyCell.
func WinningMark(board entity.Board) entity.Mark {
	for _, line := range WinLines {
		a := board.Cell(line[0].Row, line[0].Col)
		b := board.Cell(line[1].Row, line[1].Col)
		c := board.Cell(line[2].Row, line[2].Col)
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

// DetermineOutcome credits a win to the player who moved last (turn-1).
// A full board that also holds a winning line is reported as a win.
func DetermineOutcome(board entity.Board, turn int) entity.Outcome {
	if !WinningMark(board).IsEmpty() {
		return entity.OutcomeFor(entity.MarkForTurn(turn - 1))
	}

	if board.IsFull() {
		return entity.OutcomeDraw
	}

	return entity.OutcomeNone
}

// MakeTurn places the current player's mark and advances the turn.
func MakeTurn(game *entity.Game, move entity.Move) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board.SetCell(move.Row, move.Col, game.CurrentMark())
	game.Turn++
	updateGameStatus(game)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, move entity.Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if !game.Board.IsEmpty(move.Row, move.Col) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game) {
	if !IsGameOver(game.Board) {
		return
	}

	game.Status = entity.StatusFinished
	if !WinningMark(game.Board).IsEmpty() {
		game.Winner = game.LastMark()
	}
}
