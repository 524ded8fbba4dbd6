package entity

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// BoardSize is the side length of the grid.
const BoardSize = 3

type Board [BoardSize][BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

func (that *Board) Cell(row, col int) Mark {
	return that[row][col]
}

// SetCell writes the mark in place without any validation.
func (that *Board) SetCell(row, col int, mark Mark) {
	that[row][col] = mark
}

func (that *Board) IsEmpty(row, col int) bool {
	return that[row][col] == EmptyCell
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Move is a zero-indexed board coordinate.
type Move struct {
	Row int
	Col int
}

// String renders the move the way players type it.
func (that Move) String() string {
	return fmt.Sprintf("%d, %d", that.Row+1, that.Col+1)
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeXWins:
		return "x wins"
	case OutcomeOWins:
		return "o wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// Winner returns the winning mark, or EmptyCell for a draw or an unfinished game.
func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeXWins:
		return PlayerX
	case OutcomeOWins:
		return PlayerO
	default:
		return EmptyCell
	}
}

func OutcomeFor(winner Mark) Outcome {
	switch winner {
	case PlayerX:
		return OutcomeXWins
	case PlayerO:
		return OutcomeOWins
	default:
		return OutcomeNone
	}
}

type Game struct {
	ID     string
	Board  Board
	Turn   int
	Status string
	Winner Mark
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Status: StatusOngoing,
	}
}

// NewGameWithRandomID creates a game identified by a fresh UUID.
func NewGameWithRandomID() *Game {
	return NewGame(uuid.NewString())
}

func (that *Game) CurrentMark() Mark {
	return MarkForTurn(that.Turn)
}

// LastMark is the mark of the player who made the latest move. Turn must be positive.
func (that *Game) LastMark() Mark {
	return MarkForTurn(that.Turn - 1)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}
