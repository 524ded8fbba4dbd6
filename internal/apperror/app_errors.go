package apperror

import "errors"

// invalid move input, recovered by re-prompting the same player.
var (
	ErrMalformedMove = errors.New("move must be two comma-separated numbers")
	ErrOutOfRange    = errors.New("row and column must be between 1 and 3")
	ErrCellOccupied  = errors.New("cell is already occupied")
)

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInputClosed  = errors.New("input closed before the game ended")
)
