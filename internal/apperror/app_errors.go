package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidMark   = errors.New("invalid mark")
	ErrTerminalBoard = errors.New("board has no moves left")
	ErrNotFound      = errors.New("not found")
	ErrInvalidBoard  = errors.New("board is not reachable by alternating play")
)
