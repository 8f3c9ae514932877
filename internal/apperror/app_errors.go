package apperror

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell position")
	ErrInvalidMark   = errors.New("invalid mark")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrRoundOver     = errors.New("round is already over")
	ErrRoundNotOver  = errors.New("round is not over yet")
	ErrMatchNotFound = errors.New("match not found")
	ErrInputClosed   = errors.New("input closed")
)
