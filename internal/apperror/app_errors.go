package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInputClosed      = errors.New("input is closed")
)
