package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrCellOccupied     = fmt.Errorf("%w: not an empty position", ErrInvalidMove)
	ErrGameIsNotStarted = fmt.Errorf("%w: game is not started", ErrInvalidMove)
	ErrGameFinished     = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
	ErrEmptyMark        = errors.New("players can't set positions to empty")
)

// MoveError is a rejected move together with the board of moves that are still valid.
type MoveError struct {
	Err        error
	ValidMoves string
}

func (that *MoveError) Error() string {
	if that.ValidMoves == "" {
		return that.Err.Error()
	}

	return fmt.Sprintf("%s, valid moves:\n%s", that.Err, that.ValidMoves)
}

func (that *MoveError) Unwrap() error {
	return that.Err
}
