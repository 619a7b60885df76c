package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveError(t *testing.T) {
	t.Run("Unwraps to the invalid move taxonomy", func(t *testing.T) {
		// Given: an occupied cell rejection
		err := error(&MoveError{Err: ErrCellOccupied, ValidMoves: "TL | TM"})

		// Then: it matches both the specific and the general sentinel
		assert.ErrorIs(t, err, ErrCellOccupied)
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.NotErrorIs(t, err, ErrEmptyMark)

		var moveErr *MoveError
		assert.True(t, errors.As(err, &moveErr))
		assert.Equal(t, "TL | TM", moveErr.ValidMoves)
	})

	t.Run("Message lists valid moves", func(t *testing.T) {
		err := &MoveError{Err: ErrInvalidMove, ValidMoves: "X | TM | TR"}

		assert.Equal(t, "invalid move, valid moves:\nX | TM | TR", err.Error())
	})

	t.Run("Message without listing", func(t *testing.T) {
		err := &MoveError{Err: ErrEmptyMark}

		assert.Equal(t, "players can't set positions to empty", err.Error())
	})

	t.Run("Empty mark is not an invalid move", func(t *testing.T) {
		assert.NotErrorIs(t, ErrEmptyMark, ErrInvalidMove)
		assert.ErrorIs(t, ErrGameFinished, ErrInvalidMove)
		assert.ErrorIs(t, ErrGameIsNotStarted, ErrInvalidMove)
	})
}
