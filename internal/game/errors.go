// FILE: internal/game/errors.go
package game

import (
	"errors"
	"fmt"

	"checkers/internal/board"
)

var (
	ErrGameOver           = errors.New("game is over")
	ErrEmptySquare        = errors.New("that square is empty")
	ErrNotYourPiece       = errors.New("that piece belongs to the other player")
	ErrJumpRequired       = errors.New("a jump is available and must be taken")
	ErrChainInProgress    = errors.New("the multi-jump must be completed with the same piece")
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrOutOfBounds marks coordinates outside the board. Callers are expected
	// to validate positions before calling the engine.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// MoveError is a rejected move request. The state it was checked against is unchanged.
type MoveError struct {
	From board.Position
	To   board.Position
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s-%s rejected: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Reason is a stable code for the rejection, used by the transports.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrGameOver):
		return "GAME_OVER"
	case errors.Is(err, ErrEmptySquare):
		return "EMPTY_SQUARE"
	case errors.Is(err, ErrNotYourPiece):
		return "NOT_YOUR_PIECE"
	case errors.Is(err, ErrJumpRequired):
		return "JUMP_REQUIRED"
	case errors.Is(err, ErrChainInProgress):
		return "CHAIN_IN_PROGRESS"
	case errors.Is(err, ErrIllegalDestination):
		return "ILLEGAL_DESTINATION"
	case errors.Is(err, ErrOutOfBounds):
		return "OUT_OF_BOUNDS"
	default:
		return ""
	}
}
