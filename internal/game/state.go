// FILE: internal/game/state.go
package game

import "checkers/internal/board"

// DrawThreshold is the number of consecutive non-capturing moves that ends the game in a draw.
const DrawThreshold = 40

// State is an immutable game position. Every operation returns a new State;
// the receiver is never modified.
type State struct {
	board             board.Board
	current           board.Player
	movesSinceCapture int
	mandatory         []board.PieceJumps
	chain             board.Position
	inChain           bool
	outcome           Outcome
}

// New returns the standard opening with Player 1 to move.
func New() State {
	return newState(board.NewStartingBoard(), board.Player1, 0)
}

func newState(b board.Board, current board.Player, movesSinceCapture int) State {
	return State{
		board:             b,
		current:           current,
		movesSinceCapture: movesSinceCapture,
		mandatory:         b.AllJumpsFor(current),
	}
}

// FromBoard builds a position with no chain in progress and evaluates it for
// a finished game.
func FromBoard(b board.Board, current board.Player, movesSinceCapture int) State {
	s := newState(b, current, movesSinceCapture)
	s.outcome = evaluate(s.board, current.Opponent(), current, movesSinceCapture)
	return s
}

func (s State) Board() board.Board {
	return s.board
}

// Grid is the row-major cell snapshot for presentation.
func (s State) Grid() [board.Size][board.Size]board.Cell {
	return s.board.Grid()
}

func (s State) CurrentPlayer() board.Player {
	return s.current
}

func (s State) MovesSinceCapture() int {
	return s.movesSinceCapture
}

// MandatoryJumps lists, per piece, the captures the player to move must choose from.
func (s State) MandatoryJumps() []board.PieceJumps {
	out := make([]board.PieceJumps, len(s.mandatory))
	copy(out, s.mandatory)
	return out
}

func (s State) MustJump() bool {
	return len(s.mandatory) > 0
}

// ChainPiece returns the piece that must continue a multi-jump.
func (s State) ChainPiece() (board.Position, bool) {
	return s.chain, s.inChain
}

func (s State) Outcome() Outcome {
	return s.outcome
}

func (s State) IsOver() bool {
	return s.outcome.Result != InProgress
}

func (s State) Phase() Phase {
	switch {
	case s.IsOver():
		return GameOver
	case s.inChain:
		return MultiJumpContinuation
	default:
		return AwaitingSelection
	}
}

func (s State) mandatoryFrom(pos board.Position) bool {
	for _, g := range s.mandatory {
		if g.From == pos {
			return true
		}
	}
	return false
}
