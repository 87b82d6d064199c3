// FILE: internal/game/selection.go
package game

import (
	"errors"
	"fmt"

	"checkers/internal/board"
)

var ErrNothingSelected = errors.New("no piece selected")

// Selection tracks the piece a player has picked up before choosing where to
// put it. It is presentation state and never affects the rules.
type Selection struct {
	state State
	piece board.Position
	held  bool
}

func NewSelection(s State) *Selection {
	sel := &Selection{}
	sel.Reset(s)
	return sel
}

// Reset replaces the underlying state. A pending chain piece stays in hand.
func (sel *Selection) Reset(s State) {
	sel.state = s
	sel.piece, sel.held = s.ChainPiece()
}

func (sel *Selection) State() State {
	return sel.state
}

func (sel *Selection) Selected() (board.Position, bool) {
	return sel.piece, sel.held
}

// Select picks up the piece on pos, replacing any earlier pick.
func (sel *Selection) Select(pos board.Position) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	if err := checkOrigin(sel.state, pos); err != nil {
		return fmt.Errorf("select %s: %w", pos, err)
	}
	sel.piece = pos
	sel.held = true
	return nil
}

// Targets lists the moves available to the selected piece.
func (sel *Selection) Targets() []board.Move {
	if !sel.held {
		return nil
	}
	return LegalMoves(sel.state, sel.piece)
}

// Choose moves the selected piece to to.
func (sel *Selection) Choose(to board.Position) (State, error) {
	if !sel.held {
		return sel.state, ErrNothingSelected
	}
	next, err := ApplyMove(sel.state, sel.piece, to)
	if err != nil {
		return sel.state, err
	}
	sel.Reset(next)
	return next, nil
}

// Clear drops the selected piece. A chain piece cannot be put down.
func (sel *Selection) Clear() {
	if sel.state.inChain {
		return
	}
	sel.held = false
}

func (sel *Selection) Phase() Phase {
	p := sel.state.Phase()
	if p == AwaitingSelection && sel.held {
		return AwaitingDestination
	}
	return p
}
