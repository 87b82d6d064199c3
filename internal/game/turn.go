// FILE: internal/game/turn.go
package game

import (
	"fmt"

	"checkers/internal/board"
)

// ApplyMove validates and performs one step for the player to move. A jump
// that leaves the same piece with another capture keeps the turn and locks
// the piece into a multi-jump chain. On error the returned state is s.
func ApplyMove(s State, from, to board.Position) (State, error) {
	if s.IsOver() {
		return s, &MoveError{From: from, To: to, Err: ErrGameOver}
	}
	if !from.InBounds() {
		return s, fmt.Errorf("%w: %s", ErrOutOfBounds, from)
	}
	if !to.InBounds() {
		return s, fmt.Errorf("%w: %s", ErrOutOfBounds, to)
	}
	if err := checkOrigin(s, from); err != nil {
		return s, &MoveError{From: from, To: to, Err: err}
	}

	move, ok := findMove(s.movesFrom(from), to)
	if !ok {
		return s, &MoveError{From: from, To: to, Err: ErrIllegalDestination}
	}

	return advance(s, move), nil
}

// advance executes a legal move and settles the turn.
func advance(s State, move board.Move) State {
	next := execute(s, move)

	if move.IsJump() {
		if more := next.board.JumpsFrom(move.To); len(more) > 0 {
			next.chain = move.To
			next.inChain = true
			next.mandatory = []board.PieceJumps{{From: move.To, Jumps: more}}
			return next
		}
	}

	next.chain = board.Position{}
	next.inChain = false
	next.current = s.current.Opponent()
	next.mandatory = next.board.AllJumpsFor(next.current)
	next.outcome = evaluate(next.board, s.current, next.current, next.movesSinceCapture)
	return next
}

// checkOrigin reports why the piece on from may not move now.
func checkOrigin(s State, from board.Position) error {
	switch {
	case s.IsOver():
		return ErrGameOver
	case s.inChain && from != s.chain:
		return ErrChainInProgress
	}
	owner := s.board.OwnerOf(from)
	switch {
	case owner == board.NoPlayer:
		return ErrEmptySquare
	case owner != s.current:
		return ErrNotYourPiece
	case len(s.mandatory) > 0 && !s.mandatoryFrom(from):
		return ErrJumpRequired
	}
	return nil
}

// movesFrom is the move list of a piece that passed checkOrigin.
func (s State) movesFrom(from board.Position) []board.Move {
	if s.inChain {
		return s.board.JumpsFrom(s.chain)
	}
	return s.board.MovesFrom(from)
}

func findMove(moves []board.Move, to board.Position) (board.Move, bool) {
	for _, m := range moves {
		if m.To == to {
			return m, true
		}
	}
	return board.Move{}, false
}

// LegalMoves lists the moves the piece on pos may make right now. It is
// empty for pieces of the waiting player, for pieces excluded by a mandatory
// jump elsewhere and for every piece other than the one continuing a chain.
func LegalMoves(s State, pos board.Position) []board.Move {
	if !pos.InBounds() || checkOrigin(s, pos) != nil {
		return nil
	}
	return s.movesFrom(pos)
}

// LegalMovesForPlayer lists every legal move for p. While p is in the
// middle of a multi-jump only the chain piece's captures are listed.
func LegalMovesForPlayer(s State, p board.Player) []board.Move {
	if p == s.current && s.inChain {
		return s.board.JumpsFrom(s.chain)
	}
	return s.board.AllMovesFor(p)
}
