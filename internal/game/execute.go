// FILE: internal/game/execute.go
package game

import (
	"fmt"

	"checkers/internal/board"
)

// execute relocates the piece, removes a captured piece, updates the draw
// counter and crowns a man that lands on its far row. The move must already be
// known legal; malformed geometry is a programming error.
func execute(s State, m board.Move) State {
	piece := s.board.At(m.From)
	if piece == board.Empty {
		panic(fmt.Sprintf("game: execute %s from empty square", m))
	}
	if !s.board.IsEmpty(m.To) {
		panic(fmt.Sprintf("game: execute %s onto occupied square", m))
	}

	dr, dc := m.To.Row-m.From.Row, m.To.Col-m.From.Col
	next := s
	b := s.board

	switch m.Kind {
	case board.Simple:
		if abs(dr) != 1 || abs(dc) != 1 {
			panic(fmt.Sprintf("game: simple move %s is not a diagonal step", m))
		}
		next.movesSinceCapture = s.movesSinceCapture + 1
	case board.Jump:
		mid := board.Position{Row: m.From.Row + dr/2, Col: m.From.Col + dc/2}
		if abs(dr) != 2 || abs(dc) != 2 || m.Captured != mid {
			panic(fmt.Sprintf("game: jump %s has invalid geometry", m))
		}
		b.Set(m.Captured, board.Empty)
		next.movesSinceCapture = 0
	default:
		panic(fmt.Sprintf("game: unknown move kind %d", m.Kind))
	}

	b.Set(m.From, board.Empty)
	if !piece.IsKing() && m.To.Row == piece.Owner().PromotionRow() {
		piece = piece.Crowned()
	}
	b.Set(m.To, piece)

	next.board = b
	return next
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
