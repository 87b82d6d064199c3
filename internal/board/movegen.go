// FILE: internal/board/movegen.go
package board

// direction is a diagonal unit step.
type direction struct {
	dr, dc int
}

// Fixed scan order: up-left, up-right, down-left, down-right.
var (
	upDirections   = []direction{{-1, -1}, {-1, 1}}
	downDirections = []direction{{1, -1}, {1, 1}}
	allDirections  = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// directionsFor returns the step set of a cell. King status is read from the
// cell each call, so a piece crowned mid-chain moves as a king from then on.
func directionsFor(c Cell) []direction {
	switch c {
	case Player1King, Player2King:
		return allDirections
	case Player1Man:
		return upDirections
	case Player2Man:
		return downDirections
	default:
		return nil
	}
}

// PieceJumps groups the capture moves available to one piece.
type PieceJumps struct {
	From  Position `json:"from"`
	Jumps []Move   `json:"jumps"`
}

// JumpsFrom lists every capture available to the piece on pos.
func (b Board) JumpsFrom(pos Position) []Move {
	cell := b.At(pos)
	owner := cell.Owner()
	if owner == NoPlayer {
		return nil
	}
	var jumps []Move
	for _, d := range directionsFor(cell) {
		mid := Position{Row: pos.Row + d.dr, Col: pos.Col + d.dc}
		land := Position{Row: pos.Row + 2*d.dr, Col: pos.Col + 2*d.dc}
		if !land.InBounds() {
			continue
		}
		if b.OwnerOf(mid) != owner.Opponent() || !b.IsEmpty(land) {
			continue
		}
		jumps = append(jumps, Move{Kind: Jump, From: pos, To: land, Captured: mid})
	}
	return jumps
}

// MovesFrom lists the moves of the piece on pos: its jumps when it has any,
// otherwise its simple steps.
func (b Board) MovesFrom(pos Position) []Move {
	if jumps := b.JumpsFrom(pos); len(jumps) > 0 {
		return jumps
	}
	cell := b.At(pos)
	var moves []Move
	for _, d := range directionsFor(cell) {
		to := Position{Row: pos.Row + d.dr, Col: pos.Col + d.dc}
		if b.IsEmpty(to) {
			moves = append(moves, Move{Kind: Simple, From: pos, To: to})
		}
	}
	return moves
}

// AllJumpsFor collects, in row-major order, every piece of p that can capture.
func (b Board) AllJumpsFor(p Player) []PieceJumps {
	var out []PieceJumps
	for _, pos := range b.Pieces(p) {
		if jumps := b.JumpsFrom(pos); len(jumps) > 0 {
			out = append(out, PieceJumps{From: pos, Jumps: jumps})
		}
	}
	return out
}

// AllMovesFor is the flat legal move list for p: all jumps when any piece
// can capture, otherwise all simple moves.
func (b Board) AllMovesFor(p Player) []Move {
	if groups := b.AllJumpsFor(p); len(groups) > 0 {
		var jumps []Move
		for _, g := range groups {
			jumps = append(jumps, g.Jumps...)
		}
		return jumps
	}
	var moves []Move
	for _, pos := range b.Pieces(p) {
		moves = append(moves, b.MovesFrom(pos)...)
	}
	return moves
}
