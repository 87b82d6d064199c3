// FILE: internal/engine/engine.go
package engine

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"checkers/internal/board"
	"checkers/internal/game"
)

var ErrNoMoves = errors.New("no legal moves")

// Picker returns an index in [0, n).
type Picker interface {
	IntN(n int) int
}

// SearchResult is the chosen step and the size of the pool it came from.
type SearchResult struct {
	Move       board.Move
	Candidates int
}

// Random plays a uniformly random legal step, including each continuation
// of a multi-jump. It is safe for concurrent use.
type Random struct {
	picker Picker
	mu     sync.Mutex
}

func New(p Picker) *Random {
	return &Random{picker: p}
}

// NewRandom seeds a PCG source; seed 0 uses the clock.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Choose picks a move for the player to move in s.
func (r *Random) Choose(s game.State) (SearchResult, error) {
	if s.IsOver() {
		return SearchResult{}, game.ErrGameOver
	}
	moves := game.LegalMovesForPlayer(s, s.CurrentPlayer())
	if len(moves) == 0 {
		return SearchResult{}, ErrNoMoves
	}

	r.mu.Lock()
	i := r.picker.IntN(len(moves))
	r.mu.Unlock()

	return SearchResult{Move: moves[i], Candidates: len(moves)}, nil
}
