// FILE: internal/game/outcome.go
package game

import (
	"fmt"

	"checkers/internal/board"
	"checkers/internal/core"
)

type Result int

const (
	InProgress Result = iota
	Win
	Draw
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Outcome is the terminal status of a position. Winner is set only for Win.
type Outcome struct {
	Result Result
	Winner board.Player
}

func (o Outcome) String() string {
	switch o.Result {
	case Win:
		return fmt.Sprintf("%s wins", o.Winner)
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// State maps the outcome to the session status.
func (o Outcome) State() core.State {
	switch {
	case o.Result == Draw:
		return core.StateDraw
	case o.Result == Win && o.Winner == board.Player1:
		return core.StatePlayer1Wins
	case o.Result == Win && o.Winner == board.Player2:
		return core.StatePlayer2Wins
	default:
		return core.StateOngoing
	}
}

// IsGameOver reports the outcome of s.
func IsGameOver(s State) Outcome {
	return s.outcome
}

// evaluate runs the end-of-turn checks after mover finished a turn and
// opponent is about to move. A win takes precedence over the draw counter.
func evaluate(b board.Board, mover, opponent board.Player, movesSinceCapture int) Outcome {
	if b.Count(opponent) == 0 {
		return Outcome{Result: Win, Winner: mover}
	}
	if len(b.AllMovesFor(opponent)) == 0 {
		return Outcome{Result: Win, Winner: mover}
	}
	if movesSinceCapture >= DrawThreshold {
		return Outcome{Result: Draw}
	}
	return Outcome{Result: InProgress}
}
