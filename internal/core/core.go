// FILE: internal/core/core.go
package core

// State is the session status of a game as seen by the front ends.
type State int

const (
	StateOngoing State = iota
	StatePending       // Computer is choosing a move
	StatePlayer1Wins
	StatePlayer2Wins
	StateDraw
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StatePlayer1Wins:
		return "player1_wins"
	case StatePlayer2Wins:
		return "player2_wins"
	case StateDraw:
		return "draw"
	case StateOngoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

// IsFinished reports whether no further moves can be made.
func (s State) IsFinished() bool {
	return s == StatePlayer1Wins || s == StatePlayer2Wins || s == StateDraw
}

// Error codes
const (
	ErrGameNotFound      = "GAME_NOT_FOUND"
	ErrInvalidMove       = "INVALID_MOVE"
	ErrNotHumanTurn      = "NOT_HUMAN_TURN"
	ErrGameOver          = "GAME_OVER"
	ErrComputerThinking  = "COMPUTER_THINKING"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrInvalidSnapshot   = "INVALID_SNAPSHOT"
	ErrInternalError     = "INTERNAL_ERROR"
	ErrResourceLimit     = "RESOURCE_LIMIT"
)
