// FILE: internal/game/phase.go
package game

type Phase int

const (
	AwaitingSelection Phase = iota
	AwaitingDestination
	MultiJumpContinuation
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingSelection:
		return "awaiting_selection"
	case AwaitingDestination:
		return "awaiting_destination"
	case MultiJumpContinuation:
		return "multi_jump"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
