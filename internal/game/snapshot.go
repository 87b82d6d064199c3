// FILE: internal/game/snapshot.go
package game

import (
	"fmt"
	"strconv"
	"strings"

	"checkers/internal/board"
)

// StartingSnapshot is the snapshot of New().
const StartingSnapshot = board.StartingLayout + " 1 0 -"

// Snapshot encodes the position as "<layout> <turn> <movesSinceCapture> <chain>".
func (s State) Snapshot() string {
	chain := "-"
	if s.inChain {
		chain = s.chain.String()
	}
	turn := "1"
	if s.current == board.Player2 {
		turn = "2"
	}
	return fmt.Sprintf("%s %s %d %s", s.board.Layout(), turn, s.movesSinceCapture, chain)
}

// ParseSnapshot rebuilds a state from its Snapshot form.
func ParseSnapshot(text string) (State, error) {
	parts := strings.Fields(text)
	if len(parts) != 4 {
		return State{}, fmt.Errorf("invalid snapshot: expected 4 fields, got %d", len(parts))
	}

	b, err := board.ParseLayout(parts[0])
	if err != nil {
		return State{}, fmt.Errorf("invalid snapshot: %w", err)
	}

	var current board.Player
	switch parts[1] {
	case "1":
		current = board.Player1
	case "2":
		current = board.Player2
	default:
		return State{}, fmt.Errorf("invalid snapshot: turn must be '1' or '2'")
	}

	counter, err := strconv.Atoi(parts[2])
	if err != nil || counter < 0 {
		return State{}, fmt.Errorf("invalid snapshot: moves since capture counter")
	}

	if parts[3] == "-" {
		return FromBoard(b, current, counter), nil
	}

	chain, err := board.ParsePosition(parts[3])
	if err != nil {
		return State{}, fmt.Errorf("invalid snapshot: chain: %w", err)
	}
	if b.OwnerOf(chain) != current {
		return State{}, fmt.Errorf("invalid snapshot: chain piece %s is not owned by the player to move", chain)
	}
	jumps := b.JumpsFrom(chain)
	if len(jumps) == 0 {
		return State{}, fmt.Errorf("invalid snapshot: chain piece %s has no capture", chain)
	}

	s := newState(b, current, counter)
	s.chain = chain
	s.inChain = true
	s.mandatory = []board.PieceJumps{{From: chain, Jumps: jumps}}
	return s, nil
}
