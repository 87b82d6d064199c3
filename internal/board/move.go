// FILE: internal/board/move.go
package board

import (
	"fmt"
	"strconv"
	"strings"
)

type MoveKind uint8

const (
	Simple MoveKind = iota
	Jump
)

func (k MoveKind) String() string {
	if k == Jump {
		return "jump"
	}
	return "simple"
}

// Move is a single step. Captured is only meaningful for jumps.
type Move struct {
	Kind     MoveKind `json:"kind"`
	From     Position `json:"from"`
	To       Position `json:"to"`
	Captured Position `json:"captured"`
}

func SimpleMove(from, to Position) Move {
	return Move{Kind: Simple, From: from, To: to}
}

// JumpMove builds a two-square diagonal jump; the captured square is the midpoint.
func JumpMove(from, to Position) Move {
	return Move{
		Kind:     Jump,
		From:     from,
		To:       to,
		Captured: Position{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2},
	}
}

func (m Move) IsJump() bool {
	return m.Kind == Jump
}

// String renders "52-43" for simple moves and "52x34" for jumps.
func (m Move) String() string {
	sep := "-"
	if m.Kind == Jump {
		sep = "x"
	}
	return m.From.String() + sep + m.To.String()
}

// ParsePosition accepts "52" or "5,2".
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid position %q: expected two digits <row><col>", s)
	}
	row, err := strconv.Atoi(s[:1])
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	col, err := strconv.Atoi(s[1:])
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	p := Position{Row: row, Col: col}
	if !p.InBounds() {
		return Position{}, fmt.Errorf("invalid position %q: off the board", s)
	}
	return p, nil
}

// ParseMoveText splits user move text into origin and destination.
// Accepted forms: "52-43", "52x34", "5243", "52 43", "5,2 4,3".
func ParseMoveText(s string) (Position, Position, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	var parts []string
	switch {
	case strings.ContainsAny(s, "-x"):
		parts = strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == 'x' })
	case strings.Contains(s, " "):
		parts = strings.Fields(s)
	case len(s) == 4:
		parts = []string{s[:2], s[2:]}
	}
	if len(parts) != 2 {
		return Position{}, Position{}, fmt.Errorf("invalid move %q: expected <from>-<to>", s)
	}
	from, err := ParsePosition(parts[0])
	if err != nil {
		return Position{}, Position{}, err
	}
	to, err := ParsePosition(parts[1])
	if err != nil {
		return Position{}, Position{}, err
	}
	return from, to, nil
}
