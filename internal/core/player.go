// FILE: internal/core/player.go
package core

import (
	"github.com/google/uuid"

	"checkers/internal/board"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

func (t PlayerType) String() string {
	switch t {
	case PlayerHuman:
		return "human"
	case PlayerComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// Player is a seat at the board
type Player struct {
	ID   string       `json:"id"`
	Side board.Player `json:"side"`
	Type PlayerType   `json:"type"`
}

// PlayerConfig for API requests and configuration
type PlayerConfig struct {
	Type PlayerType `json:"type" validate:"required,oneof=1 2"`
}

// PlayersResponse for API responses
type PlayersResponse struct {
	Player1 *Player `json:"player1"`
	Player2 *Player `json:"player2"`
}

// NewPlayer creates a Player from PlayerConfig
func NewPlayer(config PlayerConfig, side board.Player) *Player {
	return &Player{
		ID:   uuid.New().String(),
		Side: side,
		Type: config.Type,
	}
}

func (p *Player) IsComputer() bool {
	return p != nil && p.Type == PlayerComputer
}
