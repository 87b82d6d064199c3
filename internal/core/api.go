// FILE: internal/core/api.go
package core

import "checkers/internal/board"

// Request types

type CreateGameRequest struct {
	Player1  PlayerConfig `json:"player1" validate:"required"`
	Player2  PlayerConfig `json:"player2" validate:"required"`
	Snapshot string       `json:"snapshot,omitempty" validate:"omitempty,max=100"`
}

type ConfigurePlayersRequest struct {
	Player1 PlayerConfig `json:"player1" validate:"required"`
	Player2 PlayerConfig `json:"player2" validate:"required"`
}

type SquareRequest struct {
	Row *int `json:"row" validate:"required,min=0,max=7"`
	Col *int `json:"col" validate:"required,min=0,max=7"`
}

func (s SquareRequest) Position() board.Position {
	return board.Position{Row: *s.Row, Col: *s.Col}
}

type MoveRequest struct {
	From SquareRequest `json:"from" validate:"required"`
	To   SquareRequest `json:"to" validate:"required"`
}

// Response types

type GameResponse struct {
	GameID            string           `json:"gameId"`
	Snapshot          string           `json:"snapshot"`
	Board             [][]string       `json:"board"` // Cell tags, row-major, row 0 first
	Turn              int              `json:"turn"`  // 1 or 2
	Phase             string           `json:"phase"`
	State             string           `json:"state"` // "ongoing", "player1_wins", etc
	MovesSinceCapture int              `json:"movesSinceCapture"`
	MandatoryJumps    []board.Position `json:"mandatoryJumps"`
	ChainPiece        *board.Position  `json:"chainPiece,omitempty"`
	Moves             []string         `json:"moves"`
	Players           PlayersResponse  `json:"players"`
	LastMove          *MoveInfo        `json:"lastMove,omitempty"`
	Version           int              `json:"version"`
}

type MoveInfo struct {
	Move      string `json:"move"`
	Player    int    `json:"player"`
	Continues bool   `json:"continues"` // Same piece must jump again
}

type BoardResponse struct {
	Snapshot string     `json:"snapshot"`
	Grid     [][]string `json:"grid"`
	Board    string     `json:"board"` // ASCII representation
}

type LegalMovesResponse struct {
	Player int      `json:"player"`
	Moves  []string `json:"moves"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Details string `json:"details,omitempty"`
}
