// FILE: internal/game/game.go
package game

import (
	"checkers/internal/board"
	"checkers/internal/core"
)

// Record is one applied step of the game history.
type Record struct {
	Side board.Player
	Move board.Move
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move      board.Move
	Player    board.Player
	GameState core.State
	Continues bool // The same piece must jump again
}

// Game is a session: the rules state plus who sits at each side and what
// has been played. It is not safe for concurrent use.
type Game struct {
	state      State
	players    map[board.Player]*core.Player
	history    []Record
	pending    bool
	lastResult *MoveResult
	version    int
	epoch      int
}

func NewGame(initial State, player1, player2 *core.Player) *Game {
	return &Game{
		state: initial,
		players: map[board.Player]*core.Player{
			board.Player1: player1,
			board.Player2: player2,
		},
	}
}

func (g *Game) State() State {
	return g.state
}

// Apply plays one step for the player to move.
func (g *Game) Apply(from, to board.Position) (MoveResult, error) {
	mover := g.state.CurrentPlayer()
	next, err := ApplyMove(g.state, from, to)
	if err != nil {
		return MoveResult{}, err
	}

	move, _ := findMove(LegalMoves(g.state, from), to)
	g.state = next
	g.history = append(g.history, Record{Side: mover, Move: move})

	_, continues := next.ChainPiece()
	result := MoveResult{
		Move:      move,
		Player:    mover,
		GameState: next.Outcome().State(),
		Continues: continues,
	}
	g.lastResult = &result
	g.version++
	return result, nil
}

// Reset discards the position and history and restores the opening.
func (g *Game) Reset() {
	g.state = New()
	g.history = nil
	g.pending = false
	g.lastResult = nil
	g.epoch++
	g.version++
}

// Status is the session state; Pending while a computer move is scheduled.
func (g *Game) Status() core.State {
	if g.pending && !g.state.IsOver() {
		return core.StatePending
	}
	return g.state.Outcome().State()
}

func (g *Game) SetPending(pending bool) {
	if g.pending == pending {
		return
	}
	g.pending = pending
	g.version++
}

func (g *Game) Pending() bool {
	return g.pending
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

func (g *Game) NextPlayer() *core.Player {
	return g.players[g.state.CurrentPlayer()]
}

func (g *Game) GetPlayer(side board.Player) *core.Player {
	return g.players[side]
}

func (g *Game) UpdatePlayers(player1, player2 *core.Player) {
	g.players[board.Player1] = player1
	g.players[board.Player2] = player2
	g.version++
}

func (g *Game) History() []Record {
	out := make([]Record, len(g.history))
	copy(out, g.history)
	return out
}

func (g *Game) Moves() []string {
	moves := []string{}
	for _, r := range g.history {
		moves = append(moves, r.Move.String())
	}
	return moves
}

// Version increases on every observable change.
func (g *Game) Version() int {
	return g.version
}

// Epoch increases on every reset.
func (g *Game) Epoch() int {
	return g.epoch
}

// Clone returns an independent copy for readers outside the owning lock.
func (g *Game) Clone() *Game {
	c := *g
	c.history = g.History()
	c.players = make(map[board.Player]*core.Player, len(g.players))
	for side, p := range g.players {
		if p == nil {
			continue
		}
		cp := *p
		c.players[side] = &cp
	}
	if g.lastResult != nil {
		r := *g.lastResult
		c.lastResult = &r
	}
	return &c
}
