// FILE: internal/service/game.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
)

// CreateGame creates game with player configuration
func (s *Service) CreateGame(id string, player1, player2 core.PlayerConfig, initial game.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, id)
	}
	if len(s.games) >= MaxGames {
		return ErrResourceLimit
	}

	s.games[id] = game.NewGame(initial,
		core.NewPlayer(player1, board.Player1),
		core.NewPlayer(player2, board.Player2),
	)

	log.Info().Str("game", id).
		Stringer("player1", player1.Type).
		Stringer("player2", player2.Type).
		Msg("game created")
	return nil
}

// UpdatePlayers replaces players in an existing game
func (s *Service) UpdatePlayers(gameID string, player1, player2 core.PlayerConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return notFound(gameID)
	}

	g.UpdatePlayers(core.NewPlayer(player1, board.Player1), core.NewPlayer(player2, board.Player2))
	if !g.NextPlayer().IsComputer() {
		g.SetPending(false)
	}
	s.waiter.NotifyGame(gameID, g.Version())
	return nil
}

// GetGame returns a copy of the game that callers may read freely
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, notFound(gameID)
	}
	return g.Clone(), nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// ApplyMove plays a human move
func (s *Service) ApplyMove(gameID string, from, to board.Position) (game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return game.MoveResult{}, notFound(gameID)
	}
	if !g.State().IsOver() {
		if g.Pending() {
			return game.MoveResult{}, ErrComputerThinking
		}
		if g.NextPlayer().IsComputer() {
			return game.MoveResult{}, ErrNotHumanTurn
		}
	}

	result, err := g.Apply(from, to)
	if err != nil {
		return game.MoveResult{}, err
	}

	s.waiter.NotifyGame(gameID, g.Version())
	return result, nil
}

// ApplyComputerMove plays a move chosen against the game as it was at epoch.
// The game stays pending while the computer keeps the turn.
func (s *Service) ApplyComputerMove(gameID string, epoch int, from, to board.Position) (game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return game.MoveResult{}, notFound(gameID)
	}
	if g.Epoch() != epoch || !g.Pending() || !g.NextPlayer().IsComputer() {
		return game.MoveResult{}, ErrStaleMove
	}

	result, err := g.Apply(from, to)
	if err != nil {
		return game.MoveResult{}, fmt.Errorf("%w: %v", ErrStaleMove, err)
	}
	if g.State().IsOver() || !g.NextPlayer().IsComputer() {
		g.SetPending(false)
	}

	s.waiter.NotifyGame(gameID, g.Version())
	return result, nil
}

// SetPending marks a computer move as scheduled. It returns the game epoch
// the move must be applied against. Marking a game that is already pending
// fails with ErrComputerThinking so only one move is scheduled per turn.
func (s *Service) SetPending(gameID string, pending bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return 0, notFound(gameID)
	}
	if pending && g.Pending() {
		return g.Epoch(), ErrComputerThinking
	}
	g.SetPending(pending)
	s.waiter.NotifyGame(gameID, g.Version())
	return g.Epoch(), nil
}

// ResetGame restores the opening position and clears the history
func (s *Service) ResetGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return notFound(gameID)
	}

	g.Reset()
	s.waiter.NotifyGame(gameID, g.Version())

	log.Info().Str("game", gameID).Int("epoch", g.Epoch()).Msg("game reset")
	return nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return notFound(gameID)
	}

	// Notify and remove all waiters before deletion
	s.waiter.RemoveGame(gameID)

	delete(s.games, gameID)
	log.Info().Str("game", gameID).Msg("game deleted")
	return nil
}
