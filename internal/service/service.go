// FILE: internal/service/service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/game"
)

const MaxGames = 1000

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameExists       = errors.New("game already exists")
	ErrResourceLimit    = errors.New("too many active games")
	ErrNotHumanTurn     = errors.New("it is the computer's turn")
	ErrComputerThinking = errors.New("computer move in progress")
	ErrStaleMove        = errors.New("game changed while the move was chosen")
)

// Service is the in-memory state manager for checkers games
type Service struct {
	games  map[string]*game.Game
	mu     sync.RWMutex
	waiter *WaitRegistry
}

// New creates a new service instance
func New() *Service {
	return &Service{
		games:  make(map[string]*game.Game),
		waiter: NewWaitRegistry(),
	}
}

// RegisterWait registers a client to wait for game state changes
func (s *Service) RegisterWait(ctx context.Context, gameID string, version int) <-chan struct{} {
	return s.waiter.RegisterWait(ctx, gameID, version)
}

// GameCount returns the number of games held in memory
func (s *Service) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Shutdown gracefully shuts down the service
func (s *Service) Shutdown(timeout time.Duration) error {
	var errs []error

	if err := s.waiter.Shutdown(timeout); err != nil {
		errs = append(errs, fmt.Errorf("wait registry: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log.Info().Int("games", len(s.games)).Msg("service shutdown")
	s.games = make(map[string]*game.Game)

	return errors.Join(errs...)
}

func notFound(gameID string) error {
	return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
}
