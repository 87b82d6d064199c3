// FILE: internal/processor/queue.go
package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/board"
	"checkers/internal/engine"
	"checkers/internal/game"
)

var (
	ErrQueueClosed = errors.New("queue is shutting down")
	ErrQueueFull   = errors.New("queue is full")
)

// Engine chooses a move for the player to move
type Engine interface {
	Choose(s game.State) (engine.SearchResult, error)
}

// ComputerTask is a computer move request and its response channel
type ComputerTask struct {
	GameID   string
	Epoch    int
	State    game.State
	Delay    time.Duration // Pacing before the move is chosen
	Response chan<- ComputerResult
}

// ComputerResult contains the outcome of a move choice
type ComputerResult struct {
	GameID     string
	Epoch      int
	Move       board.Move
	Candidates int
	Error      error
}

// ComputerQueue manages async computer moves
type ComputerQueue struct {
	engine  Engine
	tasks   chan ComputerTask
	workers int
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.RWMutex
	closed  bool
}

// NewComputerQueue creates a queue with specified worker count
func NewComputerQueue(eng Engine, workerCount int) *ComputerQueue {
	if workerCount < 1 {
		workerCount = 2 // Default
	}

	ctx, cancel := context.WithCancel(context.Background())

	q := &ComputerQueue{
		engine:  eng,
		tasks:   make(chan ComputerTask, 100), // Buffered for queueing
		workers: workerCount,
		ctx:     ctx,
		cancel:  cancel,
	}

	q.start()
	return q
}

// start initializes the worker pool
func (q *ComputerQueue) start() {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
}

// worker processes computer tasks
func (q *ComputerQueue) worker(id int) {
	defer q.wg.Done()
	log.Debug().Int("worker", id).Msg("computer worker started")

	for {
		select {
		case task, ok := <-q.tasks:
			if !ok {
				return // Channel closed
			}

			result := q.processTask(task)

			// Response is buffered by SubmitAsync
			select {
			case task.Response <- result:
			default:
			}

		case <-q.ctx.Done():
			return
		}
	}
}

// processTask waits out the pacing delay and asks the engine for a move
func (q *ComputerQueue) processTask(task ComputerTask) ComputerResult {
	result := ComputerResult{
		GameID: task.GameID,
		Epoch:  task.Epoch,
	}

	if task.Delay > 0 {
		timer := time.NewTimer(task.Delay)
		select {
		case <-timer.C:
		case <-q.ctx.Done():
			timer.Stop()
			result.Error = ErrQueueClosed
			return result
		}
	}

	search, err := q.engine.Choose(task.State)
	if err != nil {
		result.Error = fmt.Errorf("engine: %w", err)
		return result
	}

	result.Move = search.Move
	result.Candidates = search.Candidates
	return result
}

// Submit adds a task to the queue
func (q *ComputerQueue) Submit(task ComputerTask) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// SubmitAsync submits a task without blocking for result
func (q *ComputerQueue) SubmitAsync(task ComputerTask, callback func(ComputerResult)) error {
	respChan := make(chan ComputerResult, 1)
	task.Response = respChan

	if err := q.Submit(task); err != nil {
		return err
	}

	timeout := task.Delay + 5*time.Second

	// Handle result in background
	go func() {
		select {
		case result := <-respChan:
			callback(result)
		case <-time.After(timeout):
			callback(ComputerResult{
				GameID: task.GameID,
				Epoch:  task.Epoch,
				Error:  fmt.Errorf("computer move timeout"),
			})
		}
	}()

	return nil
}

// Shutdown gracefully stops the queue
func (q *ComputerQueue) Shutdown(timeout time.Duration) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.cancel()
	close(q.tasks)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout exceeded")
	}
}
