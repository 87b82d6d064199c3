// FILE: internal/processor/processor.go
package processor

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/service"
)

const (
	DefaultComputerDelay = time.Second
	DefaultWorkers       = 2
)

// Config tunes computer play
type Config struct {
	Workers       int
	ComputerDelay time.Duration
}

// Processor handles command execution and coordinates between service and engine layers
type Processor struct {
	svc   *service.Service
	queue *ComputerQueue
	delay time.Duration
}

// New creates a processor with its own computer worker pool
func New(svc *service.Service, eng Engine, cfg Config) *Processor {
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.ComputerDelay < 0 {
		cfg.ComputerDelay = 0
	}

	return &Processor{
		svc:   svc,
		queue: NewComputerQueue(eng, cfg.Workers),
		delay: cfg.ComputerDelay,
	}
}

func (p *Processor) Execute(cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdCreateGame:
		return p.handleCreateGame(cmd)
	case CmdConfigurePlayers:
		return p.handleConfigurePlayers(cmd)
	case CmdGetGame:
		return p.handleGetGame(cmd)
	case CmdMakeMove:
		return p.handleMakeMove(cmd)
	case CmdResetGame:
		return p.handleResetGame(cmd)
	case CmdDeleteGame:
		return p.handleDeleteGame(cmd)
	case CmdGetBoard:
		return p.handleGetBoard(cmd)
	case CmdGetLegalMoves:
		return p.handleGetLegalMoves(cmd)
	default:
		return p.errorResponse("unknown command", core.ErrInvalidRequest)
	}
}

// handleCreateGame creates a new game and triggers computer move if needed
func (p *Processor) handleCreateGame(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.CreateGameRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	initial := game.New()
	if args.Snapshot != "" {
		s, err := game.ParseSnapshot(args.Snapshot)
		if err != nil {
			return p.errorResponse(err.Error(), core.ErrInvalidSnapshot)
		}
		initial = s
	}

	gameID := p.svc.GenerateGameID()
	if err := p.svc.CreateGame(gameID, args.Player1, args.Player2, initial); err != nil {
		if errors.Is(err, service.ErrResourceLimit) {
			return p.errorResponse(err.Error(), core.ErrResourceLimit)
		}
		return p.errorResponse(fmt.Sprintf("failed to create game: %v", err), core.ErrInternalError)
	}

	pending := p.scheduleComputerMove(gameID)
	return p.gameResponse(gameID, pending)
}

// handleConfigurePlayers changes who plays each side mid-game
func (p *Processor) handleConfigurePlayers(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.ConfigurePlayersRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	// Block configuration changes during computer move
	if g.Pending() {
		return p.errorResponse("cannot change players while computer is moving", core.ErrComputerThinking)
	}

	if err = p.svc.UpdatePlayers(cmd.GameID, args.Player1, args.Player2); err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	pending := p.scheduleComputerMove(cmd.GameID)
	return p.gameResponse(cmd.GameID, pending)
}

// handleGetGame retrieves game state
func (p *Processor) handleGetGame(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	return ProcessorResponse{
		Success: true,
		Pending: g.Pending(),
		Data:    p.buildGameResponse(cmd.GameID, g),
	}
}

// handleMakeMove processes human moves
func (p *Processor) handleMakeMove(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.MoveRequest)
	if !ok || args.From.Row == nil || args.From.Col == nil || args.To.Row == nil || args.To.Col == nil {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	_, err := p.svc.ApplyMove(cmd.GameID, args.From.Position(), args.To.Position())
	if err != nil {
		return p.moveErrorResponse(err)
	}

	pending := p.scheduleComputerMove(cmd.GameID)
	return p.gameResponse(cmd.GameID, pending)
}

// handleResetGame restores the opening position
func (p *Processor) handleResetGame(cmd Command) ProcessorResponse {
	if err := p.svc.ResetGame(cmd.GameID); err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	pending := p.scheduleComputerMove(cmd.GameID)
	return p.gameResponse(cmd.GameID, pending)
}

// handleDeleteGame removes a game; a scheduled computer move is discarded
func (p *Processor) handleDeleteGame(cmd Command) ProcessorResponse {
	if err := p.svc.DeleteGame(cmd.GameID); err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	return ProcessorResponse{
		Success: true,
	}
}

// handleGetBoard returns board visualization
func (p *Processor) handleGetBoard(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	s := g.State()
	return ProcessorResponse{
		Success: true,
		Data: core.BoardResponse{
			Snapshot: s.Snapshot(),
			Grid:     gridTags(s),
			Board:    s.Board().ToASCII(),
		},
	}
}

// handleGetLegalMoves lists the moves of one square or of the player to move
func (p *Processor) handleGetLegalMoves(cmd Command) ProcessorResponse {
	g, err := p.svc.GetGame(cmd.GameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}

	s := g.State()
	var moves []board.Move
	if query, ok := cmd.Args.(LegalMovesQuery); ok && query.Position != nil {
		moves = game.LegalMoves(s, *query.Position)
	} else if !s.IsOver() {
		moves = game.LegalMovesForPlayer(s, s.CurrentPlayer())
	}

	notation := make([]string, 0, len(moves))
	for _, m := range moves {
		notation = append(notation, m.String())
	}

	return ProcessorResponse{
		Success: true,
		Data: core.LegalMovesResponse{
			Player: int(s.CurrentPlayer()),
			Moves:  notation,
		},
	}
}

// scheduleComputerMove queues a move when a computer holds the turn.
// It reports whether a move is pending. When another request already
// scheduled one for this turn nothing new is queued.
func (p *Processor) scheduleComputerMove(gameID string) bool {
	g, err := p.svc.GetGame(gameID)
	if err != nil {
		return false
	}
	if g.State().IsOver() || !g.NextPlayer().IsComputer() {
		return false
	}

	epoch, err := p.svc.SetPending(gameID, true)
	if errors.Is(err, service.ErrComputerThinking) {
		return true
	}
	if err != nil {
		return false
	}
	return p.queueComputerMove(gameID, epoch, g.State())
}

// queueComputerMove submits a task for a game this processor marked pending
func (p *Processor) queueComputerMove(gameID string, epoch int, s game.State) bool {
	task := ComputerTask{
		GameID: gameID,
		Epoch:  epoch,
		State:  s,
		Delay:  p.delay,
	}
	if err := p.queue.SubmitAsync(task, p.handleComputerResult); err != nil {
		log.Warn().Err(err).Str("game", gameID).Msg("computer move not queued")
		p.svc.SetPending(gameID, false)
		return false
	}

	log.Debug().Str("game", gameID).Int("epoch", epoch).Stringer("player", s.CurrentPlayer()).Msg("computer move queued")
	return true
}

// handleComputerResult applies a finished computer move and queues the next
// one while the computer keeps the turn.
func (p *Processor) handleComputerResult(result ComputerResult) {
	if result.Error != nil {
		log.Error().Err(result.Error).Str("game", result.GameID).Msg("computer move failed")
		if g, err := p.svc.GetGame(result.GameID); err == nil && g.Epoch() == result.Epoch {
			p.svc.SetPending(result.GameID, false)
		}
		return
	}

	move := result.Move
	if _, err := p.svc.ApplyComputerMove(result.GameID, result.Epoch, move.From, move.To); err != nil {
		log.Debug().Err(err).Str("game", result.GameID).Stringer("move", move).Msg("computer move discarded")
		return
	}

	// The game stays pending while the computer keeps the turn
	g, err := p.svc.GetGame(result.GameID)
	if err != nil || !g.Pending() || g.Epoch() != result.Epoch {
		return
	}
	p.queueComputerMove(result.GameID, result.Epoch, g.State())
}

func (p *Processor) gameResponse(gameID string, pending bool) ProcessorResponse {
	g, err := p.svc.GetGame(gameID)
	if err != nil {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}
	return ProcessorResponse{
		Success: true,
		Pending: pending,
		Data:    p.buildGameResponse(gameID, g),
	}
}

// buildGameResponse constructs standard game response
func (p *Processor) buildGameResponse(gameID string, g *game.Game) core.GameResponse {
	s := g.State()

	mandatory := []board.Position{}
	for _, group := range s.MandatoryJumps() {
		mandatory = append(mandatory, group.From)
	}

	resp := core.GameResponse{
		GameID:            gameID,
		Snapshot:          s.Snapshot(),
		Board:             gridTags(s),
		Turn:              int(s.CurrentPlayer()),
		Phase:             s.Phase().String(),
		State:             g.Status().String(),
		MovesSinceCapture: s.MovesSinceCapture(),
		MandatoryJumps:    mandatory,
		Moves:             g.Moves(),
		Players: core.PlayersResponse{
			Player1: g.GetPlayer(board.Player1),
			Player2: g.GetPlayer(board.Player2),
		},
		Version: g.Version(),
	}

	if chain, ok := s.ChainPiece(); ok {
		resp.ChainPiece = &chain
	}

	// Include last move if available
	if result := g.LastResult(); result != nil {
		resp.LastMove = &core.MoveInfo{
			Move:      result.Move.String(),
			Player:    int(result.Player),
			Continues: result.Continues,
		}
	}

	return resp
}

func gridTags(s game.State) [][]string {
	grid := s.Grid()
	rows := make([][]string, board.Size)
	for r := range grid {
		rows[r] = make([]string, board.Size)
		for c, cell := range grid[r] {
			rows[r][c] = cell.String()
		}
	}
	return rows
}

// moveErrorResponse maps a rejected move to an error code
func (p *Processor) moveErrorResponse(err error) ProcessorResponse {
	resp := p.errorResponse(err.Error(), core.ErrInvalidMove)
	resp.Error.Reason = game.Reason(err)

	switch {
	case errors.Is(err, service.ErrGameNotFound):
		resp.Error.Code = core.ErrGameNotFound
	case errors.Is(err, service.ErrComputerThinking):
		resp.Error.Code = core.ErrComputerThinking
	case errors.Is(err, service.ErrNotHumanTurn):
		resp.Error.Code = core.ErrNotHumanTurn
	case errors.Is(err, game.ErrGameOver):
		resp.Error.Code = core.ErrGameOver
	}
	return resp
}

// errorResponse creates error response
func (p *Processor) errorResponse(message, code string) ProcessorResponse {
	return ProcessorResponse{
		Success: false,
		Error: &core.ErrorResponse{
			Error: message,
			Code:  code,
		},
	}
}

// Close stops the computer workers
func (p *Processor) Close() error {
	return p.queue.Shutdown(5 * time.Second)
}
