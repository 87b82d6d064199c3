// FILE: internal/transport/cli/handler.go
package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"checkers/internal/board"
	"checkers/internal/cli"
	"checkers/internal/core"
	"checkers/internal/engine"
	"checkers/internal/game"
	"checkers/internal/logging"
	"checkers/internal/service"
	"checkers/internal/transport"
)

var (
	_ transport.Handler = (*CLIHandler)(nil)
	_ transport.View    = (*cli.CLI)(nil)
)

// Engine chooses a move for the player to move
type Engine interface {
	Choose(s game.State) (engine.SearchResult, error)
}

// Config seats the players of new games and paces computer moves
type Config struct {
	Player1 core.PlayerType
	Player2 core.PlayerType
	Delay   time.Duration
}

type CLIHandler struct {
	svc    *service.Service
	view   *cli.CLI
	engine Engine
	delay  time.Duration
	seats  map[board.Player]core.PlayerType
	gameID string
	sel    *game.Selection
}

func New(svc *service.Service, view *cli.CLI, eng Engine, cfg Config) *CLIHandler {
	if cfg.Player1 == 0 {
		cfg.Player1 = core.PlayerHuman
	}
	if cfg.Player2 == 0 {
		cfg.Player2 = core.PlayerHuman
	}
	return &CLIHandler{
		svc:    svc,
		view:   view,
		engine: eng,
		delay:  cfg.Delay,
		sel:    game.NewSelection(game.New()),
		seats: map[board.Player]core.PlayerType{
			board.Player1: cfg.Player1,
			board.Player2: cfg.Player2,
		},
	}
}

// Run starts a game and processes commands until quit or end of input
func (h *CLIHandler) Run() {
	if h.gameID == "" {
		h.startGame("")
	}

	for {
		cmd, err := h.view.GetCommand(h.getPrompt())
		if err != nil {
			h.view.ShowError(err)
			break
		}

		// Process command - returns false to exit
		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// Generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	g, err := h.svc.GetGame(h.gameID)
	if err != nil || g.State().IsOver() {
		return "> "
	}

	tag := fmt.Sprintf("P%d", g.State().CurrentPlayer())
	if pos, held := h.sel.Selected(); held {
		tag += " " + pos.String()
	}
	return fmt.Sprintf("[%s]> ", tag)
}

// ProcessCommand handles one command and reports whether to keep running
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		// Resume a computer side that stopped on an error
		h.playComputer()

	case cli.CmdUnknown:
		h.view.ShowMessage(fmt.Sprintf("Unknown command %q. Type 'help' for commands.", cmd.Raw))

	case cli.CmdNew:
		for i, arg := range cmd.Args {
			if i > 1 {
				break
			}
			t, ok := parseSeat(arg)
			if !ok {
				h.view.ShowMessage("Usage: new [h|c] [h|c]")
				return true
			}
			h.seats[board.Player(i+1)] = t
		}
		h.startGame("")

	case cli.CmdLoad:
		if len(cmd.Args) == 0 || cmd.Args[0] == "" {
			h.view.ShowMessage("Usage: load <layout> <turn> <moves-since-capture> <chain|->")
			return true
		}
		h.startGame(cmd.Args[0])

	case cli.CmdReset:
		if err := h.HandleReset(h.gameID); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage("Game restarted.")
		h.showPosition()
		h.playComputer()

	case cli.CmdMove:
		from, to, err := board.ParseMoveText(cmd.Args[0])
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.humanMove(from, to)

	case cli.CmdSelect:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: select <row><col>")
			return true
		}
		pos, err := board.ParsePosition(cmd.Args[0])
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.selectPiece(pos)

	case cli.CmdDeselect:
		if _, held := h.sel.Selected(); !held {
			h.view.ShowMessage("No piece selected.")
			return true
		}
		h.sel.Clear()
		if _, held := h.sel.Selected(); held {
			h.view.ShowMessage("The jumping piece must finish its chain.")
			return true
		}
		h.showPosition()

	case cli.CmdSquare:
		pos, err := board.ParsePosition(cmd.Args[0])
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.square(pos)

	case cli.CmdMoves:
		h.showMoves(cmd.Args)

	case cli.CmdComputer:
		h.handleComputerToggle(cmd.Args)

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}

		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
			h.showPosition()
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		g, err := h.HandleGetGame(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowHistory(g)

	case cli.CmdSnapshot:
		g, err := h.HandleGetGame(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage(g.State().Snapshot())

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

// HandleNewGame replaces the current game with one started from snapshot,
// or from the opening position when snapshot is empty
func (h *CLIHandler) HandleNewGame(snapshot string, player1, player2 core.PlayerType) error {
	initial := game.New()
	if snapshot != "" {
		s, err := game.ParseSnapshot(snapshot)
		if err != nil {
			return err
		}
		initial = s
	}

	id := h.svc.GenerateGameID()
	err := h.svc.CreateGame(id,
		core.PlayerConfig{Type: player1},
		core.PlayerConfig{Type: player2},
		initial)
	if err != nil {
		return fmt.Errorf("could not start the game: %w", err)
	}

	if h.gameID != "" {
		_ = h.svc.DeleteGame(h.gameID)
	}
	h.gameID = id
	h.sel = game.NewSelection(initial)
	return nil
}

func (h *CLIHandler) HandleMove(gameID string, from, to board.Position) error {
	_, err := h.svc.ApplyMove(gameID, from, to)
	return err
}

func (h *CLIHandler) HandleReset(gameID string) error {
	return h.svc.ResetGame(gameID)
}

func (h *CLIHandler) HandleGetGame(gameID string) (*game.Game, error) {
	return h.svc.GetGame(gameID)
}

func (h *CLIHandler) startGame(snapshot string) {
	err := h.HandleNewGame(snapshot, h.seats[board.Player1], h.seats[board.Player2])
	if err != nil {
		h.view.ShowError(err)
		return
	}

	h.view.ShowMessage(fmt.Sprintf("Game started: Player 1 %s, Player 2 %s.",
		h.seats[board.Player1], h.seats[board.Player2]))
	h.showPosition()
	h.playComputer()
}

// showPosition redraws the board and the turn banner
func (h *CLIHandler) showPosition() {
	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		return
	}
	s := g.State()
	h.view.DisplayBoard(s, h.sel)
	if status := g.Status(); status.IsFinished() {
		h.view.ShowGameOver(status)
		return
	}
	h.view.ShowStatus(s)
}

func (h *CLIHandler) humanMove(from, to board.Position) {
	if err := h.HandleMove(h.gameID, from, to); err != nil {
		h.view.ShowError(describe(err))
		return
	}

	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		return
	}
	h.sel.Reset(g.State())
	if result := g.LastResult(); result != nil {
		h.view.ShowHumanMove(*result)
	}
	h.showPosition()
	h.playComputer()
}

func (h *CLIHandler) selectPiece(pos board.Position) {
	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		return
	}
	h.sel.Reset(g.State())
	if err = h.sel.Select(pos); err != nil {
		h.view.ShowError(describe(err))
		return
	}
	h.view.DisplayBoard(g.State(), h.sel)
}

// square moves the held piece to pos, or picks up the piece on pos
func (h *CLIHandler) square(pos board.Position) {
	from, held := h.sel.Selected()
	if !held {
		h.selectPiece(pos)
		return
	}

	s := h.sel.State()
	_, inChain := s.ChainPiece()
	if !inChain && s.Board().OwnerOf(pos) == s.CurrentPlayer() {
		h.selectPiece(pos)
		return
	}
	h.humanMove(from, pos)
}

func (h *CLIHandler) showMoves(args []string) {
	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		return
	}
	s := g.State()

	var moves []board.Move
	if len(args) > 0 {
		pos, err := board.ParsePosition(args[0])
		if err != nil {
			h.view.ShowError(err)
			return
		}
		moves = game.LegalMoves(s, pos)
	} else if !s.IsOver() {
		moves = game.LegalMovesForPlayer(s, s.CurrentPlayer())
	}

	if len(moves) == 0 {
		h.view.ShowMessage("No legal moves.")
		return
	}
	notation := make([]string, len(moves))
	for i, m := range moves {
		notation[i] = m.String()
	}
	h.view.ShowMessage(strings.Join(notation, " "))
}

func (h *CLIHandler) handleComputerToggle(args []string) {
	if len(args) < 1 {
		h.view.ShowMessage("Usage: computer <none|1|2|both>")
		return
	}

	p1, p2 := core.PlayerHuman, core.PlayerHuman
	switch args[0] {
	case "none", "off":
	case "1":
		p1 = core.PlayerComputer
	case "2":
		p2 = core.PlayerComputer
	case "both":
		p1, p2 = core.PlayerComputer, core.PlayerComputer
	default:
		h.view.ShowMessage("Usage: computer <none|1|2|both>")
		return
	}

	err := h.svc.UpdatePlayers(h.gameID, core.PlayerConfig{Type: p1}, core.PlayerConfig{Type: p2})
	if err != nil {
		h.view.ShowError(err)
		return
	}
	h.seats[board.Player1], h.seats[board.Player2] = p1, p2
	h.view.ShowMessage(fmt.Sprintf("Player 1 %s, Player 2 %s.", p1, p2))
	h.playComputer()
}

// playComputer plays computer steps while a computer holds the turn
func (h *CLIHandler) playComputer() {
	for {
		g, err := h.svc.GetGame(h.gameID)
		if err != nil || g.State().IsOver() || !g.NextPlayer().IsComputer() {
			return
		}

		// A chain step keeps the turn pending from the previous step
		epoch := g.Epoch()
		if !g.Pending() {
			if epoch, err = h.svc.SetPending(h.gameID, true); err != nil {
				return
			}
		}
		if h.delay > 0 {
			time.Sleep(h.delay)
		}

		choice, err := h.engine.Choose(g.State())
		if err != nil {
			h.svc.SetPending(h.gameID, false)
			h.view.ShowError(fmt.Errorf("engine error: %w", err))
			return
		}
		logging.Debugf("computer %s chose %s from %d candidates", g.State().CurrentPlayer(), choice.Move, choice.Candidates)

		result, err := h.svc.ApplyComputerMove(h.gameID, epoch, choice.Move.From, choice.Move.To)
		if err != nil {
			h.svc.SetPending(h.gameID, false)
			h.view.ShowError(err)
			return
		}

		h.view.ShowComputerMove(result, choice.Candidates)
		if next, err := h.svc.GetGame(h.gameID); err == nil {
			h.sel.Reset(next.State())
		}
		h.showPosition()
	}
}

// describe turns a rejected move into a user-facing message
func describe(err error) error {
	switch {
	case errors.Is(err, game.ErrJumpRequired):
		return fmt.Errorf("%w (see 'moves')", err)
	case errors.Is(err, service.ErrNotHumanTurn):
		return fmt.Errorf("%w, press ENTER to let it play", err)
	default:
		return err
	}
}

func parseSeat(s string) (core.PlayerType, bool) {
	switch strings.ToLower(s) {
	case "h", "human":
		return core.PlayerHuman, true
	case "c", "computer":
		return core.PlayerComputer, true
	default:
		return 0, false
	}
}
