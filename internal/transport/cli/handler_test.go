package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"checkers/internal/board"
	"checkers/internal/cli"
	"checkers/internal/core"
	"checkers/internal/engine"
	"checkers/internal/game"
	"checkers/internal/service"
)

// firstPicker always plays the first legal move
type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

func runScript(t *testing.T, cfg Config, script string) (*CLIHandler, *service.Service, string) {
	t.Helper()
	var out bytes.Buffer
	svc := service.New()
	t.Cleanup(func() { require.NoError(t, svc.Shutdown(time.Second)) })

	view := cli.New(cli.NewScannerReader(strings.NewReader(script), &out), &out)
	h := New(svc, view, engine.New(firstPicker{}), cfg)
	h.Run()
	return h, svc, out.String()
}

func currentGame(t *testing.T, h *CLIHandler, svc *service.Service) *game.Game {
	t.Helper()
	g, err := svc.GetGame(h.gameID)
	require.NoError(t, err)
	return g
}

func TestHumanMoveAndHistory(t *testing.T) {
	h, svc, out := runScript(t, Config{}, "52-43\nhistory\nquit\n")

	require.Contains(t, out, "Game started: Player 1 human, Player 2 human.")
	require.Contains(t, out, "Player 2 turn")
	require.Contains(t, out, "  1. Player 1: 52-43")
	require.Equal(t, []string{"52-43"}, currentGame(t, h, svc).Moves())
}

func TestComputerReplies(t *testing.T) {
	h, svc, out := runScript(t, Config{Player2: core.PlayerComputer}, "52-43\n")

	g := currentGame(t, h, svc)
	require.Len(t, g.Moves(), 2)
	require.Equal(t, board.Player1, g.State().CurrentPlayer())
	require.False(t, g.Pending())
	require.Contains(t, out, "Computer (Player 2): ")
}

func TestSelectThenDestination(t *testing.T) {
	h, svc, out := runScript(t, Config{}, "select 52\n43\n")

	require.Contains(t, out, "[x]")
	require.Contains(t, out, "[P1 52]> ")
	require.Equal(t, []string{"52-43"}, currentGame(t, h, svc).Moves())
}

func TestDeselect(t *testing.T) {
	h, svc, out := runScript(t, Config{}, "deselect
select 52
deselect
54-45
")

	require.Contains(t, out, "No piece selected.")
	require.Contains(t, out, "[P1 52]> ")
	_, held := h.sel.Selected()
	require.False(t, held)
	require.Equal(t, []string{"54-45"}, currentGame(t, h, svc).Moves())

	chain := "load ......../......../...o..../......../.o....../x......./......../......O. 1 0 -
" +
		"50x32
deselect
"
	h, _, out = runScript(t, Config{}, chain)
	require.Contains(t, out, "The jumping piece must finish its chain.")
	pos, held := h.sel.Selected()
	require.True(t, held)
	require.Equal(t, board.Pos(3, 2), pos)
}

func TestSquareReselectsOwnPiece(t *testing.T) {
	h, svc, _ := runScript(t, Config{}, "52\n54\n45\n")

	require.Equal(t, []string{"54-45"}, currentGame(t, h, svc).Moves())
}

func TestForcedJumpFromSnapshot(t *testing.T) {
	script := "load ......../......../......../......../...o..../..x...x./......../........ 1 0 -\n" +
		"moves\n56-45\n52x34\n"
	h, svc, out := runScript(t, Config{}, script)

	require.Contains(t, out, "MUST JUMP!")
	require.Contains(t, out, "52x34\n")
	require.Contains(t, out, game.ErrJumpRequired.Error())
	require.Contains(t, out, "Game Over: player1_wins")

	g := currentGame(t, h, svc)
	require.Equal(t, core.StatePlayer1Wins, g.Status())
	require.Equal(t, 1, svc.GameCount(), "loading replaces the previous game")
}

func TestBadSnapshotKeepsGame(t *testing.T) {
	h, svc, out := runScript(t, Config{}, "52-43\nload nonsense\nsnapshot\n")

	require.Contains(t, out, "Error: ")
	require.Len(t, currentGame(t, h, svc).Moves(), 1)
	require.Contains(t, out, currentGame(t, h, svc).State().Snapshot())
}

func TestResetAndNew(t *testing.T) {
	h, svc, out := runScript(t, Config{}, "52-43\nreset\n")
	require.Contains(t, out, "Game restarted.")
	require.Empty(t, currentGame(t, h, svc).Moves())

	h, svc, _ = runScript(t, Config{}, "new c h\n")
	g := currentGame(t, h, svc)
	require.Equal(t, core.PlayerComputer, g.GetPlayer(board.Player1).Type)
	require.Len(t, g.Moves(), 1, "computer opens as Player 1")

	_, _, out = runScript(t, Config{}, "new x\n")
	require.Contains(t, out, "Usage: new [h|c] [h|c]")
}

func TestComputerToggleFinishesGame(t *testing.T) {
	h, svc, out := runScript(t, Config{}, "computer both\n")

	require.Contains(t, out, "Player 1 computer, Player 2 computer.")
	g := currentGame(t, h, svc)
	require.True(t, g.State().IsOver())
	require.False(t, g.Pending())
	require.Contains(t, out, "Game Over: ")
}

func TestMovesAndUnknown(t *testing.T) {
	_, _, out := runScript(t, Config{}, "moves 52\nmoves 43\nfoo\ncolor neon\nverbose\n")

	require.Contains(t, out, "52-41 52-43")
	require.Contains(t, out, "No legal moves.")
	require.Contains(t, out, `Unknown command "foo"`)
	require.Contains(t, out, "invalid theme: neon")
	require.Contains(t, out, "Verbose mode: true")
}

func TestRejectedMoves(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"empty square", "43-34\n", game.ErrEmptySquare.Error()},
		{"opponent piece", "21-32\n", game.ErrNotYourPiece.Error()},
		{"illegal destination", "52-32\n", game.ErrIllegalDestination.Error()},
		{"select empty", "select 44\n", game.ErrEmptySquare.Error()},
		{"select opponent", "select 21\n", game.ErrNotYourPiece.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, out := runScript(t, Config{}, tt.script)
			require.Contains(t, out, tt.want)
			require.Empty(t, currentGame(t, h, svc).Moves())
		})
	}
}
