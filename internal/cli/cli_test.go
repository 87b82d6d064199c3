package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/board"
	"checkers/internal/game"
)

func mustSnapshot(t *testing.T, text string) game.State {
	t.Helper()
	s, err := game.ParseSnapshot(text)
	require.NoError(t, err)
	return s
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  CommandType
		args  []string
	}{
		{"", CmdNone, nil},
		{"   ", CmdNone, nil},
		{"new", CmdNew, []string{}},
		{"new h c", CmdNew, []string{"h", "c"}},
		{"reset", CmdReset, nil},
		{"52-43", CmdMove, []string{"52-43"}},
		{"52x34", CmdMove, []string{"52x34"}},
		{"52 43", CmdMove, []string{"52 43"}},
		{"5243", CmdMove, []string{"5243"}},
		{"select 52", CmdSelect, []string{"52"}},
		{"deselect", CmdDeselect, nil},
		{"d", CmdDeselect, nil},
		{"43", CmdSquare, []string{"43"}},
		{"4,3", CmdSquare, []string{"4,3"}},
		{"moves", CmdMoves, []string{}},
		{"moves 52", CmdMoves, []string{"52"}},
		{"computer both", CmdComputer, []string{"both"}},
		{"color green", CmdColor, []string{"green"}},
		{"history", CmdHistory, nil},
		{"snapshot", CmdSnapshot, nil},
		{"load a b c d", CmdLoad, []string{"a b c d"}},
		{"verbose", CmdVerbose, nil},
		{"?", CmdHelp, nil},
		{"EXIT", CmdQuit, nil},
		{"88", CmdUnknown, []string{"88"}},
		{"castle", CmdUnknown, []string{"castle"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := ParseCommand(tt.input)
			require.Equal(t, tt.want, cmd.Type)
			if tt.args != nil {
				require.Equal(t, tt.args, cmd.Args)
			}
		})
	}
}

func TestGetCommandFromScanner(t *testing.T) {
	var out bytes.Buffer
	view := New(NewScannerReader(strings.NewReader("52-43\n"), &out), &out)

	cmd, err := view.GetCommand("[P1]> ")
	require.NoError(t, err)
	require.Equal(t, CmdMove, cmd.Type)
	require.Equal(t, "[P1]> ", out.String())

	cmd, err = view.GetCommand("[P2]> ")
	require.NoError(t, err)
	require.Equal(t, CmdQuit, cmd.Type, "end of input quits")
}

func TestBanner(t *testing.T) {
	tests := []struct {
		name  string
		state game.State
		want  string
	}{
		{"opening", game.New(), "Player 1 turn"},
		{
			"jump pending",
			mustSnapshot(t, "......../......../......../......../...o..../..x...../......../........ 1 0 -"),
			"Player 1 turn - MUST JUMP!",
		},
		{
			"chain",
			mustSnapshot(t, "......../......../...o..../..x...../......../......../.....O../........ 1 0 32"),
			"Player 1 turn - MULTI-JUMP IN PROGRESS!",
		},
		{
			"finished",
			mustSnapshot(t, "......../......../......../......../......../..x...../.X....../O....... 2 0 -"),
			"Game over: Player 1 wins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Banner(tt.state))
		})
	}
}

func TestDisplayBoardMarksSelection(t *testing.T) {
	var out bytes.Buffer
	view := New(NewScannerReader(strings.NewReader(""), &out), &out)

	sel := game.NewSelection(game.New())
	require.NoError(t, sel.Select(board.Pos(5, 2)))

	view.DisplayBoard(sel.State(), sel)
	text := out.String()
	require.Contains(t, text, "0  1  2  3  4  5  6  7")
	require.Contains(t, text, "[x]")
	require.Equal(t, 2, strings.Count(text, " * "), "both forward steps are marked")

	out.Reset()
	view.DisplayBoard(game.New(), nil)
	require.NotContains(t, out.String(), "[x]")
	require.Equal(t, 12, strings.Count(out.String(), " x "))
	require.Equal(t, 12, strings.Count(out.String(), " o "))
}

func TestThemes(t *testing.T) {
	var out bytes.Buffer
	view := New(NewScannerReader(strings.NewReader(""), &out), &out)

	require.Error(t, view.SetTheme("neon"))
	require.NoError(t, view.SetTheme(ThemeGreen))

	view.DisplayBoard(game.New(), nil)
	require.Contains(t, out.String(), themes[ThemeGreen].darkBg)
	require.Contains(t, out.String(), themes[ThemeGreen].reset)
}

func TestShowHistoryGroupsChainSteps(t *testing.T) {
	var out bytes.Buffer
	view := New(NewScannerReader(strings.NewReader(""), &out), &out)

	view.ShowHistory(game.NewGame(game.New(), nil, nil))
	require.Contains(t, out.String(), "No moves played yet.")

	g := game.NewGame(mustSnapshot(t,
		"......../......../...o..../......../.o....../x......./......../......O. 1 0 -"), nil, nil)
	_, err := g.Apply(board.Pos(5, 0), board.Pos(3, 2))
	require.NoError(t, err)
	_, err = g.Apply(board.Pos(3, 2), board.Pos(1, 4))
	require.NoError(t, err)

	out.Reset()
	view.ShowHistory(g)
	require.Contains(t, out.String(), "  1. Player 1: 50x32")
	require.Contains(t, out.String(), "  1. Player 1: 32x14")
}
