package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/board"
	"checkers/internal/core"
)

func newSession() *Game {
	return NewGame(New(),
		core.NewPlayer(core.PlayerConfig{Type: core.PlayerHuman}, board.Player1),
		core.NewPlayer(core.PlayerConfig{Type: core.PlayerComputer}, board.Player2),
	)
}

func TestGameApplyRecordsHistory(t *testing.T) {
	g := newSession()
	require.Equal(t, core.StateOngoing, g.Status())
	require.Equal(t, core.PlayerHuman, g.NextPlayer().Type)

	result, err := g.Apply(board.Pos(5, 2), board.Pos(4, 3))
	require.NoError(t, err)
	require.Equal(t, board.Player1, result.Player)
	require.Equal(t, "52-43", result.Move.String())
	require.False(t, result.Continues)
	require.Equal(t, core.PlayerComputer, g.NextPlayer().Type)
	require.Equal(t, []string{"52-43"}, g.Moves())
	require.Equal(t, &result, g.LastResult())

	version := g.Version()
	_, err = g.Apply(board.Pos(5, 0), board.Pos(4, 1))
	require.ErrorIs(t, err, ErrNotYourPiece)
	require.Equal(t, version, g.Version(), "rejected moves change nothing")
	require.Len(t, g.History(), 1)
}

func TestGameChainResult(t *testing.T) {
	g := newSession()
	s := fixture(board.Player1, 0, pieces{
		board.Pos(5, 0): board.Player1Man,
		board.Pos(4, 1): board.Player2Man,
		board.Pos(2, 3): board.Player2Man,
		board.Pos(0, 7): board.Player2Man,
	})
	g.state = s

	result, err := g.Apply(board.Pos(5, 0), board.Pos(3, 2))
	require.NoError(t, err)
	require.True(t, result.Continues)
	require.Equal(t, "50x32", result.Move.String())
	require.Equal(t, core.PlayerHuman, g.NextPlayer().Type)

	result, err = g.Apply(board.Pos(3, 2), board.Pos(1, 4))
	require.NoError(t, err)
	require.False(t, result.Continues)
	require.Equal(t, []string{"50x32", "32x14"}, g.Moves())
}

func TestGameResetAndPending(t *testing.T) {
	g := newSession()
	_, err := g.Apply(board.Pos(5, 2), board.Pos(4, 3))
	require.NoError(t, err)

	g.SetPending(true)
	require.Equal(t, core.StatePending, g.Status())

	epoch := g.Epoch()
	g.Reset()
	require.Equal(t, epoch+1, g.Epoch())
	require.False(t, g.Pending())
	require.Empty(t, g.Moves())
	require.Nil(t, g.LastResult())
	require.Equal(t, StartingSnapshot, g.State().Snapshot())
}

func TestGameCloneIsIndependent(t *testing.T) {
	g := newSession()
	c := g.Clone()

	_, err := g.Apply(board.Pos(5, 2), board.Pos(4, 3))
	require.NoError(t, err)
	g.UpdatePlayers(
		core.NewPlayer(core.PlayerConfig{Type: core.PlayerComputer}, board.Player1),
		g.GetPlayer(board.Player2),
	)

	require.Empty(t, c.Moves())
	require.Equal(t, StartingSnapshot, c.State().Snapshot())
	require.Equal(t, core.PlayerHuman, c.GetPlayer(board.Player1).Type)
}
