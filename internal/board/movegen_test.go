package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpeningMoves(t *testing.T) {
	b := NewStartingBoard()

	moves := b.AllMovesFor(Player1)
	require.Len(t, moves, 7)
	for _, m := range moves {
		require.Equal(t, Simple, m.Kind)
		require.Equal(t, 5, m.From.Row)
		require.Equal(t, 4, m.To.Row)
	}
	require.Empty(t, b.AllJumpsFor(Player1))

	require.Len(t, b.AllMovesFor(Player2), 7)
	require.Equal(t, []Move{SimpleMove(Pos(5, 0), Pos(4, 1))}, b.MovesFrom(Pos(5, 0)))
	require.Empty(t, b.MovesFrom(Pos(6, 1)), "blocked back-row man")
	require.Empty(t, b.MovesFrom(Pos(3, 3)), "empty square")
}

func TestForcedSingleJump(t *testing.T) {
	var b Board
	b.Set(Pos(5, 2), Player1Man)
	b.Set(Pos(4, 3), Player2Man)

	want := []Move{{Kind: Jump, From: Pos(5, 2), To: Pos(3, 4), Captured: Pos(4, 3)}}
	require.Equal(t, want, b.JumpsFrom(Pos(5, 2)))
	require.Equal(t, want, b.MovesFrom(Pos(5, 2)), "jumps replace simple moves")
	require.Equal(t, want, b.AllMovesFor(Player1))
	require.Equal(t, []PieceJumps{{From: Pos(5, 2), Jumps: want}}, b.AllJumpsFor(Player1))
}

func TestGlobalJumpExcludesOtherPieces(t *testing.T) {
	var b Board
	b.Set(Pos(5, 2), Player1Man)
	b.Set(Pos(4, 3), Player2Man)
	b.Set(Pos(6, 7), Player1Man)

	require.Len(t, b.MovesFrom(Pos(6, 7)), 1, "piece-level list still has its step")
	for _, m := range b.AllMovesFor(Player1) {
		require.Equal(t, Pos(5, 2), m.From)
	}
}

func TestJumpBlockers(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board)
	}{
		{"own piece in the middle", func(b *Board) { b.Set(Pos(4, 3), Player1Man) }},
		{"landing occupied", func(b *Board) {
			b.Set(Pos(4, 3), Player2Man)
			b.Set(Pos(3, 4), Player2Man)
		}},
		{"landing off the board", func(b *Board) {
			b.Set(Pos(5, 2), Empty)
			b.Set(Pos(1, 1), Player1Man)
			b.Set(Pos(0, 0), Player2Man)
		}},
		{"man cannot jump backward", func(b *Board) { b.Set(Pos(6, 3), Player2Man) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			b.Set(Pos(5, 2), Player1Man)
			tt.setup(&b)
			require.Empty(t, b.AllJumpsFor(Player1), b.ToASCII())
		})
	}
}

func TestDirectionOrder(t *testing.T) {
	var b Board
	b.Set(Pos(4, 4), Player1King)

	moves := b.MovesFrom(Pos(4, 4))
	require.Equal(t, []Move{
		SimpleMove(Pos(4, 4), Pos(3, 3)),
		SimpleMove(Pos(4, 4), Pos(3, 5)),
		SimpleMove(Pos(4, 4), Pos(5, 3)),
		SimpleMove(Pos(4, 4), Pos(5, 5)),
	}, moves)

	b.Set(Pos(3, 3), Player2Man)
	b.Set(Pos(5, 5), Player2King)
	require.Equal(t, []Move{
		JumpMove(Pos(4, 4), Pos(2, 2)),
		JumpMove(Pos(4, 4), Pos(6, 6)),
	}, b.MovesFrom(Pos(4, 4)))
}

func TestPlayer2DirectionAndKings(t *testing.T) {
	var b Board
	b.Set(Pos(2, 3), Player2Man)
	b.Set(Pos(3, 4), Player1Man)

	require.Equal(t, []Move{JumpMove(Pos(2, 3), Pos(4, 5))}, b.JumpsFrom(Pos(2, 3)))

	b.Set(Pos(1, 2), Player1Man)
	require.Len(t, b.JumpsFrom(Pos(2, 3)), 1, "men never capture backward")

	b.Set(Pos(2, 3), Player2King)
	require.Equal(t, []Move{
		JumpMove(Pos(2, 3), Pos(0, 1)),
		JumpMove(Pos(2, 3), Pos(4, 5)),
	}, b.JumpsFrom(Pos(2, 3)))
}

func TestAllJumpsRowMajor(t *testing.T) {
	var b Board
	b.Set(Pos(6, 1), Player1Man)
	b.Set(Pos(5, 2), Player2Man)
	b.Set(Pos(3, 6), Player1Man)
	b.Set(Pos(2, 5), Player2Man)

	groups := b.AllJumpsFor(Player1)
	require.Len(t, groups, 2)
	require.Equal(t, Pos(3, 6), groups[0].From)
	require.Equal(t, Pos(6, 1), groups[1].From)
}
