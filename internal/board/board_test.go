package board

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func mustLayout(t *testing.T, layout string) Board {
	t.Helper()
	b, err := ParseLayout(layout)
	require.NoError(t, err)
	return b
}

func TestStartingBoard(t *testing.T) {
	b := NewStartingBoard()

	require.Equal(t, 12, b.Count(Player1))
	require.Equal(t, 12, b.Count(Player2))
	require.Equal(t, StartingLayout, b.Layout())

	for _, pos := range b.Pieces(Player2) {
		require.Less(t, pos.Row, 3, spew.Sdump(pos))
		require.Equal(t, 1, (pos.Row+pos.Col)%2)
	}
	for _, pos := range b.Pieces(Player1) {
		require.Greater(t, pos.Row, 4, spew.Sdump(pos))
		require.False(t, b.IsKing(pos))
	}
}

func TestQueriesAreFailSafe(t *testing.T) {
	b := NewStartingBoard()
	outside := []Position{Pos(-1, 0), Pos(0, -1), Pos(8, 0), Pos(0, 8), Pos(100, 100)}

	for _, pos := range outside {
		require.Equal(t, NoPlayer, b.OwnerOf(pos))
		require.False(t, b.IsKing(pos))
		require.False(t, b.IsEmpty(pos))
		require.Equal(t, Empty, b.At(pos))
	}

	require.Panics(t, func() { b.Set(Pos(8, 8), Player1Man) })
}

func TestCellOwnership(t *testing.T) {
	tests := []struct {
		cell  Cell
		owner Player
		king  bool
	}{
		{Empty, NoPlayer, false},
		{Player1Man, Player1, false},
		{Player2Man, Player2, false},
		{Player1King, Player1, true},
		{Player2King, Player2, true},
	}

	for _, tt := range tests {
		t.Run(tt.cell.String(), func(t *testing.T) {
			require.Equal(t, tt.owner, tt.cell.Owner())
			require.Equal(t, tt.king, tt.cell.IsKing())
		})
	}

	require.Equal(t, Player1King, Player1Man.Crowned())
	require.Equal(t, Player2King, Player2Man.Crowned())
	require.Equal(t, Player1King, Player1King.Crowned())
}

func TestLayoutRoundTrip(t *testing.T) {
	layout := "......../..o...../...X..../......../.O....../......../.x....../........"
	b := mustLayout(t, layout)

	require.Equal(t, layout, b.Layout())
	require.Equal(t, Player2Man, b.At(Pos(1, 2)))
	require.Equal(t, Player1King, b.At(Pos(2, 3)))
	require.Equal(t, Player2King, b.At(Pos(4, 1)))
	require.Equal(t, Player1Man, b.At(Pos(6, 1)))
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
	}{
		{"too few rows", "......../........"},
		{"short row", "......./......../......../......../......../......../......../........"},
		{"unknown symbol", "...q..../......../......../......../......../......../......../........"},
		{"light square", "......../......../x......./......../......../......../......../........"},
		{"player 1 man on promotion row", ".x....../......../......../......../......../......../......../........"},
		{"player 2 man on promotion row", "......../......../......../......../......../......../......../o......."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.layout)
			require.Error(t, err)
		})
	}
}

func TestParseMoveText(t *testing.T) {
	tests := []struct {
		in       string
		from, to Position
		wantErr  bool
	}{
		{in: "52-43", from: Pos(5, 2), to: Pos(4, 3)},
		{in: "52x34", from: Pos(5, 2), to: Pos(3, 4)},
		{in: "5243", from: Pos(5, 2), to: Pos(4, 3)},
		{in: "52 43", from: Pos(5, 2), to: Pos(4, 3)},
		{in: "5,2 4,3", from: Pos(5, 2), to: Pos(4, 3)},
		{in: "52", wantErr: true},
		{in: "58-43", wantErr: true},
		{in: "ab-cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			from, to, err := ParseMoveText(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.from, from)
			require.Equal(t, tt.to, to)
		})
	}
}

func TestMoveNotation(t *testing.T) {
	require.Equal(t, "52-43", SimpleMove(Pos(5, 2), Pos(4, 3)).String())

	j := JumpMove(Pos(5, 2), Pos(3, 4))
	require.Equal(t, "52x34", j.String())
	require.Equal(t, Pos(4, 3), j.Captured)
	require.True(t, j.IsJump())
}
