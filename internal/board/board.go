// FILE: internal/board/board.go
package board

import (
	"fmt"
	"strings"
)

const (
	Size = 8

	StartingLayout = ".o.o.o.o/o.o.o.o./.o.o.o.o/......../......../x.x.x.x./.x.x.x.x/x.x.x.x."
)

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	Player1Man
	Player2Man
	Player1King
	Player2King
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Player1Man:
		return "player1"
	case Player2Man:
		return "player2"
	case Player1King:
		return "player1_king"
	case Player2King:
		return "player2_king"
	default:
		return "unknown"
	}
}

// Owner returns the side a cell belongs to, NoPlayer for empty squares.
func (c Cell) Owner() Player {
	switch c {
	case Player1Man, Player1King:
		return Player1
	case Player2Man, Player2King:
		return Player2
	default:
		return NoPlayer
	}
}

func (c Cell) IsKing() bool {
	return c == Player1King || c == Player2King
}

// Crowned returns the king cell for a man, or the cell unchanged.
func (c Cell) Crowned() Cell {
	switch c {
	case Player1Man:
		return Player1King
	case Player2Man:
		return Player2King
	default:
		return c
	}
}

// Player identifies a side.
type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "none"
	}
}

func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// PromotionRow is the far row a man of p is crowned on.
func (p Player) PromotionRow() int {
	if p == Player1 {
		return 0
	}
	return Size - 1
}

// Position is a (row, col) square coordinate, row 0 at the top.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// String renders the two digit "<row><col>" notation.
func (p Position) String() string {
	return fmt.Sprintf("%d%d", p.Row, p.Col)
}

// Board is an 8x8 grid. It is a value type; copying a Board copies the grid.
type Board struct {
	squares [Size][Size]Cell
}

// NewStartingBoard returns the standard opening: Player 2 men on rows 0-2,
// Player 1 men on rows 5-7, on the squares where row+col is odd.
func NewStartingBoard() Board {
	var b Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if (r+c)%2 == 0 {
				continue
			}
			switch {
			case r < 3:
				b.squares[r][c] = Player2Man
			case r > 4:
				b.squares[r][c] = Player1Man
			}
		}
	}
	return b
}

// At returns the cell at pos, Empty when pos is off the board.
func (b Board) At(pos Position) Cell {
	if !pos.InBounds() {
		return Empty
	}
	return b.squares[pos.Row][pos.Col]
}

// Set places a cell. Writing outside the board is a programming error.
func (b *Board) Set(pos Position, c Cell) {
	if !pos.InBounds() {
		panic(fmt.Sprintf("board: set out of bounds %v", pos))
	}
	b.squares[pos.Row][pos.Col] = c
}

func (b Board) OwnerOf(pos Position) Player {
	return b.At(pos).Owner()
}

func (b Board) IsKing(pos Position) bool {
	return b.At(pos).IsKing()
}

func (b Board) IsEmpty(pos Position) bool {
	return pos.InBounds() && b.squares[pos.Row][pos.Col] == Empty
}

// Grid returns the row-major cell grid.
func (b Board) Grid() [Size][Size]Cell {
	return b.squares
}

// Pieces returns the positions owned by p in row-major order.
func (b Board) Pieces(p Player) []Position {
	var out []Position
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.squares[r][c].Owner() == p {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

func (b Board) Count(p Player) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.squares[r][c].Owner() == p {
				n++
			}
		}
	}
	return n
}

var cellRunes = map[Cell]byte{
	Empty:       '.',
	Player1Man:  'x',
	Player1King: 'X',
	Player2Man:  'o',
	Player2King: 'O',
}

// Symbol returns the single character used by Layout.
func (c Cell) Symbol() byte {
	if r, ok := cellRunes[c]; ok {
		return r
	}
	return '?'
}

// Layout encodes the grid as eight '/'-separated rows, row 0 first.
func (b Board) Layout() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < Size; c++ {
			sb.WriteByte(b.squares[r][c].Symbol())
		}
	}
	return sb.String()
}

// ParseLayout decodes the Layout form.
func ParseLayout(layout string) (Board, error) {
	var b Board
	rows := strings.Split(layout, "/")
	if len(rows) != Size {
		return b, fmt.Errorf("invalid layout: expected %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("invalid layout: row %d has %d squares", r, len(row))
		}
		for c := 0; c < Size; c++ {
			cell, ok := parseSymbol(row[c])
			if !ok {
				return b, fmt.Errorf("invalid layout: unknown symbol %q at %d%d", row[c], r, c)
			}
			if cell != Empty && (r+c)%2 == 0 {
				return b, fmt.Errorf("invalid layout: piece on light square %d%d", r, c)
			}
			if cell != Empty && !cell.IsKing() && r == cell.Owner().PromotionRow() {
				return b, fmt.Errorf("invalid layout: uncrowned man on promotion row %d%d", r, c)
			}
			b.squares[r][c] = cell
		}
	}
	return b, nil
}

func parseSymbol(ch byte) (Cell, bool) {
	for cell, sym := range cellRunes {
		if sym == ch {
			return cell, true
		}
	}
	return Empty, false
}

// ToASCII creates an ASCII representation of the board
func (b Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")

	for r := 0; r < Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r))
		for c := 0; c < Size; c++ {
			sb.WriteString(fmt.Sprintf("%c ", b.squares[r][c].Symbol()))
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r))
	}
	sb.WriteString("  0 1 2 3 4 5 6 7")

	return sb.String()
}
