// FILE: internal/cli/cli.go
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdUnknown
	CmdNew
	CmdReset
	CmdMove
	CmdSelect
	CmdDeselect
	CmdSquare
	CmdMoves
	CmdComputer
	CmdColor
	CmdHistory
	CmdSnapshot
	CmdLoad
	CmdVerbose
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg  string
	darkBg   string
	targetBg string
	player1  string
	player2  string
	reset    string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg:  "\033[48;5;230m", // Beige
		darkBg:   "\033[48;5;94m",  // Brown
		targetBg: "\033[48;5;136m",
		player1:  "\033[1;91m",
		player2:  "\033[1;97m",
		reset:    "\033[0m",
	},
	ThemeGreen: {
		lightBg:  "\033[48;5;157m", // Light green
		darkBg:   "\033[48;5;22m",  // Dark green
		targetBg: "\033[48;5;28m",
		player1:  "\033[1;91m",
		player2:  "\033[1;97m",
		reset:    "\033[0m",
	},
	ThemeGray: {
		lightBg:  "\033[48;5;251m", // Light gray
		darkBg:   "\033[48;5;240m", // Dark gray
		targetBg: "\033[48;5;244m",
		player1:  "\033[1;91m",
		player2:  "\033[1;97m",
		reset:    "\033[0m",
	},
}

// LineReader is the prompt-driven input the view reads commands from.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewScannerReader reads lines from a non-interactive source, echoing the
// prompt to out.
func NewScannerReader(in io.Reader, out io.Writer) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(in), out: out}
}

func (s *scannerReader) Readline() (string, error) {
	fmt.Fprint(s.out, s.prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scannerReader) SetPrompt(prompt string) {
	s.prompt = prompt
}

func (s *scannerReader) Close() error {
	return nil
}

type CLI struct {
	input   LineReader
	output  io.Writer
	theme   ColorTheme
	verbose bool
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		theme:  ThemeOff,
	}
}

// GetCommand shows prompt and reads one command
func (c *CLI) GetCommand(prompt string) (*Command, error) {
	c.input.SetPrompt(prompt)
	line, err := c.input.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return &Command{Type: CmdNone}, nil
	case errors.Is(err, io.EOF):
		return &Command{Type: CmdQuit}, nil
	case err != nil:
		return nil, err
	}

	return ParseCommand(line), nil
}

// ParseCommand maps a line of input to a command. Text that is neither a
// keyword, a move nor a square is CmdUnknown.
func ParseCommand(input string) *Command {
	input = strings.TrimSpace(input)
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args, Raw: input}
	case "reset", "restart":
		return &Command{Type: CmdReset, Raw: input}
	case "select", "s":
		return &Command{Type: CmdSelect, Args: args, Raw: input}
	case "deselect", "d":
		return &Command{Type: CmdDeselect, Raw: input}
	case "moves", "m":
		return &Command{Type: CmdMoves, Args: args, Raw: input}
	case "computer", "ai":
		return &Command{Type: CmdComputer, Args: args, Raw: input}
	case "color":
		return &Command{Type: CmdColor, Args: args, Raw: input}
	case "history":
		return &Command{Type: CmdHistory, Raw: input}
	case "snapshot":
		return &Command{Type: CmdSnapshot, Raw: input}
	case "load":
		return &Command{Type: CmdLoad, Args: []string{strings.Join(args, " ")}, Raw: input}
	case "verbose":
		return &Command{Type: CmdVerbose, Raw: input}
	case "help", "?":
		return &Command{Type: CmdHelp, Raw: input}
	case "quit", "exit", "q":
		return &Command{Type: CmdQuit, Raw: input}
	}

	if _, _, err := board.ParseMoveText(input); err == nil {
		return &Command{Type: CmdMove, Args: []string{input}, Raw: input}
	}
	if _, err := board.ParsePosition(input); err == nil {
		return &Command{Type: CmdSquare, Args: []string{input}, Raw: input}
	}
	return &Command{Type: CmdUnknown, Args: parts, Raw: input}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) IsVerbose() bool {
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

// DisplayBoard draws the position, marking the selected piece and the
// squares it can reach. sel may be nil.
func (c *CLI) DisplayBoard(s game.State, sel *game.Selection) {
	theme := themes[c.theme]
	b := s.Board()

	var selected board.Position
	var held bool
	targets := map[board.Position]bool{}
	if sel != nil {
		selected, held = sel.Selected()
		for _, m := range sel.Targets() {
			targets[m.To] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("\n    0  1  2  3  4  5  6  7\n")
	for r := 0; r < board.Size; r++ {
		sb.WriteString(fmt.Sprintf("%d  ", r))
		for col := 0; col < board.Size; col++ {
			pos := board.Pos(r, col)
			cell := b.At(pos)
			isSelected := held && pos == selected

			if c.theme == ThemeOff {
				sb.WriteString(plainCell(pos, cell, isSelected, targets[pos]))
				continue
			}

			bg := theme.lightBg
			if (r+col)%2 == 1 {
				bg = theme.darkBg
			}
			if targets[pos] || isSelected {
				bg = theme.targetBg
			}

			switch {
			case cell == board.Empty && targets[pos]:
				sb.WriteString(fmt.Sprintf("%s * %s", bg, theme.reset))
			case cell == board.Empty:
				sb.WriteString(fmt.Sprintf("%s   %s", bg, theme.reset))
			default:
				color := theme.player2
				if cell.Owner() == board.Player1 {
					color = theme.player1
				}
				sb.WriteString(fmt.Sprintf("%s%s %c %s", bg, color, cell.Symbol(), theme.reset))
			}
		}
		sb.WriteString(fmt.Sprintf("  %d\n", r))
	}
	sb.WriteString("    0  1  2  3  4  5  6  7\n")

	c.ShowMessage(sb.String())
}

func plainCell(pos board.Position, cell board.Cell, selected, target bool) string {
	switch {
	case selected:
		return fmt.Sprintf("[%c]", cell.Symbol())
	case target:
		return " * "
	case cell != board.Empty:
		return fmt.Sprintf(" %c ", cell.Symbol())
	case (pos.Row+pos.Col)%2 == 1:
		return " . "
	default:
		return "   "
	}
}

// Banner is the one-line turn status shown above the prompt.
func Banner(s game.State) string {
	if s.IsOver() {
		return "Game over: " + s.Outcome().String()
	}

	banner := fmt.Sprintf("%s turn", s.CurrentPlayer())
	switch s.Phase() {
	case game.MultiJumpContinuation:
		banner += " - MULTI-JUMP IN PROGRESS!"
	default:
		if s.MustJump() {
			banner += " - MUST JUMP!"
		}
	}
	return banner
}

func (c *CLI) ShowStatus(s game.State) {
	c.ShowMessage(Banner(s))
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("Moves since capture: %d/%d", s.MovesSinceCapture(), game.DrawThreshold))
	}
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new [h|c] [h|c]  - Start a new game, optionally seating Player 1 and Player 2
  reset            - Restart the current game from the opening position
  <from>-<to>      - Move a piece, e.g. 52-43 or 52x34 (row then column)
  select <pos>     - Pick up a piece, e.g. select 52
  deselect         - Put the selected piece back
  <pos>            - Move the selected piece there, or pick up a piece
  moves [pos]      - List legal moves, for one square or the player to move
  computer <who>   - Computer plays none, 1, 2 or both sides
  color <theme>    - Set board color theme (off|brown|green|gray)
  history          - Show the moves played so far
  snapshot         - Print the position as a snapshot string
  load <snapshot>  - Start a game from a snapshot string
  verbose          - Toggle detailed move information
  quit/exit        - Exit the program
  help/?           - Show this help message

Player 1 (x, kings X) moves up the board, Player 2 (o, kings O) moves down.
Jumps are mandatory and a jumping piece must keep jumping while it can.`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Checkers!")
	c.ShowMessage("Squares are <row><col>, row 0 at the top. Move with e.g. '52-43'.")
	c.ShowMessage("Type 'help' for all commands.")
	c.ShowMessage("")
}

func (c *CLI) ShowHistory(g *game.Game) {
	history := g.History()
	if len(history) == 0 {
		c.ShowMessage("No moves played yet.")
		return
	}

	// Chain steps share a turn number
	turn := 0
	var last board.Player
	for _, r := range history {
		if r.Side != last {
			turn++
			last = r.Side
		}
		c.ShowMessage(fmt.Sprintf("%3d. %s: %s", turn, r.Side, r.Move))
	}
	c.ShowMessage(fmt.Sprintf("Position: %s", g.State().Snapshot()))
	c.ShowMessage(fmt.Sprintf("Game state: %s", g.Status()))
}

func (c *CLI) ShowComputerMove(result game.MoveResult, candidates int) {
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("Computer (%s): %s (%d candidates)", result.Player, result.Move, candidates))
	} else {
		c.ShowMessage(fmt.Sprintf("Computer (%s): %s", result.Player, result.Move))
	}
}

func (c *CLI) ShowHumanMove(result game.MoveResult) {
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("%s: %s", result.Player, result.Move))
	}
}

func (c *CLI) ShowGameOver(state core.State) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s", state))
	c.ShowMessage("Start again with 'reset' or 'new'.")
}
