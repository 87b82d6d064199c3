// Package main runs checkers in the terminal against the computer or a
// second player at the same keyboard.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"checkers/internal/cli"
	"checkers/internal/core"
	"checkers/internal/engine"
	"checkers/internal/logging"
	"checkers/internal/service"
	clitransport "checkers/internal/transport/cli"
)

const defaultDelay = time.Second

func main() {
	var (
		computer = flag.String("computer", "2", "Computer side: none, 1, 2 or both")
		delay    = flag.Duration("delay", defaultDelay, "Pause before each computer move")
		seed     = flag.Uint64("seed", 0, "Computer move seed (0 = time based)")
		theme    = flag.String("theme", "", "Board colors: off, brown, green or gray (default brown on a terminal)")
		history  = flag.String("history", defaultHistoryFile(), "Readline history file")
		debug    = flag.Bool("debug", false, "Debug logging on stderr")
	)
	flag.Parse()

	if *debug {
		logging.Setup(os.Stderr, true)
	} else {
		logging.Setup(io.Discard, false)
	}

	p1, p2, err := seating(*computer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	var input cli.LineReader
	if interactive {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "> ",
			HistoryFile:     *history,
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
			os.Exit(1)
		}
		input = rl
	} else {
		input = cli.NewScannerReader(os.Stdin, os.Stdout)
	}
	defer input.Close()

	view := cli.New(input, os.Stdout)
	if *theme == "" {
		*theme = string(cli.ThemeOff)
		if interactive {
			*theme = string(cli.ThemeBrown)
		}
	}
	if err = view.SetTheme(cli.ColorTheme(*theme)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	svc := service.New()
	defer svc.Shutdown(defaultDelay)

	handler := clitransport.New(svc, view, engine.NewRandom(*seed), clitransport.Config{
		Player1: p1,
		Player2: p2,
		Delay:   *delay,
	})

	view.ShowWelcome()
	handler.Run() // All game loop logic is in the handler
}

func seating(computer string) (core.PlayerType, core.PlayerType, error) {
	switch computer {
	case "none":
		return core.PlayerHuman, core.PlayerHuman, nil
	case "1":
		return core.PlayerComputer, core.PlayerHuman, nil
	case "2":
		return core.PlayerHuman, core.PlayerComputer, nil
	case "both":
		return core.PlayerComputer, core.PlayerComputer, nil
	default:
		return 0, 0, fmt.Errorf("invalid -computer %q (use: none, 1, 2, both)", computer)
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".checkers_history"
	}
	return filepath.Join(home, ".checkers_history")
}
