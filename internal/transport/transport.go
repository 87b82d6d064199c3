// FILE: internal/transport/transport.go
package transport

import (
	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
)

// Handler processes user commands independent of transport medium
type Handler interface {
	HandleNewGame(snapshot string, player1, player2 core.PlayerType) error
	HandleMove(gameID string, from, to board.Position) error
	HandleReset(gameID string) error
	HandleGetGame(gameID string) (*game.Game, error)
}

// View abstracts display/output operations
type View interface {
	DisplayBoard(s game.State, sel *game.Selection)
	ShowStatus(s game.State)
	ShowMessage(msg string)
	ShowError(err error)
	ShowHistory(g *game.Game)
	ShowComputerMove(result game.MoveResult, candidates int)
	ShowHumanMove(result game.MoveResult)
	ShowGameOver(state core.State)
	ShowHelp()
}
