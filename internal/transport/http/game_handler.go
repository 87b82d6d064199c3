// FILE: internal/transport/http/game_handler.go
package http

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/processor"
	"checkers/internal/service"
)

func invalidGameID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
		Error:   "invalid game ID format",
		Code:    core.ErrInvalidRequest,
		Details: "game ID must be a valid UUID",
	})
}

func bypassed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
		Error: err.Error(),
		Code:  core.ErrInternalError,
	})
}

// respond writes a processor response
func respond(c *fiber.Ctx, resp processor.ProcessorResponse, okStatus int) error {
	if !resp.Success {
		return c.Status(statusFor(resp.Error.Code)).JSON(resp.Error)
	}
	if resp.Data == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(okStatus).JSON(resp.Data)
}

// CreateGame creates a new game with specified player types
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, err := validatedBody[core.CreateGameRequest](c)
	if err != nil {
		return bypassed(c, err)
	}

	resp := h.proc.Execute(processor.NewCreateGameCommand(req))
	return respond(c, resp, fiber.StatusCreated)
}

// ConfigurePlayers switches either side between human and computer
func (h *HTTPHandler) ConfigurePlayers(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	req, err := validatedBody[core.ConfigurePlayersRequest](c)
	if err != nil {
		return bypassed(c, err)
	}

	resp := h.proc.Execute(processor.NewConfigurePlayersCommand(gameID, req))
	return respond(c, resp, fiber.StatusOK)
}

// GetGame retrieves current game state, optionally waiting for a change
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	if c.Query("wait", "false") != "true" {
		return respond(c, h.proc.Execute(processor.NewGetGameCommand(gameID)), fiber.StatusOK)
	}

	// Long-polling path
	version, err := strconv.Atoi(c.Query("version", "-1"))
	if err != nil {
		version = -1
	}

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
			Error: "game not found",
			Code:  core.ErrGameNotFound,
		})
	}

	// Client is already behind, answer immediately
	if version != g.Version() {
		return respond(c, h.proc.Execute(processor.NewGetGameCommand(gameID)), fiber.StatusOK)
	}

	ctx, cancel := context.WithTimeout(context.Background(), service.WaitTimeout+time.Second)
	defer cancel()
	notify := h.svc.RegisterWait(ctx, gameID, version)

	select {
	case <-notify:
		// State changed, timed out or game deleted
		return respond(c, h.proc.Execute(processor.NewGetGameCommand(gameID)), fiber.StatusOK)
	case <-ctx.Done():
		return nil
	}
}

// MakeMove submits a move for the human player to move
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	req, err := validatedBody[core.MoveRequest](c)
	if err != nil {
		return bypassed(c, err)
	}

	resp := h.proc.Execute(processor.NewMakeMoveCommand(gameID, req))
	return respond(c, resp, fiber.StatusOK)
}

// ResetGame restores the opening position
func (h *HTTPHandler) ResetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	return respond(c, h.proc.Execute(processor.NewResetGameCommand(gameID)), fiber.StatusOK)
}

// DeleteGame ends and cleans up a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	return respond(c, h.proc.Execute(processor.NewDeleteGameCommand(gameID)), fiber.StatusNoContent)
}

// GetBoard returns ASCII and grid representations of the board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	return respond(c, h.proc.Execute(processor.NewGetBoardCommand(gameID)), fiber.StatusOK)
}

// GetLegalMoves lists legal moves, for one square when row and col are given
func (h *HTTPHandler) GetLegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	var query processor.LegalMovesQuery
	rowStr, colStr := c.Query("row"), c.Query("col")
	if rowStr != "" || colStr != "" {
		pos, err := board.ParsePosition(rowStr + colStr)
		if err != nil || len(rowStr) != 1 || len(colStr) != 1 {
			return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
				Error:   "invalid square",
				Code:    core.ErrInvalidRequest,
				Details: "row and col must both be digits 0-7",
			})
		}
		query.Position = &pos
	}

	return respond(c, h.proc.Execute(processor.NewGetLegalMovesCommand(gameID, query)), fiber.StatusOK)
}
