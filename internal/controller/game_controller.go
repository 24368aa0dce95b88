package controller

import (
	"errors"

	"github.com/benbeisheim/clickchess-backend/internal/model"
	"github.com/benbeisheim/clickchess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

// JoinMatchmaking queues the player for a seated game. When an opponent is
// already waiting the response carries the new game right away.
func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	match, matched, err := gc.gameService.JoinMatchmaking(playerID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(matchResponse(match, matched))
}

func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	match, queued, err := gc.gameService.MatchStatus(playerID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(matchResponse(match, !queued))
}

func (gc *GameController) LeaveMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.LeaveMatchmaking(playerID); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"status": "left",
	})
}

func matchResponse(match model.MatchFoundEvent, matched bool) fiber.Map {
	if !matched {
		return fiber.Map{"status": "queued"}
	}
	return fiber.Map{
		"status":  "matched",
		"game_id": match.GameID,
		"color":   match.Color,
	}
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(gameState)
}

// Click takes {"col": "E", "row": "2"}. Either field may be empty for a
// click that missed the board.
func (gc *GameController) Click(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var cell model.Cell
	if err := c.BodyParser(&cell); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid click payload",
		})
	}

	gameState, err := gc.gameService.HandleClick(gameID, playerID, cell)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(gameState)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound), errors.Is(err, service.ErrNotQueued):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrGameExists), errors.Is(err, model.ErrGameFull), errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrAlreadyQueued):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrNotInGame), errors.Is(err, model.ErrNotAuthorized):
		return fiber.StatusForbidden
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
