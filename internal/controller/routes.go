package controller

import (
	"github.com/benbeisheim/clickchess-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SetupRoutes registers the REST and WebSocket routes on app.
func SetupRoutes(app *fiber.App, gameController *GameController, wsController *WebSocketController, allowOrigins []string) {
	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         allowOrigins,
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Post("/matchmaking/leave", gameController.LeaveMatchmaking)
	gameRoutes.Get("/matchmaking/status", gameController.MatchmakingStatus)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/click", gameController.Click)
}
