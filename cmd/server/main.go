package main

import (
	"os"
	"strings"

	"github.com/benbeisheim/clickchess-backend/internal/config"
	"github.com/benbeisheim/clickchess-backend/internal/controller"
	"github.com/benbeisheim/clickchess-backend/internal/model"
	"github.com/benbeisheim/clickchess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	app := fiber.New(fiber.Config{
		AppName: "clickchess",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager(model.GameOptions{
		InvalidMoveDelay: cfg.InvalidMoveDelay,
		Hotseat:          cfg.Hotseat,
	})
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	controller.SetupRoutes(app, gameController, wsController, splitOrigins(cfg.AllowOrigins))

	log.Infof("listening on %s (hotseat=%t, invalid move delay %s)", cfg.Addr, cfg.Hotseat, cfg.InvalidMoveDelay)
	log.Fatal(app.Listen(cfg.Addr))
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
