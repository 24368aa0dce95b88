package service

import (
	"fmt"

	"github.com/benbeisheim/clickchess-backend/internal/model"
	"github.com/benbeisheim/clickchess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.PlayerColor, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) JoinMatchmaking(playerID string) (model.MatchFoundEvent, bool, error) {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) MatchStatus(playerID string) (model.MatchFoundEvent, bool, error) {
	return gs.gameManager.MatchStatus(playerID)
}

func (gs *GameService) LeaveMatchmaking(playerID string) error {
	return gs.gameManager.LeaveMatchmaking(playerID)
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleClick(gameID string, playerID string, cell model.Cell) (model.GameState, error) {
	return gs.gameManager.Click(gameID, playerID, cell)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

func (gs *GameService) Send(gameID string, conn *websocket.Conn, msg ws.Message) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Send(conn, msg)
}
