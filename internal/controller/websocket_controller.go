package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/clickchess-backend/internal/model"
	"github.com/benbeisheim/clickchess-backend/internal/service"
	"github.com/benbeisheim/clickchess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	playerID, _ := c.Locals("wsPlayerID").(string)
	log.Infof("websocket connection established for game %s, player %s", gameID, playerID)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Warnf("failed to register connection: %v", err)
		c.WriteJSON(ws.ErrorMessage(err.Error()))
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error: %v", err)
			break
		}

		if messageType != websocket.TextMessage {
			continue
		}
		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Warnf("parse error: %v", err)
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Warnf("handle error: %v", err)
			wsc.sendError(gameID, c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID, c)
}

// Handle different types of incoming messages
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeClick:
		var cell model.Cell
		if err := json.Unmarshal(msg.Payload, &cell); err != nil {
			return fmt.Errorf("decode click: %w", err)
		}
		_, err := wsc.gameService.HandleClick(gameID, playerID, cell)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// sendError replies to one client through the game so the write does not
// race a broadcast.
func (wsc *WebSocketController) sendError(gameID string, c *websocket.Conn, errorMsg string) {
	if err := wsc.gameService.Send(gameID, c, ws.ErrorMessage(errorMsg)); err != nil {
		log.Warnf("failed to send error: %v", err)
	}
}
