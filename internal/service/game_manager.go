// service/game_manager.go
package service

import (
	"fmt"
	"sync"

	"github.com/benbeisheim/clickchess-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type GameManager struct {
	games   map[string]*model.Game
	options model.GameOptions
	queue   *model.Queue
	matches map[string]model.MatchFoundEvent // playerID -> paired game
	mu      sync.RWMutex
}

func NewGameManager(options model.GameOptions) *GameManager {
	return &GameManager{
		games:   make(map[string]*model.Game),
		options: options,
		queue:   model.NewQueue(),
		matches: make(map[string]model.MatchFoundEvent),
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return fmt.Errorf("create %s: %w", gameID, ErrGameExists)
	}

	gm.games[gameID] = model.NewGame(gameID, gm.options)
	log.Infof("created game %s", gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}

	return game, nil
}

func (gm *GameManager) GameCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.PlayerColor, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}

	color, err := game.AddPlayer(playerID)
	if err != nil {
		return "", fmt.Errorf("join %s: %w", gameID, err)
	}
	log.Infof("player %s joined game %s as %s", playerID, gameID, color)
	return color, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	return game.GetState(), nil
}

// Click forwards a square activation to the game. Games serialize their own
// clicks, so the manager lock is only held for the lookup.
func (gm *GameManager) Click(gameID string, playerID string, cell model.Cell) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	state, err := game.Click(playerID, cell)
	if err != nil {
		return model.GameState{}, fmt.Errorf("click in %s: %w", gameID, err)
	}
	return state, nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		log.Debugf("unregister connection: %v", err)
		return
	}

	game.UnregisterConnection(playerID, conn)
}

// JoinMatchmaking queues the player and pairs the two longest waiting
// players into a new seated game. It returns the caller's match when the
// caller was paired.
func (gm *GameManager) JoinMatchmaking(playerID string) (model.MatchFoundEvent, bool, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if err := gm.queue.AddPlayer(playerID); err != nil {
		return model.MatchFoundEvent{}, false, fmt.Errorf("matchmaking: %w", err)
	}
	delete(gm.matches, playerID)
	log.Infof("player %s joined matchmaking (%d waiting)", playerID, gm.queue.Size())

	gm.processMatchmaking()

	match, ok := gm.matches[playerID]
	return match, ok, nil
}

// processMatchmaking runs with gm.mu held.
func (gm *GameManager) processMatchmaking() {
	for {
		first, second, ok := gm.queue.NextPair()
		if !ok {
			return
		}

		gameID := uuid.New().String()
		opts := gm.options
		opts.Hotseat = false
		game := model.NewGame(gameID, opts)

		firstColor, err := game.AddPlayer(first.ID)
		if err != nil {
			log.Errorf("matchmaking: seating %s in %s: %v", first.ID, gameID, err)
			continue
		}
		secondColor, err := game.AddPlayer(second.ID)
		if err != nil {
			log.Errorf("matchmaking: seating %s in %s: %v", second.ID, gameID, err)
			continue
		}
		gm.games[gameID] = game

		gm.matches[first.ID] = model.MatchFoundEvent{GameID: gameID, Color: firstColor}
		gm.matches[second.ID] = model.MatchFoundEvent{GameID: gameID, Color: secondColor}
		log.Infof("matched %s (%s) and %s (%s) in game %s", first.ID, firstColor, second.ID, secondColor, gameID)
	}
}

// MatchStatus reports the player's match, or queued=true while they wait.
func (gm *GameManager) MatchStatus(playerID string) (match model.MatchFoundEvent, queued bool, err error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	if m, ok := gm.matches[playerID]; ok {
		return m, false, nil
	}
	if gm.queue.Contains(playerID) {
		return model.MatchFoundEvent{}, true, nil
	}
	return model.MatchFoundEvent{}, false, fmt.Errorf("status for %s: %w", playerID, ErrNotQueued)
}

func (gm *GameManager) LeaveMatchmaking(playerID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if !gm.queue.RemovePlayer(playerID) {
		return fmt.Errorf("leave for %s: %w", playerID, ErrNotQueued)
	}
	log.Infof("player %s left matchmaking", playerID)
	return nil
}
