package model

import (
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/clickchess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.Mutex
}

type GameOptions struct {
	InvalidMoveDelay time.Duration
	// Hotseat lets anyone drive the board, as when both players share one
	// screen. Otherwise clicks must come from the seat whose turn it is.
	Hotseat bool
}

// The Game struct wraps a board with its seats and observers. It forwards
// board feedback to every connected client.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	players     Players
	hotseat     bool
	connections *GameConnections

	// Board feedback raised during a click is queued here and delivered
	// once mu is released, so a slow client never holds up the board.
	eventsMu  sync.Mutex
	pending   []ws.Message
	buffering bool
	deliver   func(ws.Message)
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

type GameState struct {
	ID      string     `json:"id"`
	Board   BoardState `json:"board"`
	Players Players    `json:"players"`
}

func NewGame(id string, opts GameOptions) *Game {
	g := &Game{
		ID:          id,
		hotseat:     opts.Hotseat,
		connections: NewGameConnections(),
	}
	g.deliver = g.broadcast
	g.board = NewBoard(g, opts.InvalidMoveDelay)
	g.board.InitiateGame()
	return g
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// AddPlayer seats the player, White first. A player already seated gets
// their existing color back.
func (g *Game) AddPlayer(playerID string) (PlayerColor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if color, ok := g.seatOf(playerID); ok {
		return color, nil
	}
	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{ID: playerID, Color: PlayerColorWhite}
		return PlayerColorWhite, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{ID: playerID, Color: PlayerColorBlack}
		return PlayerColorBlack, nil
	}
	return "", ErrGameFull
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state()
}

func (g *Game) state() GameState {
	return GameState{
		ID:      g.ID,
		Board:   g.board.Snapshot(),
		Players: g.players,
	}
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.seatOf(playerID)
	return ok
}

func (g *Game) seatOf(playerID string) (PlayerColor, bool) {
	if playerID == "" {
		return "", false
	}
	switch playerID {
	case g.players.White.ID:
		return PlayerColorWhite, true
	case g.players.Black.ID:
		return PlayerColorBlack, true
	}
	return "", false
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

// Click runs one square activation through the board and broadcasts the
// resulting state.
func (g *Game) Click(playerID string, cell Cell) (GameState, error) {
	g.mu.Lock()
	if err := g.authorizeClick(playerID); err != nil {
		g.mu.Unlock()
		return GameState{}, err
	}
	g.holdEvents()
	g.board.Click(cell)
	state := g.state()
	events := g.releaseEvents()
	g.mu.Unlock()

	for _, msg := range events {
		g.deliver(msg)
	}
	g.broadcastState(state)
	return state, nil
}

func (g *Game) authorizeClick(playerID string) error {
	if g.hotseat {
		return nil
	}
	color, ok := g.seatOf(playerID)
	if !ok {
		return ErrNotInGame
	}
	if color != g.board.CurrentPlayer() {
		return ErrNotYourTurn
	}
	return nil
}

func (g *Game) PieceMoved(p Piece, to Coordinate) {
	g.emit(ws.MessageTypePieceMoved, PieceMovedEvent{Piece: NewPieceView(p), To: to.String()})
}

func (g *Game) PieceCaptured(p Piece) {
	g.emit(ws.MessageTypePieceCaptured, PieceCapturedEvent{Piece: NewPieceView(p)})
}

func (g *Game) SelectionChanged(p Piece) {
	event := SelectionChangedEvent{}
	if p != nil {
		view := NewPieceView(p)
		event.Piece = &view
	}
	g.emit(ws.MessageTypeSelectionChanged, event)
}

func (g *Game) TurnChanged(current PlayerColor) {
	g.emit(ws.MessageTypeTurnChanged, TurnChangedEvent{CurrentPlayer: current})
}

func (g *Game) InvalidMove() {
	g.emit(ws.MessageTypeInvalidMove, InvalidMoveEvent{Visible: true})
}

func (g *Game) InvalidMoveDismissed() {
	g.emit(ws.MessageTypeInvalidMoveDismissed, InvalidMoveEvent{Visible: false})
}

func (g *Game) emit(t ws.MessageType, payload interface{}) {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		log.Errorf("game %s: marshal %s: %v", g.ID, t, err)
		return
	}
	g.eventsMu.Lock()
	if g.buffering {
		g.pending = append(g.pending, msg)
		g.eventsMu.Unlock()
		return
	}
	g.eventsMu.Unlock()
	g.deliver(msg)
}

func (g *Game) holdEvents() {
	g.eventsMu.Lock()
	defer g.eventsMu.Unlock()
	g.buffering = true
}

// releaseEvents stops buffering and returns what was queued, oldest first.
func (g *Game) releaseEvents() []ws.Message {
	g.eventsMu.Lock()
	defer g.eventsMu.Unlock()
	g.buffering = false
	events := g.pending
	g.pending = nil
	return events
}

func (g *Game) broadcastState(state GameState) {
	g.emit(ws.MessageTypeGameState, state)
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	connID := fmt.Sprintf("%p", conn)
	log.Debugf("game %s: registering connection %s for player %s", g.ID, connID, playerID)

	g.mu.Lock()
	isAuthorized := g.hotseat || g.canSpectate()
	if _, seated := g.seatOf(playerID); seated {
		isAuthorized = true
	}
	state := g.state()
	g.mu.Unlock()

	if !isAuthorized {
		return ErrNotAuthorized
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// keep the healthy connection and reject the new one
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	log.Infof("game %s: registered connection %s for player %s", g.ID, connID, playerID)

	g.broadcastState(state)
	return nil
}

// UnregisterConnection drops conn if it is still the player's current one.
func (g *Game) UnregisterConnection(playerID string, conn *websocket.Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[playerID]; exists && current == conn {
		log.Infof("game %s: unregistering connection %p for player %s", g.ID, conn, playerID)
		delete(g.connections.connections, playerID)
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	return len(g.connections.connections)
}

// Send writes msg to a single connection, serialized with broadcasts.
func (g *Game) Send(conn *websocket.Conn, msg ws.Message) error {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	return conn.WriteJSON(msg)
}

// broadcast writes msg to every connection. Writes are serialized by the
// connections mutex; a failed connection is dropped.
func (g *Game) broadcast(msg ws.Message) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("game %s: failed to send %s to player %s: %v", g.ID, msg.Type, playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
