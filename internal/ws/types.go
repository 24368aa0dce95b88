package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	// client -> server
	MessageTypeClick MessageType = "click"

	// server -> client
	MessageTypeGameState            MessageType = "gameState"
	MessageTypePieceMoved           MessageType = "pieceMoved"
	MessageTypePieceCaptured        MessageType = "pieceCaptured"
	MessageTypeSelectionChanged     MessageType = "selectionChanged"
	MessageTypeTurnChanged          MessageType = "turnChanged"
	MessageTypeInvalidMove          MessageType = "invalidMove"
	MessageTypeInvalidMoveDismissed MessageType = "invalidMoveDismissed"
	MessageTypeError                MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

// ErrorMessage wraps a plain error string. The payload is a JSON string.
func ErrorMessage(errMsg string) Message {
	raw, _ := json.Marshal(errMsg)
	return Message{Type: MessageTypeError, Payload: raw}
}
