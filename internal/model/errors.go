package model

import "errors"

var (
	ErrGameFull      = errors.New("game is full")
	ErrNotInGame     = errors.New("player not in game")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNotAuthorized = errors.New("not authorized to join this game")
	ErrAlreadyQueued = errors.New("player already in queue")
)
