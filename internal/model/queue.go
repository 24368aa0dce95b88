package model

import (
	"sync"
	"time"

	"golang.org/x/exp/slices"
)

type QueuedPlayer struct {
	ID       string
	JoinedAt time.Time
}

// Queue holds players waiting to be paired into a seated game, oldest first.
type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{
		players: []QueuedPlayer{},
	}
}

func (q *Queue) AddPlayer(playerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.indexOf(playerID) >= 0 {
		return ErrAlreadyQueued
	}

	q.players = append(q.players, QueuedPlayer{
		ID:       playerID,
		JoinedAt: time.Now(),
	})
	return nil
}

// RemovePlayer takes the player out of the queue, reporting whether they
// were waiting.
func (q *Queue) RemovePlayer(playerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	idx := q.indexOf(playerID)
	if idx < 0 {
		return false
	}
	q.players = slices.Delete(q.players, idx, idx+1)
	return true
}

// NextPair pops the two players who have waited longest. The first one
// takes White.
func (q *Queue) NextPair() (QueuedPlayer, QueuedPlayer, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < 2 {
		return QueuedPlayer{}, QueuedPlayer{}, false
	}
	first, second := q.players[0], q.players[1]
	q.players = q.players[2:]
	return first, second, true
}

func (q *Queue) Contains(playerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.indexOf(playerID) >= 0
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}

func (q *Queue) indexOf(playerID string) int {
	return slices.IndexFunc(q.players, func(p QueuedPlayer) bool { return p.ID == playerID })
}
