package model

import (
	"fmt"
	"sync"
	"time"
)

// MatchSize is the number of players needed to seat a four-player game.
const MatchSize = 4

type QueuedPlayer struct {
	Player   Player
	JoinedAt time.Time
}

type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{
		players: []QueuedPlayer{},
	}
}

func (q *Queue) AddPlayer(player Player) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.Player.ID == player.ID {
			return fmt.Errorf("player already in queue")
		}
	}

	q.players = append(q.players, QueuedPlayer{
		Player:   player,
		JoinedAt: time.Now(),
	})
	return nil
}

// GetNextMatch pops the four players who have been waiting longest, or nil if
// fewer than four are queued.
func (q *Queue) GetNextMatch() []Player {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < MatchSize {
		return nil
	}
	match := make([]Player, 0, MatchSize)
	for _, qp := range q.players[:MatchSize] {
		match = append(match, qp.Player)
	}
	q.players = q.players[MatchSize:]
	return match
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
