package model

import "github.com/fourchess/fourchess-backend/internal/engine"

// WSMove is a move submission from a client.
type WSMove struct {
	From engine.Position `json:"from"`
	To   engine.Position `json:"to"`
}

// WSNavigate points the game at a historical (branch, index) position.
type WSNavigate struct {
	Branch string `json:"branch"`
	Index  int    `json:"index"`
}

type MatchFoundEvent struct {
	GameID string       `json:"gameId"`
	Color  engine.Color `json:"color"`
}
