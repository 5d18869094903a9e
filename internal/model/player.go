package model

import "github.com/fourchess/fourchess-backend/internal/engine"

type Player struct {
	ID    string
	Color engine.Color
}

// ClientPlayer is the seat payload broadcast to clients.
type ClientPlayer struct {
	ID    string       `json:"name"`
	Color engine.Color `json:"color"`
}

// Players holds the four seats in turn order.
type Players struct {
	Red    ClientPlayer `json:"red"`
	Blue   ClientPlayer `json:"blue"`
	Yellow ClientPlayer `json:"yellow"`
	Green  ClientPlayer `json:"green"`
}
