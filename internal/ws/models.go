package ws

import (
	"encoding/json"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID   int `json:"id"`
	Data any `json:"data"`
}

type MoveRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}
