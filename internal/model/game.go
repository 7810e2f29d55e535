package model

import (
	"encoding/json"
	"time"
)

// Game represents a saved game record in the database. State is an opaque
// JSON document owned by the client; the server never inspects it.
type Game struct {
	ID           string
	OwnerID      int64
	Name         string
	State        json.RawMessage
	LastModified time.Time
}

// SaveGameRequest represents a request to save a new game.
type SaveGameRequest struct {
	Name  string          `json:"name"`
	State json.RawMessage `json:"state"`
}

// OverwriteGameRequest represents a request to overwrite an existing game's state.
type OverwriteGameRequest struct {
	State json.RawMessage `json:"state"`
}

// SaveGameResponse represents the response to a successful save.
type SaveGameResponse struct {
	ID string `json:"id"`
}

// GameSummary represents a game in a listing, with the state payload withheld.
type GameSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LastModified time.Time `json:"last_modified"`
}

// GameStateResponse represents a loaded game's state payload.
type GameStateResponse struct {
	State json.RawMessage `json:"state"`
}
