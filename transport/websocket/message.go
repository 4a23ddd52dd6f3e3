package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/entity"
)

const (
	actionConnect   = "connect"
	actionGameNew   = "game:new"
	actionGameJoin  = "game:join"
	actionGameMove  = "game:move"
	actionGameState = "game:state"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Move   *Move          `json:"move,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type Move struct {
	From string `json:"from"`
	To   string `json:"to"`
}
