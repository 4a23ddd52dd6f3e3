package entity

import "github.com/rocketscienceinc/hasami-shogi-backend/internal/hasami"

type Player struct {
	ID     string        `json:"id"`
	GameID string        `json:"game_id,omitempty"`
	Color  hasami.Player `json:"color,omitempty"`
}

func (that *Player) InGame() bool {
	return that.GameID != ""
}

// LeaveGame detaches the player from its current game.
func (that *Player) LeaveGame() {
	that.GameID = ""
	that.Color = hasami.NoPlayer
}
