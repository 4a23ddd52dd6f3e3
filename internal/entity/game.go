package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/apperror"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/hasami"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	maxPlayers = 2
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a match between two players together with its board.
type Game struct {
	ID      string        `json:"id"`
	Status  string        `json:"status"`
	Winner  hasami.Player `json:"winner,omitempty"`
	Players []*Player     `json:"players,omitempty"`
	Board   *hasami.Game  `json:"board"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Status: StatusWaiting,
		Board:  hasami.NewGame(),
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// AddPlayer seats a player: the first one plays Black, the second Red and
// starts the game. Re-adding a seated player is a no-op.
func (that *Game) AddPlayer(player *Player) error {
	if that.HasPlayer(player.ID) {
		return nil
	}

	if len(that.Players) >= maxPlayers {
		return fmt.Errorf("%w: game id %s", apperror.ErrGameFull, that.ID)
	}

	player.GameID = that.ID
	player.Color = hasami.Black
	if len(that.Players) == 1 {
		player.Color = that.Players[0].Color.Opponent()
	}

	that.Players = append(that.Players, player)

	if len(that.Players) == maxPlayers {
		that.Status = StatusOngoing
	}

	return nil
}

func (that *Game) HasPlayer(id string) bool {
	return that.PlayerByID(id) != nil
}

func (that *Game) PlayerByID(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}

	return nil
}

// MakeMove applies a move in notation on behalf of player.
func (that *Game) MakeMove(player *Player, from, to string) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	seated := that.PlayerByID(player.ID)
	if seated == nil {
		return fmt.Errorf("%w: player %s, game %s", apperror.ErrNotInGame, player.ID, that.ID)
	}

	if seated.Color != that.Board.ActivePlayer() {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.MakeMoveNotation(from, to); err != nil {
		return fmt.Errorf("illegal move %s-%s: %w", from, to, err)
	}

	that.UpdateGameState()

	return nil
}

// UpdateGameState finishes the game once the board has a winner.
func (that *Game) UpdateGameState() {
	status := that.Board.Status()
	if !status.IsTerminal() {
		return
	}

	that.Status = StatusFinished
	that.Winner = status.Winner()
}
