package hasami

import (
	"encoding/json"
	"fmt"
)

// State is a serialisable snapshot of a Game.
type State struct {
	Board    [BoardSize][BoardSize]Player `json:"board"`
	Turn     Player                       `json:"turn"`
	Status   Status                       `json:"status"`
	Captured Captured                     `json:"captured"`
}

// Captured counts pieces taken from each side.
type Captured struct {
	Black int `json:"black"`
	Red   int `json:"red"`
}

func (that *Game) State() State {
	return State{
		Board:  that.board.Rows(),
		Turn:   that.turn,
		Status: that.status,
		Captured: Captured{
			Black: that.captured[Black],
			Red:   that.captured[Red],
		},
	}
}

// Restore rebuilds a Game from a snapshot, rejecting snapshots no sequence of
// legal moves could produce.
func Restore(state State) (*Game, error) {
	if state.Turn != Black && state.Turn != Red {
		return nil, fmt.Errorf("%w: turn %s", ErrCorruptState, state.Turn)
	}

	if err := state.Status.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}

	board := boardFromRows(state.Board)
	for _, player := range [...]Player{Black, Red} {
		captured := state.Captured.Black
		if player == Red {
			captured = state.Captured.Red
		}

		if captured < 0 || captured > piecesPerPlayer {
			return nil, fmt.Errorf("%w: %d %s pieces captured", ErrCorruptState, captured, player)
		}

		if onBoard := board.Count(player); onBoard+captured != piecesPerPlayer {
			return nil, fmt.Errorf("%w: %d %s pieces on board with %d captured", ErrCorruptState, onBoard, player, captured)
		}
	}

	if expected := statusFor(state.Captured.Black, state.Captured.Red); expected != state.Status {
		return nil, fmt.Errorf("%w: status %s does not match captures", ErrCorruptState, state.Status)
	}

	game := &Game{
		board:  board,
		turn:   state.Turn,
		status: state.Status,
	}
	game.captured[Black] = state.Captured.Black
	game.captured[Red] = state.Captured.Red

	return game, nil
}

func (that *Game) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(that.State())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %w", err)
	}

	return data, nil
}

func (that *Game) UnmarshalJSON(data []byte) error {
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	game, err := Restore(state)
	if err != nil {
		return err
	}

	*that = *game

	return nil
}
