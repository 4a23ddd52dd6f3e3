package hasami

import "fmt"

// ValidateMove checks that a piece could travel from one square to another:
// along a single row or column, over empty squares only, onto an empty square.
// Ownership and game status are checked by MakeMove.
func (that *Game) ValidateMove(from, to Location) error {
	if !from.OnBoard() || !to.OnBoard() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidLocation, from, to)
	}

	if from == to {
		return fmt.Errorf("%w: %s is both origin and destination", ErrIllegalDirection, from)
	}

	if from.Row != to.Row && from.Col != to.Col {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalDirection, from, to)
	}

	dir := directionOf(from, to)
	for cur := from.step(dir); ; cur = cur.step(dir) {
		if that.board.At(cur) != NoPlayer {
			return fmt.Errorf("%w: %s is occupied", ErrPathBlocked, cur)
		}

		if cur == to {
			return nil
		}
	}
}
