// Package hasami implements the rules of Hasami Shogi (variant 1): one piece
// type, nine pieces a side on a 9x9 board, captures by flanking along a row or
// column and by trapping a piece in a corner.
package hasami

import "fmt"

const (
	piecesPerPlayer = BoardSize
	// a player with a single piece left has lost.
	capturesToWin = piecesPerPlayer - 1
)

// Game is the state of one match. It is not safe for concurrent use; callers
// sharing a Game must treat MakeMove as a single critical section.
type Game struct {
	board    Board
	turn     Player
	status   Status
	captured [Red + 1]int
}

func NewGame() *Game {
	return &Game{
		board:  NewBoard(),
		turn:   FirstPlayer,
		status: StatusUnfinished,
	}
}

func (that *Game) Status() Status {
	return that.status
}

func (that *Game) ActivePlayer() Player {
	return that.turn
}

// Captured returns how many of player's pieces have been taken off the board.
func (that *Game) Captured(player Player) int {
	if player != Black && player != Red {
		return 0
	}

	return that.captured[player]
}

// Occupant returns the owner of the piece on location, or NoPlayer.
func (that *Game) Occupant(location Location) Player {
	return that.board.At(location)
}

// Board returns a copy of the grid.
func (that *Game) Board() Board {
	return that.board
}

// MakeMoveNotation parses both squares before attempting the move.
func (that *Game) MakeMoveNotation(from, to string) error {
	fromLocation, err := ParseLocation(from)
	if err != nil {
		return fmt.Errorf("invalid origin: %w", err)
	}

	toLocation, err := ParseLocation(to)
	if err != nil {
		return fmt.Errorf("invalid destination: %w", err)
	}

	return that.MakeMove(fromLocation, toLocation)
}

// MakeMove moves the active player's piece, resolves captures, updates the
// status and passes the turn. A rejected move leaves the game untouched.
func (that *Game) MakeMove(from, to Location) error {
	if that.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrGameOver, that.status)
	}

	if !from.OnBoard() || !to.OnBoard() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidLocation, from, to)
	}

	if that.board.At(from) != that.turn {
		return fmt.Errorf("%w: %s is not a %s piece", ErrNotYourPiece, from, that.turn)
	}

	if err := that.ValidateMove(from, to); err != nil {
		return err
	}

	that.board.set(from, NoPlayer)
	that.board.set(to, that.turn)

	that.resolveCaptures(to)
	that.checkCornerCapture(to)

	that.updateStatus()
	that.turn = that.turn.Opponent()

	return nil
}

func (that *Game) updateStatus() {
	if that.status.IsTerminal() {
		return
	}

	that.status = statusFor(that.captured[Black], that.captured[Red])
}

func statusFor(blackCaptured, redCaptured int) Status {
	switch {
	case blackCaptured >= capturesToWin:
		return StatusRedWon
	case redCaptured >= capturesToWin:
		return StatusBlackWon
	default:
		return StatusUnfinished
	}
}
