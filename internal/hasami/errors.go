package hasami

import "errors"

var (
	ErrInvalidLocation  = errors.New("invalid location")
	ErrNotYourPiece     = errors.New("square is not occupied by the active player")
	ErrIllegalDirection = errors.New("move must follow a single row or column")
	ErrPathBlocked      = errors.New("path is blocked")
	ErrGameOver         = errors.New("game is already over")

	ErrUnknownPlayer = errors.New("unknown player")
	ErrUnknownStatus = errors.New("unknown game status")
	ErrCorruptState  = errors.New("corrupt game state")
)
