package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrGameFull         = errors.New("game already has two players")
	ErrNotInGame        = errors.New("player is not in this game")
	ErrAlreadyInGame    = errors.New("player is already in another game")
	ErrNotFound         = errors.New("not found")
)
