package apperror

import "errors"

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrPitNotFound    = errors.New("pit not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotOver    = errors.New("game is not over yet")
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrPitEmpty       = errors.New("pit is empty")
	ErrWrongSide      = errors.New("pit is on the opponent's side")
)
