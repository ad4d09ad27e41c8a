package apperror

import "errors"

var (
	ErrIllegalAction  = errors.New("illegal action")
	ErrInvalidQuery   = errors.New("invalid query for terminal board")
	ErrInvalidBoard   = errors.New("invalid board")
	ErrInvalidPayload = errors.New("invalid payload")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrGameNotFound = errors.New("game not found")
)
