package lobby

import "errors"

// Domain rule violations raised by the aggregate. Boundary layers compare
// with errors.Is and translate them into HTTP status codes.
var (
	ErrLobbyFull            = errors.New("lobby is full")
	ErrPlayerAlreadyPresent = errors.New("player was already added")
	ErrPlayerNotFound       = errors.New("player was not found")
	ErrInvalidSide          = errors.New("side must be left or right")
	ErrLobbyNotFound        = errors.New("lobby not found")
)
