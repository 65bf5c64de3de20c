package session

import "errors"

var (
	// ErrGameOver is returned by any action on a match that has already ended.
	ErrGameOver = errors.New("game is over")
	// ErrClaimRejected is returned when a draw claim does not hold in the current position.
	ErrClaimRejected = errors.New("draw claim rejected")
)
