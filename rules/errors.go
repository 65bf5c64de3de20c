package rules

import "errors"

var (
	// ErrInvalidArgument reports malformed input: bad FEN or move text, an empty or
	// foreign origin square, or a missing promotion choice.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalMove reports a move the rules forbid.
	ErrIllegalMove = errors.New("illegal move")
)
