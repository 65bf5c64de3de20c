package session

import (
	"fmt"

	"dotchess/rules"
)

// Reason explains why a match ended. The numeric values are stable.
type Reason uint8

const (
	Checkmate Reason = iota
	Stalemate
	InsufficientMatingMaterial
	Resignation
	Repetition
	FiftyMoveRule
)

var reasonNames = [...]string{
	Checkmate:                  "checkmate",
	Stalemate:                  "stalemate",
	InsufficientMatingMaterial: "insufficient mating material",
	Resignation:                "resignation",
	Repetition:                 "repetition",
	FiftyMoveRule:              "fifty-move rule",
}

// ParseReason converts a numeric reason index.
func ParseReason(v uint8) (Reason, error) {
	if int(v) >= len(reasonNames) {
		return 0, fmt.Errorf("%w: invalid game over reason index: %d", rules.ErrInvalidArgument, v)
	}
	return Reason(v), nil
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// Outcome is the final result of a match. Winner is only meaningful when Decisive.
type Outcome struct {
	Reason   Reason
	Winner   rules.Side
	Decisive bool
}

func (o Outcome) String() string {
	if !o.Decisive {
		return "draw by " + o.Reason.String()
	}
	return fmt.Sprintf("%s wins by %s", o.Winner, o.Reason)
}
