package rules

import "fmt"

// EventKind tags one atomic change produced by a move.
type EventKind uint8

const (
	PieceLeft EventKind = iota + 1
	PieceEntered
	CastlingRightLost
	EnPassantOpened
	EnPassantClosed
	TurnFlipped
)

// Event describes one observable change. Which fields are meaningful depends on Kind:
// piece events use Side, Piece and Square; CastlingRightLost uses Right; en passant
// events use File; TurnFlipped uses Side as the new side to move.
type Event struct {
	Kind   EventKind
	Side   Side
	Piece  Piece
	Square Square
	Right  CastlingRight
	File   File
}

func (e Event) String() string {
	switch e.Kind {
	case PieceLeft:
		return fmt.Sprintf("%s %s left %s", e.Side, e.Piece, e.Square)
	case PieceEntered:
		return fmt.Sprintf("%s %s entered %s", e.Side, e.Piece, e.Square)
	case CastlingRightLost:
		return fmt.Sprintf("castling right %c lost", e.Right.Char())
	case EnPassantOpened:
		return fmt.Sprintf("en passant opened on %s", e.File)
	case EnPassantClosed:
		return fmt.Sprintf("en passant closed on %s", e.File)
	case TurnFlipped:
		return fmt.Sprintf("%s to move", e.Side)
	}
	return "unknown event"
}

// eventLog accumulates events while a transition builds the next position.
type eventLog []Event

func (l *eventLog) left(side Side, p Piece, sq Square) {
	*l = append(*l, Event{Kind: PieceLeft, Side: side, Piece: p, Square: sq})
}

func (l *eventLog) entered(side Side, p Piece, sq Square) {
	*l = append(*l, Event{Kind: PieceEntered, Side: side, Piece: p, Square: sq})
}

func (l *eventLog) rightLost(r CastlingRight) {
	*l = append(*l, Event{Kind: CastlingRightLost, Side: r.Side(), Right: r})
}

func (l *eventLog) enPassant(kind EventKind, f File) {
	*l = append(*l, Event{Kind: kind, File: f})
}

func (l *eventLog) turn(next Side) {
	*l = append(*l, Event{Kind: TurnFlipped, Side: next})
}
