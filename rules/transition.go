package rules

import "fmt"

// transition builds the position after m without checking the mover's king safety
// and without touching the hash. m must already be pseudo-legal for g.
func (g Game) transition(m Move) (Game, []Event, error) {
	side, piece, ok := g.board.PieceAt(m.From)
	if !ok {
		return g, nil, fmt.Errorf("%w: origin square %s is empty", ErrInvalidArgument, m.From)
	}
	opponent := side.Opponent()

	next := g
	events := make(eventLog, 0, 8)

	if file, open := next.flags.EnPassantFile(); open {
		events.enPassant(EnPassantClosed, file)
		next.flags = next.flags.withoutEnPassant()
	}

	resetClock := false
	captured := NoSquare

	// capture removes the opponent piece on sq, if there is one.
	capture := func(sq Square) {
		s, p, ok := next.board.PieceAt(sq)
		if !ok || s != opponent {
			return
		}
		events.left(s, p, sq)
		next.board.clearPiece(sq)
		captured = sq
		resetClock = true
	}
	relocate := func(p Piece, from, to Square) {
		events.left(side, p, from)
		next.board.clearPiece(from)
		events.entered(side, p, to)
		next.board.setPiece(side, p, to)
	}
	revoke := func(r CastlingRight) {
		if next.flags.HasCastlingRight(r) {
			events.rightLost(r)
			next.flags = next.flags.withCastlingRight(r, false)
		}
	}

	switch piece {
	case Pawn:
		resetClock = true
		if diff := int(m.To) - int(m.From); diff == 16 || diff == -16 {
			events.enPassant(EnPassantOpened, m.To.File())
			next.flags = next.flags.withEnPassant(m.To.File())
			relocate(Pawn, m.From, m.To)
			break
		}
		if m.From.File() != m.To.File() {
			if _, _, occupied := next.board.PieceAt(m.To); occupied {
				capture(m.To)
			} else if side == White {
				capture(m.To - 8)
			} else {
				capture(m.To + 8)
			}
		}
		if m.To.Rank() == 7 || m.To.Rank() == 0 {
			if !m.Promotion.IsPromotion() {
				return g, nil, fmt.Errorf("%w: %v needs a promotion piece", ErrInvalidArgument, m)
			}
			events.left(side, Pawn, m.From)
			next.board.clearPiece(m.From)
			events.entered(side, m.Promotion, m.To)
			next.board.setPiece(side, m.Promotion, m.To)
		} else {
			relocate(Pawn, m.From, m.To)
		}

	case King:
		capture(m.To)
		if diff := int(m.To) - int(m.From); diff == 2 || diff == -2 {
			lane := castlingLanes[KingSide(side)]
			if diff < 0 {
				lane = castlingLanes[QueenSide(side)]
			}
			relocate(Rook, lane.rookFrom, lane.rookTo)
		}
		relocate(King, m.From, m.To)
		revoke(QueenSide(side))
		revoke(KingSide(side))

	case Rook:
		capture(m.To)
		relocate(Rook, m.From, m.To)
		if r, home := rookHome(m.From); home && r.Side() == side {
			revoke(r)
		}

	default:
		capture(m.To)
		relocate(piece, m.From, m.To)
	}

	if captured != NoSquare {
		if r, home := rookHome(captured); home && r.Side() == opponent {
			revoke(r)
		}
	}

	if resetClock {
		next.halfmoveClock = 0
	} else {
		next.halfmoveClock++
	}
	if side == Black {
		next.fullmoveNumber++
	}
	next.flags = next.flags.withSideToMove(opponent)
	events.turn(opponent)

	return next, events, nil
}
