package rules

// Promotion choices in the order legal move lists offer them.
var promotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

// castlingLane describes one castling option for one side.
type castlingLane struct {
	right    CastlingRight
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	between  BitSet // must be empty
	transit  BitSet // must not be attacked, includes kingFrom and kingTo
}

var castlingLanes = [4]castlingLane{
	WhiteQueenSide: {WhiteQueenSide, E1, C1, A1, D1, B1.BitSet() | C1.BitSet() | D1.BitSet(), E1.BitSet() | D1.BitSet() | C1.BitSet()},
	WhiteKingSide:  {WhiteKingSide, E1, G1, H1, F1, F1.BitSet() | G1.BitSet(), E1.BitSet() | F1.BitSet() | G1.BitSet()},
	BlackQueenSide: {BlackQueenSide, E8, C8, A8, D8, B8.BitSet() | C8.BitSet() | D8.BitSet(), E8.BitSet() | D8.BitSet() | C8.BitSet()},
	BlackKingSide:  {BlackKingSide, E8, G8, H8, F8, F8.BitSet() | G8.BitSet(), E8.BitSet() | F8.BitSet() | G8.BitSet()},
}

// rookHome returns the wing whose rook starts on sq, if any.
func rookHome(sq Square) (CastlingRight, bool) {
	for _, lane := range castlingLanes {
		if lane.rookFrom == sq {
			return lane.right, true
		}
	}
	return 0, false
}

// PseudoLegalFrom returns the destinations of the piece on from, obeying piece movement
// rules but ignoring whether the mover's king ends up attacked. Castling targets are
// only included when the king's path is safe. Empty squares yield an empty set.
func (g Game) PseudoLegalFrom(from Square) BitSet {
	side, piece, ok := g.board.PieceAt(from)
	if !ok {
		return EmptySet
	}
	own := g.board.Pieces(side)
	occ := g.board.Occupied()

	switch piece {
	case Pawn:
		return g.pawnTargets(side, from)
	case Knight:
		return knightMask[from] &^ own
	case Bishop:
		return BishopAttacks(from, occ) &^ own
	case Rook:
		return RookAttacks(from, occ) &^ own
	case Queen:
		return QueenAttacks(from, occ) &^ own
	case King:
		return (kingMask[from] &^ own) | g.castlingTargets(side, from)
	}
	return EmptySet
}

func (g Game) pawnTargets(side Side, from Square) BitSet {
	empty := ^g.board.Occupied()
	bit := from.BitSet()

	var single, double BitSet
	if side == White {
		single = bit.North() & empty
		if from.Rank() == 1 {
			double = single.North() & empty
		}
	} else {
		single = bit.South() & empty
		if from.Rank() == 6 {
			double = single.South() & empty
		}
	}

	capturable := g.board.Pieces(side.Opponent())
	if side == g.SideToMove() {
		if ep := g.flags.EnPassantTarget(); ep != NoSquare {
			capturable |= ep.BitSet()
		}
	}
	return single | double | (pawnAttackMask[side][from] & capturable)
}

func (g Game) castlingTargets(side Side, from Square) BitSet {
	var targets BitSet
	occ := g.board.Occupied()
	rooks := g.board.Pieces(side) & g.board.rooks
	for _, lane := range []castlingLane{castlingLanes[QueenSide(side)], castlingLanes[KingSide(side)]} {
		if !g.flags.HasCastlingRight(lane.right) || from != lane.kingFrom || !rooks.Has(lane.rookFrom) {
			continue
		}
		if lane.between&occ != 0 {
			continue
		}
		if g.anyAttacked(lane.transit, side.Opponent()) {
			continue
		}
		targets |= lane.kingTo.BitSet()
	}
	return targets
}

func (g Game) anyAttacked(squares BitSet, by Side) bool {
	for squares != 0 {
		if g.board.IsAttacked(squares.PopSquare(), by) {
			return true
		}
	}
	return false
}

// isLegal runs the tentative transition and checks the mover's king.
func (g Game) isLegal(m Move) bool {
	next, _, err := g.transition(m)
	if err != nil {
		return false
	}
	return !next.board.IsKingAttacked(g.SideToMove())
}

// LegalMovesFrom lists the legal moves of the side-to-move piece on from.
// Pawn moves to the last rank are expanded into one move per promotion piece.
func (g Game) LegalMovesFrom(from Square) []Move {
	side, piece, ok := g.board.PieceAt(from)
	if !ok || side != g.SideToMove() {
		return nil
	}
	var moves []Move
	targets := g.PseudoLegalFrom(from)
	for targets != 0 {
		to := targets.PopSquare()
		if piece == Pawn && (to.Rank() == 7 || to.Rank() == 0) {
			for _, promo := range promotionPieces {
				m := Move{From: from, To: to, Promotion: promo}
				if g.isLegal(m) {
					moves = append(moves, m)
				}
			}
			continue
		}
		m := Move{From: from, To: to}
		if g.isLegal(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// LegalMoves lists every legal move of the side to move, grouped by origin square
// in ascending order.
func (g Game) LegalMoves() []Move {
	moves := make([]Move, 0, 64)
	own := g.board.Pieces(g.SideToMove())
	for own != 0 {
		moves = append(moves, g.LegalMovesFrom(own.PopSquare())...)
	}
	return moves
}

// HasLegalMoves reports whether the side to move has any legal move.
func (g Game) HasLegalMoves() bool {
	own := g.board.Pieces(g.SideToMove())
	for own != 0 {
		from := own.PopSquare()
		targets := g.PseudoLegalFrom(from)
		for targets != 0 {
			// Queen stands in for every promotion: legality does not depend on the choice.
			if g.isLegal(Move{From: from, To: targets.PopSquare(), Promotion: Queen}) {
				return true
			}
		}
	}
	return false
}
