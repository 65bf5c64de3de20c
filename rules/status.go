package rules

// IsCheck reports whether the side to move is in check.
func (g Game) IsCheck() bool {
	return g.board.IsKingAttacked(g.SideToMove())
}

// IsCheckmate reports whether the side to move is in check with no legal moves.
func (g Game) IsCheckmate() bool {
	return g.IsCheck() && !g.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but cannot move.
func (g Game) IsStalemate() bool {
	return !g.IsCheck() && !g.HasLegalMoves()
}

// materialScore weighs a side's non-king material: knights and bishops count one,
// pawns, rooks and queens count two.
func (b Board) materialScore(side Side) int {
	own := b.Pieces(side)
	minor := (own & (b.knights | b.bishops)).Count()
	major := (own & (b.pawns | b.rooks | b.queens)).Count()
	return minor + 2*major
}

// HasSufficientMatingMaterial is false only when both sides are down to at most a
// single minor piece.
func (g Game) HasSufficientMatingMaterial() bool {
	return g.board.materialScore(White) > 1 || g.board.materialScore(Black) > 1
}

// IsFiftyMoveRule reports whether a fifty-move draw may be claimed.
func (g Game) IsFiftyMoveRule() bool {
	return g.halfmoveClock >= 100
}

// CountRepetitions counts how often the current position hash occurs in history.
// The caller owns history; it usually includes the current position.
func (g Game) CountRepetitions(history []ZobristHash) int {
	n := 0
	for _, h := range history {
		if h == g.hash {
			n++
		}
	}
	return n
}

// IsRepetition reports whether the current position occurs at least three times.
func (g Game) IsRepetition(history []ZobristHash) bool {
	return g.CountRepetitions(history) >= 3
}
