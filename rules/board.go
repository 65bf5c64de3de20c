package rules

import "fmt"

// Board holds piece placement as eight overlapping bit-sets: two side sets and six
// piece-kind sets. A square's occupant is the intersection of one of each.
//
// Board is a value type. Move application copies it and edits the copy, so a Board
// handed out by a Game never changes.
type Board struct {
	white   BitSet
	black   BitSet
	pawns   BitSet
	knights BitSet
	bishops BitSet
	rooks   BitSet
	queens  BitSet
	kings   BitSet
}

// StartingBoard returns the standard initial placement.
func StartingBoard() Board {
	return Board{
		white:   0x000000000000FFFF,
		black:   0xFFFF000000000000,
		pawns:   0x00FF00000000FF00,
		knights: 0x4200000000000042,
		bishops: 0x2400000000000024,
		rooks:   0x8100000000000081,
		queens:  0x0800000000000008,
		kings:   0x1000000000000010,
	}
}

// Occupied returns every occupied square.
func (b Board) Occupied() BitSet { return b.white | b.black }

// Pieces returns the squares occupied by side.
func (b Board) Pieces(side Side) BitSet {
	if side == White {
		return b.white
	}
	return b.black
}

// Kind returns the squares holding piece kind p of either side.
func (b Board) Kind(p Piece) BitSet {
	switch p {
	case Pawn:
		return b.pawns
	case Knight:
		return b.knights
	case Bishop:
		return b.bishops
	case Rook:
		return b.rooks
	case Queen:
		return b.queens
	case King:
		return b.kings
	}
	return EmptySet
}

// PieceAt returns the occupant of sq. ok is false for an empty square.
func (b Board) PieceAt(sq Square) (side Side, piece Piece, ok bool) {
	bit := sq.BitSet()
	switch {
	case b.white&bit != 0:
		side = White
	case b.black&bit != 0:
		side = Black
	default:
		return White, NoPiece, false
	}
	switch {
	case b.pawns&bit != 0:
		piece = Pawn
	case b.knights&bit != 0:
		piece = Knight
	case b.bishops&bit != 0:
		piece = Bishop
	case b.rooks&bit != 0:
		piece = Rook
	case b.queens&bit != 0:
		piece = Queen
	case b.kings&bit != 0:
		piece = King
	default:
		return White, NoPiece, false
	}
	return side, piece, true
}

// KingSquare returns the square of side's king, or NoSquare if it has none.
func (b Board) KingSquare(side Side) Square {
	return (b.Pieces(side) & b.kings).BitScanForward()
}

// setPiece places a piece on sq, replacing any occupant. Only called on a copy
// that is still being built.
func (b *Board) setPiece(side Side, p Piece, sq Square) {
	b.clearPiece(sq)
	bit := sq.BitSet()
	if side == White {
		b.white |= bit
	} else {
		b.black |= bit
	}
	switch p {
	case Pawn:
		b.pawns |= bit
	case Knight:
		b.knights |= bit
	case Bishop:
		b.bishops |= bit
	case Rook:
		b.rooks |= bit
	case Queen:
		b.queens |= bit
	case King:
		b.kings |= bit
	}
}

// clearPiece empties sq.
func (b *Board) clearPiece(sq Square) {
	mask := ^sq.BitSet()
	b.white &= mask
	b.black &= mask
	b.pawns &= mask
	b.knights &= mask
	b.bishops &= mask
	b.rooks &= mask
	b.queens &= mask
	b.kings &= mask
}

// IsAttacked reports whether any piece of side by attacks sq. Attacks are traced
// outward from sq; pawns use the mirrored capture mask of the defending side.
func (b Board) IsAttacked(sq Square, by Side) bool {
	attackers := b.Pieces(by)

	if pawnAttackMask[by.Opponent()][sq]&attackers&b.pawns != 0 {
		return true
	}
	if knightMask[sq]&attackers&b.knights != 0 {
		return true
	}
	if kingMask[sq]&attackers&b.kings != 0 {
		return true
	}

	occ := b.Occupied()
	if diag := attackers & (b.bishops | b.queens); diag != 0 && BishopAttacks(sq, occ)&diag != 0 {
		return true
	}
	if ortho := attackers & (b.rooks | b.queens); ortho != 0 && RookAttacks(sq, occ)&ortho != 0 {
		return true
	}
	return false
}

// IsKingAttacked reports whether side's king stands on an attacked square.
// A side without a king is never in check.
func (b Board) IsKingAttacked(side Side) bool {
	ks := b.KingSquare(side)
	if ks == NoSquare {
		return false
	}
	return b.IsAttacked(ks, side.Opponent())
}

// Validate checks the bit-set invariants.
func (b Board) Validate() error {
	if b.white&b.black != 0 {
		return fmt.Errorf("squares owned by both sides: %#x", uint64(b.white&b.black))
	}
	kinds := [6]BitSet{b.pawns, b.knights, b.bishops, b.rooks, b.queens, b.kings}
	var union BitSet
	for i, k := range kinds {
		if union&k != 0 {
			return fmt.Errorf("%s set overlaps another kind", Piece(i+1))
		}
		union |= k
	}
	if union != b.Occupied() {
		return fmt.Errorf("kind sets %#x do not match side sets %#x", uint64(union), uint64(b.Occupied()))
	}
	return nil
}
