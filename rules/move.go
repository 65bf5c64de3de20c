package rules

import (
	"fmt"
	"strings"
)

// Move is a from/to pair with an optional promotion piece (NoPiece when absent).
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// Packed layout (16 bits, MSB first): 4-bit promotion code, 6-bit from, 6-bit to.
const (
	moveToShift        = 0
	moveFromShift      = 6
	movePromotionShift = 12
)

// NewMove constructs a move without promotion.
func NewMove(from, to Square) Move { return Move{From: from, To: to} }

// promotionCode maps Knight..Queen to 1..4; 0 means no promotion.
func promotionCode(p Piece) uint16 {
	if !p.IsPromotion() {
		return 0
	}
	return uint16(p - Pawn)
}

// Encode packs the move into 16 bits.
func (m Move) Encode() uint16 {
	return promotionCode(m.Promotion)<<movePromotionShift |
		uint16(m.From&0x3F)<<moveFromShift |
		uint16(m.To&0x3F)<<moveToShift
}

// DecodeMove unpacks a 16-bit move. Promotion codes other than 0-4 are rejected.
func DecodeMove(v uint16) (Move, error) {
	m := Move{
		From: Square((v >> moveFromShift) & 0x3F),
		To:   Square((v >> moveToShift) & 0x3F),
	}
	switch code := v >> movePromotionShift; {
	case code == 0:
	case code <= 4:
		m.Promotion = Pawn + Piece(code)
	default:
		return Move{}, fmt.Errorf("%w: promotion code %d", ErrInvalidArgument, code)
	}
	return m, nil
}

// ParseMove converts move text (e2e4, e7e8q) into a Move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || len(s) > 5 {
		return Move{}, fmt.Errorf("%w: move %q must be 4 or 5 characters", ErrInvalidArgument, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: move %q: %v", ErrInvalidArgument, s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: move %q: %v", ErrInvalidArgument, s, err)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		_, p, ok := pieceFromChar(s[4])
		if !ok || !p.IsPromotion() {
			return Move{}, fmt.Errorf("%w: move %q: invalid promotion piece", ErrInvalidArgument, s)
		}
		m.Promotion = p
	}
	return m, nil
}

// String produces move text, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Char())
	}
	return s
}
