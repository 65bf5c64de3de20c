package rules

// Side is the owner of a piece, or the player to move.
type Side uint8

const (
	White Side = 0
	Black Side = 1
)

// Opponent returns the other side.
func (s Side) Opponent() Side { return s ^ 1 }

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Piece is a colorless piece kind. NoPiece is the zero value and means "none",
// which is how a Move without promotion is expressed.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// index maps Pawn..King to 0..5 for table lookups.
func (p Piece) index() int { return int(p) - 1 }

// Valid reports whether p is one of the six piece kinds.
func (p Piece) Valid() bool { return p >= Pawn && p <= King }

// IsPromotion reports whether a pawn may promote to p.
func (p Piece) IsPromotion() bool { return p >= Knight && p <= Queen }

// Char returns the lowercase FEN letter of the piece kind.
func (p Piece) Char() byte {
	switch p {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return '?'
	}
}

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// pieceFromChar converts a FEN letter into side and kind. Upper case is White.
func pieceFromChar(ch byte) (Side, Piece, bool) {
	side := White
	if ch >= 'a' && ch <= 'z' {
		side = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return side, Pawn, true
	case 'N':
		return side, Knight, true
	case 'B':
		return side, Bishop, true
	case 'R':
		return side, Rook, true
	case 'Q':
		return side, Queen, true
	case 'K':
		return side, King, true
	default:
		return White, NoPiece, false
	}
}

// charFromPiece returns the FEN letter for a piece of the given side.
func charFromPiece(side Side, p Piece) byte {
	ch := p.Char()
	if side == White {
		ch -= 'a' - 'A'
	}
	return ch
}
