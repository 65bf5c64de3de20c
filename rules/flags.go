package rules

// PositionFlags packs the non-placement state of a position into 13 bits:
//
//	bits 0-7  en passant open on file a..h
//	bit 8     white queen-side castling right
//	bit 9     white king-side castling right
//	bit 10    black queen-side castling right
//	bit 11    black king-side castling right
//	bit 12    white to move
//
// At most one en passant bit is set; withEnPassant is the only setter and it
// clears the others.
type PositionFlags uint16

const (
	enPassantBits PositionFlags = 0x00FF
	whiteTurnBit  PositionFlags = 1 << 12
)

// CastlingRight identifies one of the four castling rights.
type CastlingRight uint8

const (
	WhiteQueenSide CastlingRight = iota
	WhiteKingSide
	BlackQueenSide
	BlackKingSide
)

// AllCastlingRights lists the rights in flag-bit order.
var AllCastlingRights = [4]CastlingRight{WhiteQueenSide, WhiteKingSide, BlackQueenSide, BlackKingSide}

// QueenSide returns side's queen-side right.
func QueenSide(side Side) CastlingRight {
	if side == White {
		return WhiteQueenSide
	}
	return BlackQueenSide
}

// KingSide returns side's king-side right.
func KingSide(side Side) CastlingRight {
	if side == White {
		return WhiteKingSide
	}
	return BlackKingSide
}

// Side returns the owner of the right.
func (r CastlingRight) Side() Side {
	if r == WhiteQueenSide || r == WhiteKingSide {
		return White
	}
	return Black
}

// Char returns the FEN letter of the right.
func (r CastlingRight) Char() byte {
	return [4]byte{'Q', 'K', 'q', 'k'}[r]
}

func (r CastlingRight) bit() PositionFlags { return 1 << (8 + uint(r)) }

// defaultFlags is the starting position: all rights held, white to move.
const defaultFlags PositionFlags = 0x1F00

// SideToMove reports which side is to play.
func (f PositionFlags) SideToMove() Side {
	if f&whiteTurnBit != 0 {
		return White
	}
	return Black
}

func (f PositionFlags) withSideToMove(side Side) PositionFlags {
	if side == White {
		return f | whiteTurnBit
	}
	return f &^ whiteTurnBit
}

// HasCastlingRight reports whether right r is still held.
func (f PositionFlags) HasCastlingRight(r CastlingRight) bool { return f&r.bit() != 0 }

func (f PositionFlags) withCastlingRight(r CastlingRight, held bool) PositionFlags {
	if held {
		return f | r.bit()
	}
	return f &^ r.bit()
}

// EnPassantFile returns the file open for en passant capture, if any.
func (f PositionFlags) EnPassantFile() (File, bool) {
	ep := f & enPassantBits
	if ep == 0 {
		return 0, false
	}
	return File(BitSet(ep).BitScanForward()), true
}

// withEnPassant opens file for en passant, closing any other file.
func (f PositionFlags) withEnPassant(file File) PositionFlags {
	return (f &^ enPassantBits) | PositionFlags(1)<<uint(file)
}

func (f PositionFlags) withoutEnPassant() PositionFlags { return f &^ enPassantBits }

// EnPassantTarget returns the square a pawn of the side to move lands on when
// capturing en passant, or NoSquare.
func (f PositionFlags) EnPassantTarget() Square {
	file, ok := f.EnPassantFile()
	if !ok {
		return NoSquare
	}
	if f.SideToMove() == White {
		return NewSquare(file, 5)
	}
	return NewSquare(file, 2)
}
