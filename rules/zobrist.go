package rules

import "math/rand"

// ZobristHash is an incrementally updated position fingerprint.
type ZobristHash uint64

// Key table layout.
const (
	zobristPieceKeys     = 768 // side*384 + kind*64 + square
	zobristEnPassantBase = 768 // + file
	zobristCastlingBase  = 776 // + castlingKeyOffset
	zobristWhiteTurn     = 780
	zobristKeyCount      = 781
)

// castlingKeyOffset orders the right keys white Q, black Q, white K, black K.
var castlingKeyOffset = [4]int{
	WhiteQueenSide: 0,
	BlackQueenSide: 1,
	WhiteKingSide:  2,
	BlackKingSide:  3,
}

// zobristKeys is filled once during package initialization and only read afterwards.
var zobristKeys = newZobristKeys()

func newZobristKeys() [zobristKeyCount]uint64 {
	// Fixed seed keeps hashes reproducible across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	var keys [zobristKeyCount]uint64
	for i := range keys {
		keys[i] = rnd.Uint64()
	}
	return keys
}

func pieceKeyIndex(side Side, p Piece, sq Square) int {
	return int(side)*384 + p.index()*64 + int(sq)
}

func pieceKey(side Side, p Piece, sq Square) ZobristHash {
	return ZobristHash(zobristKeys[pieceKeyIndex(side, p, sq)])
}

func enPassantKey(f File) ZobristHash {
	return ZobristHash(zobristKeys[zobristEnPassantBase+int(f)])
}

func castlingKey(r CastlingRight) ZobristHash {
	return ZobristHash(zobristKeys[zobristCastlingBase+castlingKeyOffset[r]])
}

func whiteTurnKey() ZobristHash { return ZobristHash(zobristKeys[zobristWhiteTurn]) }

// ComputeZobrist calculates the hash of a position from scratch.
func ComputeZobrist(b Board, f PositionFlags) ZobristHash {
	var h ZobristHash

	for _, side := range [2]Side{White, Black} {
		own := b.Pieces(side)
		for p := Pawn; p <= King; p++ {
			set := own & b.Kind(p)
			for set != 0 {
				h ^= pieceKey(side, p, set.PopSquare())
			}
		}
	}

	if file, ok := f.EnPassantFile(); ok {
		h ^= enPassantKey(file)
	}

	for _, r := range AllCastlingRights {
		if f.HasCastlingRight(r) {
			h ^= castlingKey(r)
		}
	}

	// Side to move (only XOR if White to move)
	if f.SideToMove() == White {
		h ^= whiteTurnKey()
	}
	return h
}

// Apply folds a move's events into the hash.
func (h ZobristHash) Apply(events []Event) ZobristHash {
	for _, e := range events {
		switch e.Kind {
		case PieceLeft, PieceEntered:
			h ^= pieceKey(e.Side, e.Piece, e.Square)
		case CastlingRightLost:
			h ^= castlingKey(e.Right)
		case EnPassantOpened, EnPassantClosed:
			h ^= enPassantKey(e.File)
		case TurnFlipped:
			h ^= whiteTurnKey()
		}
	}
	return h
}
