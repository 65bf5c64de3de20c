package rules

import "math/bits"

// BitSet is a set of squares packed into 64 bits, bit index = rank*8+file.
type BitSet uint64

const (
	EmptySet BitSet = 0
	FullSet  BitSet = ^BitSet(0)

	FileA BitSet = 0x0101010101010101
	FileH BitSet = FileA << 7
	Rank1 BitSet = 0xFF
	Rank8 BitSet = Rank1 << 56
)

// Precomputed per-square masks.
var rankMask [64]BitSet
var fileMask [64]BitSet
var diagonalMask [64]BitSet     // a1-h8 direction
var antiDiagonalMask [64]BitSet // h1-a8 direction
var knightMask [64]BitSet
var kingMask [64]BitSet

// pawnAttackMask[side][sq] gives the squares a pawn of side attacks from sq.
var pawnAttackMask [2][64]BitSet

// rayMask[sq][dir] holds every square in that direction from sq, excluding sq.
var rayMask [64][8]BitSet

func init() {
	initLineMasks()
	initLeaperMasks()
	initRayMasks()
}

func initLineMasks() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		for t := 0; t < 64; t++ {
			tf := t % 8
			tr := t / 8
			bit := BitSet(1) << uint(t)
			if tr == rank {
				rankMask[sq] |= bit
			}
			if tf == file {
				fileMask[sq] |= bit
			}
			if tr-tf == rank-file {
				diagonalMask[sq] |= bit
			}
			if tr+tf == rank+file {
				antiDiagonalMask[sq] |= bit
			}
		}
	}
}

func initLeaperMasks() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		for _, off := range knightOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				knightMask[sq] |= BitSet(1) << uint(rf*8+ff)
			}
		}
		for _, off := range kingOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				kingMask[sq] |= BitSet(1) << uint(rf*8+ff)
			}
		}

		// Pawn captures fall out of the guarded diagonal shifts.
		b := Square(sq).BitSet()
		pawnAttackMask[White][sq] = b.NorthEast() | b.NorthWest()
		pawnAttackMask[Black][sq] = b.SouthEast() | b.SouthWest()
	}
}

// initRayMasks restricts each line mask to one half of the board.
func initRayMasks() {
	for i := 0; i < 64; i++ {
		sq := Square(i)
		pos := PositiveHalf(sq)
		neg := NegativeHalf(sq)
		rayMask[sq][North] = fileMask[sq] & pos
		rayMask[sq][South] = fileMask[sq] & neg
		rayMask[sq][East] = rankMask[sq] & pos
		rayMask[sq][West] = rankMask[sq] & neg
		rayMask[sq][NorthEast] = diagonalMask[sq] & pos
		rayMask[sq][SouthWest] = diagonalMask[sq] & neg
		rayMask[sq][NorthWest] = antiDiagonalMask[sq] & pos
		rayMask[sq][SouthEast] = antiDiagonalMask[sq] & neg
	}
}

// PositiveHalf returns every square with a higher index than sq.
func PositiveHalf(sq Square) BitSet {
	return ^((BitSet(1) << uint(sq+1)) - 1)
}

// NegativeHalf returns every square with a lower index than sq.
func NegativeHalf(sq Square) BitSet {
	return (BitSet(1) << uint(sq)) - 1
}

func RankMask(sq Square) BitSet         { return rankMask[sq] }
func FileMask(sq Square) BitSet         { return fileMask[sq] }
func DiagonalMask(sq Square) BitSet     { return diagonalMask[sq] }
func AntiDiagonalMask(sq Square) BitSet { return antiDiagonalMask[sq] }
func KnightMask(sq Square) BitSet       { return knightMask[sq] }
func KingMask(sq Square) BitSet         { return kingMask[sq] }

// PawnAttackMask returns the squares a pawn of side attacks from sq.
func PawnAttackMask(side Side, sq Square) BitSet { return pawnAttackMask[side][sq] }

// RayMask returns the empty-board ray from sq in direction d.
func RayMask(sq Square, d Direction) BitSet { return rayMask[sq][d] }

// ==========================
// Set operations
// ==========================

func (b BitSet) Union(o BitSet) BitSet     { return b | o }
func (b BitSet) Intersect(o BitSet) BitSet { return b & o }
func (b BitSet) Xor(o BitSet) BitSet       { return b ^ o }
func (b BitSet) Complement() BitSet        { return ^b }

func (b BitSet) IsEmpty() bool  { return b == 0 }
func (b BitSet) NotEmpty() bool { return b != 0 }
func (b BitSet) Count() int     { return bits.OnesCount64(uint64(b)) }

// Has reports whether sq is in the set.
func (b BitSet) Has(sq Square) bool { return b&sq.BitSet() != 0 }

// Shifts by one square. East/west variants drop squares that would wrap to the far file.
func (b BitSet) North() BitSet     { return b << 8 }
func (b BitSet) South() BitSet     { return b >> 8 }
func (b BitSet) East() BitSet      { return (b << 1) &^ FileA }
func (b BitSet) West() BitSet      { return (b >> 1) &^ FileH }
func (b BitSet) NorthEast() BitSet { return (b << 9) &^ FileA }
func (b BitSet) NorthWest() BitSet { return (b << 7) &^ FileH }
func (b BitSet) SouthEast() BitSet { return (b >> 7) &^ FileA }
func (b BitSet) SouthWest() BitSet { return (b >> 9) &^ FileH }

// BitScanForward returns the lowest square in the set.
// The set must not be empty; NoSquare is returned if it is.
func (b BitSet) BitScanForward() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// BitScanReverse returns the highest square in the set.
// The set must not be empty; NoSquare is returned if it is.
func (b BitSet) BitScanReverse() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopSquare removes and returns the lowest square of the set.
func (b *BitSet) PopSquare() Square {
	sq := b.BitScanForward()
	*b &= *b - 1
	return sq
}

// Squares lists the members in ascending order.
func (b BitSet) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, b.PopSquare())
	}
	return out
}

// String draws the set as an 8x8 grid, rank 8 first.
func (b BitSet) String() string {
	buf := make([]byte, 0, 72)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(File(file), Rank(rank))) {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// ==========================
// Sliding attacks
// ==========================

// RayAttacks returns the squares attacked from sq in direction d. The ray stops at
// and includes the first occupied square.
func RayAttacks(sq Square, d Direction, occupied BitSet) BitSet {
	ray := rayMask[sq][d]
	blockers := ray & occupied
	if blockers == 0 {
		return ray
	}
	var nearest Square
	if d.positive() {
		nearest = blockers.BitScanForward()
	} else {
		nearest = blockers.BitScanReverse()
	}
	return ray ^ rayMask[nearest][d]
}

// RookAttacks returns rook attacks from sq given the occupancy.
func RookAttacks(sq Square, occupied BitSet) BitSet {
	return RayAttacks(sq, North, occupied) |
		RayAttacks(sq, South, occupied) |
		RayAttacks(sq, East, occupied) |
		RayAttacks(sq, West, occupied)
}

// BishopAttacks returns bishop attacks from sq given the occupancy.
func BishopAttacks(sq Square, occupied BitSet) BitSet {
	return RayAttacks(sq, NorthEast, occupied) |
		RayAttacks(sq, NorthWest, occupied) |
		RayAttacks(sq, SouthEast, occupied) |
		RayAttacks(sq, SouthWest, occupied)
}

// QueenAttacks combines rook and bishop attacks.
func QueenAttacks(sq Square, occupied BitSet) BitSet {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}
