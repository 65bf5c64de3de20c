package rules

import "errors"

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square int

const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// File is a board column, 0 = a.
type File int

// Rank is a board row, 0 = rank 1.
type Rank int

// NewSquare combines a file and rank.
func NewSquare(f File, r Rank) Square { return Square(int(r)*8 + int(f)) }

// File returns the column of the square.
func (sq Square) File() File { return File(sq % 8) }

// Rank returns the row of the square.
func (sq Square) Rank() Rank { return Rank(sq / 8) }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

// BitSet returns a set holding only sq.
func (sq Square) BitSet() BitSet { return BitSet(1) << uint(sq) }

// String renders the square in algebraic form ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

func (f File) String() string { return string([]byte{'a' + byte(f)}) }

// ParseSquare converts algebraic notation ("e4") into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, errors.New("invalid algebraic square length")
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.New("invalid algebraic square")
	}
	return NewSquare(File(file-'a'), Rank(rank-'1')), nil
}

// Direction is one of the eight ray directions used by sliding pieces.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// positive reports whether rays in this direction run toward increasing square index.
func (d Direction) positive() bool {
	switch d {
	case North, East, NorthEast, NorthWest:
		return true
	}
	return false
}
