package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func fenError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: invalid FEN: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// ParseFEN parses a six-field FEN string into a Game. The position must have exactly
// one king per side and the side not to move must not be in check.
func ParseFEN(fen string) (Game, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Game{}, fenError("expected 6 fields, got %d", len(fields))
	}

	var g Game

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Game{}, fenError("expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return Game{}, fenError("rank %d has more than 8 files", rank+1)
				}
				continue
			}
			side, piece, ok := pieceFromChar(ch)
			if !ok {
				return Game{}, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return Game{}, fenError("rank %d has more than 8 files", rank+1)
			}
			g.board.setPiece(side, piece, NewSquare(File(file), rank))
			file++
		}
		if file != 8 {
			return Game{}, fenError("rank %d has %d files", rank+1, file)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		g.flags = g.flags.withSideToMove(White)
	case "b":
		g.flags = g.flags.withSideToMove(Black)
	default:
		return Game{}, fenError("side to move must be 'w' or 'b', got %q", fields[1])
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			r, ok := castlingRightFromChar(fields[2][j])
			if !ok {
				return Game{}, fenError("invalid castling character %q", fields[2][j])
			}
			g.flags = g.flags.withCastlingRight(r, true)
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Game{}, fenError("en passant square %q: %v", fields[3], err)
		}
		if sq != NewSquare(sq.File(), epRank(g.flags.SideToMove())) {
			return Game{}, fenError("en passant square %s does not match side to move", sq)
		}
		mover := g.flags.SideToMove()
		pushed := sq - 8
		if mover == Black {
			pushed = sq + 8
		}
		if _, _, occupied := g.board.PieceAt(sq); occupied {
			return Game{}, fenError("en passant square %s is occupied", sq)
		}
		if s, p, ok := g.board.PieceAt(pushed); !ok || s != mover.Opponent() || p != Pawn {
			return Game{}, fenError("en passant square %s has no %s pawn on %s", sq, mover.Opponent(), pushed)
		}
		g.flags = g.flags.withEnPassant(sq.File())
	}

	// 5. Halfmove clock
	halfmove, err := strconv.ParseUint(fields[4], 10, 32)
	if err != nil {
		return Game{}, fenError("halfmove clock %q is not a number", fields[4])
	}
	g.halfmoveClock = uint32(halfmove)

	// 6. Fullmove number
	fullmove, err := strconv.ParseUint(fields[5], 10, 32)
	if err != nil {
		return Game{}, fenError("fullmove number %q is not a number", fields[5])
	}
	g.fullmoveNumber = uint32(fullmove)

	if err := g.validate(); err != nil {
		return Game{}, fmt.Errorf("%w: invalid FEN: %v", ErrInvalidArgument, err)
	}
	g.hash = ComputeZobrist(g.board, g.flags)
	return g, nil
}

// epRank is the rank of the en passant target when side is to move.
func epRank(side Side) Rank {
	if side == White {
		return 5
	}
	return 2
}

func castlingRightFromChar(ch byte) (CastlingRight, bool) {
	for _, r := range AllCastlingRights {
		if r.Char() == ch {
			return r, true
		}
	}
	return 0, false
}

// validate checks the position-level invariants a FEN must satisfy.
func (g Game) validate() error {
	if err := g.board.Validate(); err != nil {
		return err
	}
	for _, side := range [2]Side{White, Black} {
		if n := (g.board.Pieces(side) & g.board.kings).Count(); n != 1 {
			return fmt.Errorf("%s has %d kings", side, n)
		}
	}
	if g.board.IsKingAttacked(g.SideToMove().Opponent()) {
		return errors.New("side not to move is in check")
	}
	return nil
}

// FEN serializes the game. Castling rights are written in KQkq order.
func (g Game) FEN() (string, error) {
	if err := g.validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	var sb strings.Builder
	for rank := Rank(7); rank >= 0; rank-- {
		empty := 0
		for file := File(0); file < 8; file++ {
			side, piece, ok := g.board.PieceAt(NewSquare(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(side, piece))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if g.SideToMove() == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	wrote := false
	for _, r := range [4]CastlingRight{WhiteKingSide, WhiteQueenSide, BlackKingSide, BlackQueenSide} {
		if g.flags.HasCastlingRight(r) {
			sb.WriteByte(r.Char())
			wrote = true
		}
	}
	if !wrote {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(g.flags.EnPassantTarget().String())

	fmt.Fprintf(&sb, " %d %d", g.halfmoveClock, g.fullmoveNumber)
	return sb.String(), nil
}
