package rules

import "fmt"

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Game is an immutable chess position: placement, flags, clocks and hash.
// Every accepted move returns a new Game; the receiver is never modified.
type Game struct {
	board          Board
	flags          PositionFlags
	hash           ZobristHash
	halfmoveClock  uint32
	fullmoveNumber uint32
}

// New parses a FEN string into a Game.
func New(fen string) (Game, error) {
	return ParseFEN(fen)
}

// NewGame returns the standard starting position.
func NewGame() Game {
	g := Game{
		board:          StartingBoard(),
		flags:          defaultFlags,
		fullmoveNumber: 1,
	}
	g.hash = ComputeZobrist(g.board, g.flags)
	return g
}

// Board returns the piece placement.
func (g Game) Board() Board { return g.board }

// Flags returns the packed turn/castling/en-passant state.
func (g Game) Flags() PositionFlags { return g.flags }

// SideToMove reports which side is to play.
func (g Game) SideToMove() Side { return g.flags.SideToMove() }

// Zobrist returns the position hash.
func (g Game) Zobrist() ZobristHash { return g.hash }

// HalfmoveClock counts half-moves since the last pawn move or capture.
func (g Game) HalfmoveClock() uint32 { return g.halfmoveClock }

// FullmoveNumber starts at 1 and increments after Black's move.
func (g Game) FullmoveNumber() uint32 { return g.fullmoveNumber }

// MakeMove applies m and returns the resulting position.
func (g Game) MakeMove(m Move) (Game, error) {
	next, _, err := g.Play(m)
	return next, err
}

// MakeMoveText parses move text and applies it.
func (g Game) MakeMoveText(s string) (Game, error) {
	m, err := ParseMove(s)
	if err != nil {
		return g, err
	}
	return g.MakeMove(m)
}

// Play applies m and also returns the ordered change events it produced.
// On error the returned Game is the receiver, unchanged.
func (g Game) Play(m Move) (Game, []Event, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return g, nil, fmt.Errorf("%w: move %v is off the board", ErrInvalidArgument, m)
	}
	side, _, ok := g.board.PieceAt(m.From)
	if !ok {
		return g, nil, fmt.Errorf("%w: origin square %s is empty", ErrInvalidArgument, m.From)
	}
	if side != g.SideToMove() {
		return g, nil, fmt.Errorf("%w: %s piece on %s but %s to move", ErrInvalidArgument, side, m.From, g.SideToMove())
	}
	if !g.PseudoLegalFrom(m.From).Has(m.To) {
		return g, nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}

	next, events, err := g.transition(m)
	if err != nil {
		return g, nil, err
	}
	if next.board.IsKingAttacked(side) {
		return g, nil, fmt.Errorf("%w: %v leaves the %s king in check", ErrIllegalMove, m, side)
	}
	next.hash = g.hash.Apply(events)
	return next, events, nil
}

// String renders the position as FEN.
func (g Game) String() string {
	fen, err := g.FEN()
	if err != nil {
		return "invalid game: " + err.Error()
	}
	return fen
}
