package rules_test

import (
	"errors"
	"testing"

	"dotchess/rules"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		rules.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 5 40",
		"rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 2",
	}
	for _, fen := range fens {
		g, err := rules.New(fen)
		if err != nil {
			t.Fatalf("New(%q): %v", fen, err)
		}
		got, err := g.FEN()
		if err != nil {
			t.Fatalf("FEN(): %v", err)
		}
		if got != fen {
			t.Fatalf("round trip:\n got %s\nwant %s", got, fen)
		}
	}
}

func TestFENCanonicalCastlingOrder(t *testing.T) {
	g, err := rules.New("r3k2r/8/8/8/8/8/8/R3K2R w kqKQ - 0 1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := g.String(), "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestFENStartMatchesNewGame(t *testing.T) {
	g, err := rules.New(rules.FENStartPos)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	start := rules.NewGame()
	if g.Board() != start.Board() || g.Flags() != start.Flags() || g.Zobrist() != start.Zobrist() {
		t.Fatalf("parsed start position differs from NewGame")
	}
}

func TestFENErrors(t *testing.T) {
	bad := map[string]string{
		"five fields":            "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"seven ranks":            "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"bad piece":              "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rank too long":          "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rank too short":         "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"bad side":               "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"bad castling":           "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkZ - 0 1",
		"en passant wrong rank":  "k7/8/8/3pP3/8/8/8/7K w - d3 0 2",
		"en passant malformed":   "k7/8/8/3pP3/8/8/8/7K w - d 0 2",
		"en passant no pawn":     "k7/8/8/4P3/8/8/8/7K w - d6 0 2",
		"en passant own pawn":    "k7/8/8/3PP3/8/8/8/7K w - d6 0 2",
		"en passant occupied":    "k7/8/3n4/3pP3/8/8/8/7K w - d6 0 2",
		"en passant black side":  "k7/8/8/8/4P3/8/8/7K b - d3 0 2",
		"halfmove not a number":  "k7/8/8/8/8/8/8/7K w - - x 1",
		"fullmove not a number":  "k7/8/8/8/8/8/8/7K w - - 0 -1",
		"no kings":               "8/8/8/8/8/8/8/8 w - - 0 1",
		"two white kings":        "k7/8/8/8/8/8/8/K6K w - - 0 1",
		"side not to move check": "k7/8/8/8/8/8/8/R6K w - - 0 1",
	}
	for name, fen := range bad {
		if _, err := rules.New(fen); !errors.Is(err, rules.ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", name, err)
		}
	}
}

func TestFENOfZeroGame(t *testing.T) {
	var g rules.Game
	if _, err := g.FEN(); !errors.Is(err, rules.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for an uninitialized game, got %v", err)
	}
}
