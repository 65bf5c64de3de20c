package rules_test

import (
	"testing"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"dotchess/rules"
)

func TestPerftInitialPosition(t *testing.T) {
	g := rules.NewGame()
	want := []uint64{1, 20, 400, 8902}
	for depth, n := range want {
		if got := rules.Perft(g, depth); got != n {
			t.Fatalf("perft depth%d: got %d want %d", depth, got, n)
		}
	}
	if testing.Short() {
		return
	}
	if got := rules.Perft(g, 4); got != 197281 {
		t.Fatalf("perft depth4: got %d want %d", got, 197281)
	}
}

func TestPerftKiwipete(t *testing.T) {
	// Canonical Kiwipete position
	g := mustGame(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got := rules.Perft(g, 1); got != 48 {
		t.Fatalf("Kiwipete depth1: got %d want %d", got, 48)
	}
	if got := rules.Perft(g, 2); got != 2039 {
		t.Fatalf("Kiwipete depth2: got %d want %d", got, 2039)
	}
	if testing.Short() {
		return
	}
	if got := rules.Perft(g, 3); got != 97862 {
		t.Fatalf("Kiwipete depth3: got %d want %d", got, 97862)
	}
}

func TestPerftSpecialPositions(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		nodes []uint64 // index = depth-1
	}{
		{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}},
		{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}},
		{"position 6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", []uint64{46, 2079}},
	}
	for _, c := range cases {
		g := mustGame(t, c.fen)
		for i, want := range c.nodes {
			if got := rules.Perft(g, i+1); got != want {
				t.Fatalf("%s depth%d: got %d want %d", c.name, i+1, got, want)
			}
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	g := mustGame(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	div := rules.PerftDivide(g, 2)
	if len(div) != 48 {
		t.Fatalf("divide roots: got %d want 48", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 2039 {
		t.Fatalf("divide sum: got %d want 2039", sum)
	}
	if len(rules.PerftDivide(g, 0)) != 0 {
		t.Fatalf("divide at depth 0 should be empty")
	}
}

// dragontoothMoves lists the legal moves of an independent generator as text.
func dragontoothMoves(b *dragontoothmg.Board) []string {
	var out []string
	for _, m := range b.GenerateLegalMoves() {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

func ourMoves(g rules.Game) []string {
	var out []string
	for _, m := range g.LegalMoves() {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

// compareTree walks both generators in lock step and compares move lists.
func compareTree(t *testing.T, g rules.Game, b *dragontoothmg.Board, depth int) {
	t.Helper()
	ours := ourMoves(g)
	theirs := dragontoothMoves(b)
	if !slices.Equal(ours, theirs) {
		t.Fatalf("%s:\n ours   %v\n theirs %v", g, ours, theirs)
	}
	if depth <= 1 {
		return
	}
	for _, m := range b.GenerateLegalMoves() {
		text := m.String()
		next, err := g.MakeMoveText(text)
		if err != nil {
			t.Fatalf("%s: %s: %v", g, text, err)
		}
		undo := b.Apply(m)
		compareTree(t, next, b, depth-1)
		undo()
	}
}

func TestLegalMovesMatchDragontooth(t *testing.T) {
	fens := []string{
		rules.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}
	depth := 2
	if testing.Short() {
		depth = 1
	}
	for _, fen := range fens {
		g := mustGame(t, fen)
		b := dragontoothmg.ParseFen(fen)
		compareTree(t, g, &b, depth)
	}
}

func TestPerftDivideMatchesGoose(t *testing.T) {
	fens := []string{
		rules.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	}
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range fens {
		board, err := goosemg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("goosemg.ParseFEN(%q): %v", fen, err)
		}
		theirs := make(map[string]uint64)
		for m, n := range goosemg.PerftDivide(board, depth) {
			theirs[m.String()] = n
		}

		g := mustGame(t, fen)
		ours := make(map[string]uint64)
		for m, n := range rules.PerftDivide(g, depth) {
			ours[m.String()] = n
		}

		if len(ours) != len(theirs) {
			t.Fatalf("%s: %d root moves, goosemg %d", fen, len(ours), len(theirs))
		}
		for k, n := range ours {
			if theirs[k] != n {
				t.Fatalf("%s: %s: %d nodes, goosemg %d", fen, k, n, theirs[k])
			}
		}
	}
}
