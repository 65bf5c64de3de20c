package bench

import (
	"testing"

	"dotchess/rules"
)

func benchLegalMoves(b *testing.B, fen string) {
	g, err := rules.New(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.LegalMoves()
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, rules.FENStartPos)
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchLegalMoves(b, fen)
}

func BenchmarkLegalMoves_Pos6(b *testing.B) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	benchLegalMoves(b, fen)
}

func BenchmarkLegalMoves_EP(b *testing.B) {
	benchLegalMoves(b, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
}

func BenchmarkHasLegalMoves_Initial(b *testing.B) {
	g := rules.NewGame()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasLegalMoves()
	}
}

func BenchmarkMakeMove_AllMoves_Initial(b *testing.B) {
	g := rules.NewGame()
	moves := g.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			if _, err := g.MakeMove(m); err != nil {
				b.Fatalf("illegal move in cached list: %v", m)
			}
		}
	}
}

func BenchmarkZobristFromScratch_Kiwipete(b *testing.B) {
	g, err := rules.New("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rules.ComputeZobrist(g.Board(), g.Flags())
	}
}
