package bench

import (
	"testing"

	"dotchess/rules"
)

func benchPerft(b *testing.B, fen string, depth int) {
	g, err := rules.New(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rules.Perft(g, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, rules.FENStartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchPerft(b, fen, 3)
}

func BenchmarkPerft_EnPassant_D4(b *testing.B) {
	benchPerft(b, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 4)
}

func BenchmarkPerft_Promotion_D3(b *testing.B) {
	benchPerft(b, "1n5k/P7/8/8/8/8/8/7K w - - 0 1", 3)
}

func BenchmarkPerftDivide_Position3_D3(b *testing.B) {
	g, err := rules.New("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rules.PerftDivide(g, 3)
	}
}
