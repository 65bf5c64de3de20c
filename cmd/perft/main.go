package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/profile"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"dotchess/rules"
	"dotchess/suite"
)

func main() {
	os.Exit(run())
}

func run() int {
	fen := flag.String("fen", rules.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	moves := flag.String("moves", "", "Space separated moves to play before counting, e.g. \"e2e4 e7e5\"")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	suitePath := flag.String("suite", "", "Run a perft suite file (.yaml/.epd, optionally .zst/.bz2)")
	maxDepth := flag.Int("maxdepth", 0, "Deepest suite depth to run (0 = all)")
	verify := flag.String("verify", "", "Cross-check per-move node counts against another generator: dragontooth or goose")
	prof := flag.String("profile", "", "Profile the run: cpu or mem")
	profDir := flag.String("profiledir", ".", "Directory for profile output")
	flag.Parse()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profDir)).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profDir)).Stop()
	default:
		fmt.Fprintf(os.Stderr, "unknown -profile %q (want cpu or mem)\n", *prof)
		return 2
	}

	if *suitePath != "" {
		return runSuite(*suitePath, *maxDepth)
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		return 2
	}

	g, err := rules.New(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		return 2
	}
	for _, text := range strings.Fields(*moves) {
		if g, err = g.MakeMoveText(text); err != nil {
			fmt.Fprintf(os.Stderr, "move %s: %v\n", text, err)
			return 2
		}
	}

	if *verify != "" {
		oracle, ok := oracles[*verify]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown -verify %q (want dragontooth or goose)\n", *verify)
			return 2
		}
		fen, err := g.FEN()
		if err != nil {
			log.Print(err)
			return 2
		}
		theirs, err := oracle(fen, *depth)
		if err != nil {
			log.Print(err)
			return 2
		}
		if !verifyDivide(g, *depth, *verify, theirs) {
			return 1
		}
		fmt.Println("verify: ok")
		return 0
	}

	// Optional divide output
	if *divide {
		div := rules.PerftDivide(g, *depth)
		counts := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			counts[m.String()] = n
			sum += n
		}
		keys := maps.Keys(counts)
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, counts[k])
		}
		fmt.Printf("Total: %d\n", sum)
		return 0
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += rules.Perft(g, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
	return 0
}

func runSuite(path string, maxDepth int) int {
	src, err := suite.Open(path)
	if err != nil {
		log.Print(err)
		return 2
	}
	cases, err := src.Cases()
	src.Close()
	if err != nil {
		log.Print(err)
		return 2
	}
	fmt.Printf("%s: %d cases (%s, %s decompressed)\n", path, len(cases), src.Size(), src.BytesRead())

	failed := 0
	err = suite.Run(context.Background(), cases, maxDepth, func(r suite.Result) {
		fmt.Println(r)
		if !r.OK() {
			failed++
		}
	})
	if err != nil {
		log.Print(err)
		return 2
	}
	if failed > 0 {
		fmt.Printf("%d failures\n", failed)
		return 1
	}
	return 0
}

// divideOracle returns per-root-move node counts from an independent generator.
type divideOracle func(fen string, depth int) (map[string]uint64, error)

var oracles = map[string]divideOracle{
	"dragontooth": dragontoothDivide,
	"goose":       gooseDivide,
}

// verifyDivide compares per-root-move node counts with another generator.
func verifyDivide(g rules.Game, depth int, name string, theirs map[string]uint64) bool {
	ours := make(map[string]uint64)
	for m, n := range rules.PerftDivide(g, depth) {
		ours[m.String()] = n
	}

	keys := maps.Keys(ours)
	for k := range theirs {
		if _, ok := ours[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	ok := true
	for _, k := range keys {
		a, inOurs := ours[k]
		b, inTheirs := theirs[k]
		switch {
		case !inOurs:
			fmt.Printf("%s: missing (%s %d)\n", k, name, b)
			ok = false
		case !inTheirs:
			fmt.Printf("%s: extra (%d)\n", k, a)
			ok = false
		case a != b:
			fmt.Printf("%s: %d, %s %d\n", k, a, name, b)
			ok = false
		}
	}
	return ok
}

func gooseDivide(fen string, depth int) (map[string]uint64, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(board, depth) {
		out[m.String()] = n
	}
	return out, nil
}

func dragontoothDivide(fen string, depth int) (map[string]uint64, error) {
	board := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		undo := board.Apply(m)
		out[m.String()] = dragontoothPerft(&board, depth-1)
		undo()
	}
	return out, nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		undo()
	}
	return nodes
}
