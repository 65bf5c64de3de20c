package rules

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// Depth 0 counts the position itself.
func Perft(g Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next, _, err := g.transition(m)
		if err != nil {
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(g Game, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range g.LegalMoves() {
		next, _, err := g.transition(m)
		if err != nil {
			continue
		}
		result[m] = Perft(next, depth-1)
	}
	return result
}
