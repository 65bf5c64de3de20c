package suite

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"dotchess/rules"
)

// Result is the outcome of one case at one depth.
type Result struct {
	Case    string
	Depth   int
	Want    uint64
	Got     uint64
	Elapsed time.Duration
}

// OK reports whether the node count matched.
func (r Result) OK() bool { return r.Want == r.Got }

func (r Result) String() string {
	status := "ok"
	if !r.OK() {
		status = "FAIL"
	}
	return fmt.Sprintf("%-4s %s depth %d: got %d want %d (%v)", status, r.Case, r.Depth, r.Got, r.Want, r.Elapsed)
}

// Run evaluates every case at each listed depth up to maxDepth (0 means no limit),
// shallowest first, and reports each result to fn. The context is checked between
// depths. Run returns an error for an unparsable FEN or a cancelled context; node
// count mismatches are only reported through fn.
func Run(ctx context.Context, cases []Case, maxDepth int, fn func(Result)) error {
	for _, c := range cases {
		g, err := rules.New(c.FEN)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		depths := maps.Keys(c.Nodes)
		slices.Sort(depths)
		for _, depth := range depths {
			if maxDepth > 0 && depth > maxDepth {
				break
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			got := rules.Perft(g, depth)
			fn(Result{
				Case:    c.Name,
				Depth:   depth,
				Want:    c.Nodes[depth],
				Got:     got,
				Elapsed: time.Since(start),
			})
		}
	}
	return nil
}
