// Package session drives a single chess match on top of package rules. It keeps
// the position history needed for repetition claims and records how the match ended.
package session

import (
	"fmt"

	"golang.org/x/exp/slices"

	"dotchess/rules"
)

// Match is a mutable game in progress. It is not safe for concurrent use.
type Match struct {
	game rules.Game
	// history holds the hashes of every position since the last irreversible move,
	// the current one included.
	history []rules.ZobristHash
	moves   []uint16
	outcome *Outcome
}

// New starts a match from a FEN position.
func New(fen string) (*Match, error) {
	g, err := rules.New(fen)
	if err != nil {
		return nil, err
	}
	return newMatch(g), nil
}

// NewMatch starts a match from the standard initial position.
func NewMatch() *Match {
	return newMatch(rules.NewGame())
}

func newMatch(g rules.Game) *Match {
	return &Match{
		game:    g,
		history: []rules.ZobristHash{g.Zobrist()},
	}
}

// Game returns the current position.
func (m *Match) Game() rules.Game { return m.game }

// History returns a copy of the repetition history.
func (m *Match) History() []rules.ZobristHash { return slices.Clone(m.history) }

// Moves returns the packed moves played so far.
func (m *Match) Moves() []uint16 { return slices.Clone(m.moves) }

// Outcome reports how the match ended. ok is false while it is still running.
func (m *Match) Outcome() (o Outcome, ok bool) {
	if m.outcome == nil {
		return Outcome{}, false
	}
	return *m.outcome, true
}

// IsRepetition reports whether the current position has occurred three times.
func (m *Match) IsRepetition() bool {
	return m.game.IsRepetition(m.history)
}

// Play applies a move for the side to move. Checkmate, stalemate and insufficient
// material end the match automatically.
func (m *Match) Play(mv rules.Move) ([]rules.Event, error) {
	if m.outcome != nil {
		return nil, ErrGameOver
	}
	side := m.game.SideToMove()
	next, events, err := m.game.Play(mv)
	if err != nil {
		return nil, err
	}

	m.game = next
	m.moves = append(m.moves, mv.Encode())
	if next.HalfmoveClock() == 0 {
		m.history = m.history[:0]
	}
	m.history = append(m.history, next.Zobrist())

	canMove := next.HasLegalMoves()
	switch {
	case !canMove && next.IsCheck():
		m.finish(Outcome{Reason: Checkmate, Winner: side, Decisive: true})
	case !canMove:
		m.finish(Outcome{Reason: Stalemate})
	case !next.HasSufficientMatingMaterial():
		m.finish(Outcome{Reason: InsufficientMatingMaterial})
	}
	return events, nil
}

// PlayText parses move text and plays it.
func (m *Match) PlayText(s string) ([]rules.Event, error) {
	mv, err := rules.ParseMove(s)
	if err != nil {
		return nil, err
	}
	return m.Play(mv)
}

// ClaimDraw ends the match as a draw when the claimed reason holds. Only
// FiftyMoveRule and Repetition can be claimed.
func (m *Match) ClaimDraw(reason Reason) error {
	if m.outcome != nil {
		return ErrGameOver
	}
	switch {
	case reason == FiftyMoveRule && m.game.IsFiftyMoveRule():
	case reason == Repetition && m.IsRepetition():
	default:
		return fmt.Errorf("%w: %s", ErrClaimRejected, reason)
	}
	m.finish(Outcome{Reason: reason})
	return nil
}

// Resign ends the match with the side to move losing.
func (m *Match) Resign() error {
	if m.outcome != nil {
		return ErrGameOver
	}
	m.finish(Outcome{Reason: Resignation, Winner: m.game.SideToMove().Opponent(), Decisive: true})
	return nil
}

func (m *Match) finish(o Outcome) {
	m.outcome = &o
}
