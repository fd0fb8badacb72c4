// Package game runs a statement sequence over a candidate space, tracking
// the remaining set and its snapshots. There is no backtracking: statements
// apply strictly in the supplied order.
package game

import (
	"errors"

	"svw.info/cheryl/internal/domain"
	"svw.info/cheryl/internal/evaluator"
)

// Status is the state a game reaches while statements are applied.
type Status int

const (
	Active       Status = iota // statements remain and candidates survive
	Solved                     // exactly one candidate survived everything
	Exhausted                  // statements ran out with several survivors
	Contradicted               // the remaining set became empty
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case Contradicted:
		return "contradicted"
	default:
		return "unknown"
	}
}

// Game owns one live remaining set over a space. Each statement replaces the
// set rather than mutating it; prior snapshots belong to the trace.
type Game struct {
	space     *domain.Space
	remaining []domain.Candidate
	trace     domain.Trace
	status    Status
}

func New(space *domain.Space) *Game {
	return &Game{space: space, remaining: space.Candidates, status: Active}
}

func (g *Game) Space() *domain.Space { return g.space }

// Remaining is the live set after the statements applied so far.
func (g *Game) Remaining() []domain.Candidate { return g.remaining }

// Trace holds the recorded snapshots of the last traced Solve run.
func (g *Game) Trace() domain.Trace { return g.trace }

func (g *Game) Status() Status { return g.status }

// Solve applies the statements in order to the full pool and returns the
// unique surviving candidate. A ContradictionError or UnderdeterminedError
// reports the expected non-unique outcomes; configuration errors in any
// statement abort the run before any filtering happens.
func (g *Game) Solve(statements []domain.Statement, withTrace bool) (domain.Candidate, error) {
	for _, st := range statements {
		if err := evaluator.Validate(g.space, st); err != nil {
			return nil, err
		}
	}

	rem := g.space.Candidates
	g.status = Active
	g.trace = nil
	if withTrace {
		g.trace = domain.Trace{snapshot(rem)}
	}

	for i, st := range statements {
		next, err := evaluator.Apply(g.space, rem, st)
		if err != nil {
			return nil, err
		}
		rem = next
		g.remaining = rem
		if withTrace {
			g.trace = append(g.trace, snapshot(rem))
		}
		if len(rem) == 0 {
			g.status = Contradicted
			return nil, &domain.ContradictionError{Statement: i + 1}
		}
	}

	g.remaining = rem
	if len(rem) == 1 {
		g.status = Solved
		return rem[0], nil
	}
	g.status = Exhausted
	return nil, &domain.UnderdeterminedError{Remaining: rem}
}

// NumSolutions reports the terminal remaining-set size for the statement
// sequence, with a contradiction counted as zero survivors. Configuration
// errors are passed through.
func (g *Game) NumSolutions(statements []domain.Statement) (int, error) {
	_, err := g.Solve(statements, false)
	if err == nil {
		return 1, nil
	}
	var under *domain.UnderdeterminedError
	if errors.As(err, &under) {
		return len(under.Remaining), nil
	}
	var contra *domain.ContradictionError
	if errors.As(err, &contra) {
		return 0, nil
	}
	return 0, err
}

func snapshot(rem []domain.Candidate) []domain.Candidate {
	out := make([]domain.Candidate, len(rem))
	copy(out, rem)
	return out
}
