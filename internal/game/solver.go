package game

import (
	"context"
	"time"

	"svw.info/cheryl/internal/domain"
	"svw.info/cheryl/internal/ports"
)

// Solver adapts Game to the ports.Solver interface.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

func (Solver) Solve(ctx context.Context, space *domain.Space, statements []domain.Statement, withTrace bool) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	g := New(space)
	cand, err := g.Solve(statements, withTrace)
	stats := ports.Stats{Statements: len(statements), Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	return &domain.Solution{Candidate: cand, Trace: g.Trace()}, stats, nil
}
