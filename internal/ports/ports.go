package ports

import (
	"context"
	"time"

	"svw.info/cheryl/internal/domain"
)

// Stats captures the work an operation performed.
type Stats struct {
	Statements int
	Trials     int
	Duration   time.Duration
}

// Solver filters a candidate space through a statement sequence and reports
// the unique survivor, a contradiction, or an underdetermined outcome.
type Solver interface {
	Solve(ctx context.Context, space *domain.Space, statements []domain.Statement, withTrace bool) (*domain.Solution, Stats, error)
}

// Finder searches randomly sampled candidate pools for one that the
// statement sequence collapses to a unique solution.
type Finder interface {
	Find(ctx context.Context, search domain.Search) (*domain.Puzzle, Stats, error)
}
