package usecase

import (
	"context"
	"errors"

	"svw.info/cheryl/internal/domain"
	"svw.info/cheryl/internal/ports"
)

// Service is the façade the adapters talk to.
type Service struct {
	Solver ports.Solver
	Finder ports.Finder
}

func NewService(s ports.Solver, f ports.Finder) *Service {
	return &Service{Solver: s, Finder: f}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, space *domain.Space, statements []domain.Statement, withTrace bool) (*domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, space, statements, withTrace)
}

func (u *Service) Find(ctx context.Context, search domain.Search) (*domain.Puzzle, ports.Stats, error) {
	if u.Finder == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Finder.Find(ctx, search)
}
