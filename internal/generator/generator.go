// Package generator discovers puzzles by generate-and-test: sample a fresh
// candidate pool, run the statement sequence over it, and keep the first
// pool that collapses to a unique solution.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/cheryl/internal/domain"
	"svw.info/cheryl/internal/ports"
)

// UniqueFinder samples candidate pools and tests them with the provided
// Solver. Trials run sequentially; each trial owns its own space and game.
type UniqueFinder struct {
	Solver ports.Solver
}

// NewUniqueFinder wires a finder that uses the given solver for its trials.
func NewUniqueFinder(s ports.Solver) *UniqueFinder {
	return &UniqueFinder{Solver: s}
}

// Find runs up to search.MaxTries trials and returns the first puzzle whose
// terminal remaining set is exactly one candidate. On exhaustion it returns
// a NoGameFoundError carrying the histogram of terminal sizes seen, so the
// caller can tell over-strict statements from under-constraining ones.
// A fixed Seed makes the run reproducible; the effective seed is recorded on
// the returned puzzle either way.
func (f *UniqueFinder) Find(ctx context.Context, search domain.Search) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if err := validateSearch(search); err != nil {
		return nil, ports.Stats{}, err
	}

	seed := search.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	histogram := make(map[int]int, 4)
	for trial := 0; trial < search.MaxTries; trial++ {
		stats := ports.Stats{Trials: trial + 1, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		pool, err := samplePool(rng, search.Domains, search.NumCandidates)
		if err != nil {
			return nil, stats, err
		}
		space, err := domain.NewSpace(pool, search.Players)
		if err != nil {
			return nil, stats, err
		}

		sol, _, err := f.Solver.Solve(ctx, space, search.Statements, false)
		if err == nil {
			return &domain.Puzzle{
				Seed:       seed,
				Space:      space,
				Statements: search.Statements,
				Solution:   sol.Candidate,
				CreatedAt:  time.Now().UnixNano(),
			}, ports.Stats{Trials: trial + 1, Duration: time.Since(start)}, nil
		}

		var under *domain.UnderdeterminedError
		var contra *domain.ContradictionError
		switch {
		case errors.As(err, &under):
			histogram[len(under.Remaining)]++
		case errors.As(err, &contra):
			histogram[0]++
		default:
			// configuration mistake, not a trial outcome
			return nil, stats, err
		}
	}

	stats := ports.Stats{Trials: search.MaxTries, Duration: time.Since(start)}
	return nil, stats, &domain.NoGameFoundError{Trials: search.MaxTries, Histogram: histogram}
}

func validateSearch(s domain.Search) error {
	if len(s.Players) == 0 {
		return &domain.SearchConfigError{Reason: "no players"}
	}
	if len(s.Domains) != len(s.Players) {
		return &domain.ArityMismatchError{Subject: "player list", Got: len(s.Players), Want: len(s.Domains)}
	}
	for i, d := range s.Domains {
		if len(d) == 0 {
			return &domain.SearchConfigError{Reason: fmt.Sprintf("domain %d is empty", i)}
		}
	}
	if s.NumCandidates < 1 {
		return &domain.SearchConfigError{Reason: "nCandidates must be at least 1"}
	}
	if s.MaxTries < 1 {
		return &domain.SearchConfigError{Reason: "nTries must be at least 1"}
	}
	// Distinct-tuple sampling cannot outgrow the cross product.
	capacity := 1
	for _, d := range s.Domains {
		capacity *= len(d)
		if capacity >= s.NumCandidates {
			break
		}
	}
	if capacity < s.NumCandidates {
		return &domain.SearchConfigError{
			Reason: fmt.Sprintf("domains support only %d distinct tuples, want %d", capacity, s.NumCandidates),
		}
	}
	return nil
}
