package generator

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/cheryl/internal/domain"
	"svw.info/cheryl/internal/game"
)

// Two binary domains give a four-tuple cross product, small enough to reason
// about every possible pool by hand.
func tinySearch() domain.Search {
	return domain.Search{
		Players: []string{"L", "R"},
		Domains: [][]domain.Value{
			{"a", "b"},
			{"x", "y"},
		},
		NumCandidates: 3,
		MaxTries:      25,
		Seed:          7,
	}
}

func TestFindIsDeterministicForFixedSeed(t *testing.T) {
	search := tinySearch()
	// With 3 of 4 possible tuples in the pool, exactly one left value is
	// unpaired, so "L knows" always succeeds on the first trial.
	search.Statements = []domain.Statement{
		{Author: "L", Facts: []domain.Fact{{Player: "L", State: domain.Knows}}},
	}

	f := NewUniqueFinder(game.NewSolver())
	first, stats, err := f.Find(context.Background(), search)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Trials)
	assert.Equal(t, search.Seed, first.Seed)
	require.Len(t, first.Space.Candidates, 3)

	second, _, err := f.Find(context.Background(), search)
	require.NoError(t, err)
	assert.Equal(t, first.Space.Candidates, second.Space.Candidates)
	assert.Equal(t, first.Solution, second.Solution)
}

func TestFindExhaustsWithHistogram(t *testing.T) {
	search := tinySearch()
	// Any 3-of-4 pool leaves exactly one candidate whose left value is
	// unique, so "L does not know" always terminates with 2 survivors.
	search.Statements = []domain.Statement{
		{Author: "L", Facts: []domain.Fact{{Player: "L", State: domain.DoesNotKnow}}},
	}

	f := NewUniqueFinder(game.NewSolver())
	_, stats, err := f.Find(context.Background(), search)
	var noGame *domain.NoGameFoundError
	require.ErrorAs(t, err, &noGame)
	assert.Equal(t, search.MaxTries, stats.Trials)
	assert.Equal(t, search.MaxTries, noGame.Trials)
	assert.Equal(t, map[int]int{2: search.MaxTries}, noGame.Histogram)
}

func TestFindRecordsContradictionsAsZero(t *testing.T) {
	search := tinySearch()
	// The two facts are jointly unsatisfiable, so every trial contradicts.
	search.Statements = []domain.Statement{
		{Author: "L", Facts: []domain.Fact{{Player: "L", State: domain.DoesNotKnow}}},
		{Author: "L", Facts: []domain.Fact{{Player: "L", State: domain.Knows}}},
	}

	f := NewUniqueFinder(game.NewSolver())
	_, _, err := f.Find(context.Background(), search)
	var noGame *domain.NoGameFoundError
	require.ErrorAs(t, err, &noGame)

	total := 0
	for size, count := range noGame.Histogram {
		assert.Contains(t, []int{0, 2}, size)
		total += count
	}
	assert.Equal(t, search.MaxTries, total)
}

func TestFindRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Search)
	}{
		{"no players", func(s *domain.Search) { s.Players = nil; s.Domains = nil }},
		{"players vs domains mismatch", func(s *domain.Search) { s.Players = []string{"L"} }},
		{"empty domain", func(s *domain.Search) { s.Domains[1] = nil }},
		{"zero candidates", func(s *domain.Search) { s.NumCandidates = 0 }},
		{"zero tries", func(s *domain.Search) { s.MaxTries = 0 }},
		{"pool larger than cross product", func(s *domain.Search) { s.NumCandidates = 5 }},
	}
	f := NewUniqueFinder(game.NewSolver())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			search := tinySearch()
			tc.mutate(&search)
			_, _, err := f.Find(context.Background(), search)
			require.Error(t, err)
			// A config complaint, never an exhausted search.
			var noGame *domain.NoGameFoundError
			assert.False(t, errors.As(err, &noGame))
		})
	}
}

func TestFindPicksSeedWhenUnset(t *testing.T) {
	search := tinySearch()
	search.Seed = 0
	search.Statements = []domain.Statement{
		{Author: "L", Facts: []domain.Fact{{Player: "L", State: domain.Knows}}},
	}

	f := NewUniqueFinder(game.NewSolver())
	puzzle, _, err := f.Find(context.Background(), search)
	require.NoError(t, err)
	assert.NotZero(t, puzzle.Seed)
}

func TestFindHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	search := tinySearch()
	search.Statements = []domain.Statement{
		{Author: "L", Facts: []domain.Fact{{Player: "L", State: domain.Knows}}},
	}
	f := NewUniqueFinder(game.NewSolver())
	_, _, err := f.Find(ctx, search)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSamplePoolDistinctAndSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	domains := [][]domain.Value{
		{"May", "June", "July", "August"},
		{"14", "15", "16", "17", "18", "19"},
	}
	pool, err := samplePool(rng, domains, 10)
	require.NoError(t, err)
	require.Len(t, pool, 10)

	seen := make(map[string]bool, len(pool))
	for i, c := range pool {
		assert.False(t, seen[c.Key()], "duplicate %s", c)
		seen[c.Key()] = true
		if i > 0 {
			assert.True(t, pool[i-1].Less(c), "pool not sorted at %d", i)
		}
	}
}

func TestSamplePoolFullCrossProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	domains := [][]domain.Value{{"a", "b"}, {"x", "y"}}
	pool, err := samplePool(rng, domains, 4)
	require.NoError(t, err)
	want := []domain.Candidate{
		{"a", "x"}, {"a", "y"}, {"b", "x"}, {"b", "y"},
	}
	assert.Equal(t, want, pool)
}
