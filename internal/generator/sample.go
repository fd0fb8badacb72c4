package generator

import (
	"math/rand"
	"sort"

	"svw.info/cheryl/internal/domain"
)

// maxSampleRounds caps duplicate-rejection rounds. Requests the domains
// cannot satisfy at all are rejected up front by validateSearch; the cap
// only guards against pathologically unlucky draws near capacity.
const maxSampleRounds = 100

// samplePool draws n distinct tuples, each coordinate sampled independently
// from its domain, redrawing the shortfall until no duplicates remain. The
// pool is returned sorted so equal seeds yield identical pools regardless of
// which round produced each tuple.
func samplePool(rng *rand.Rand, domains [][]domain.Value, n int) ([]domain.Candidate, error) {
	seen := make(map[string]bool, n)
	pool := make([]domain.Candidate, 0, n)
	for round := 0; len(pool) < n; round++ {
		if round >= maxSampleRounds {
			return nil, &domain.TooManyTriesError{Rounds: round}
		}
		need := n - len(pool)
		for i := 0; i < need; i++ {
			cand := make(domain.Candidate, len(domains))
			for j, d := range domains {
				cand[j] = d[rng.Intn(len(d))]
			}
			if key := cand.Key(); !seen[key] {
				seen[key] = true
				pool = append(pool, cand)
			}
		}
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].Less(pool[j]) })
	return pool, nil
}
