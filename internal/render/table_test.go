package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/cheryl/internal/domain"
)

func birthdaySpace(t *testing.T) *domain.Space {
	t.Helper()
	s, err := domain.NewSpace([]domain.Candidate{
		{"May", "15"}, {"May", "16"}, {"May", "19"},
		{"June", "17"}, {"June", "18"},
		{"July", "14"}, {"July", "16"},
		{"August", "14"}, {"August", "15"}, {"August", "17"},
	}, []string{"Albert", "Bernard"})
	require.NoError(t, err)
	return s
}

func TestPoolTableShowsPlayersAndCandidates(t *testing.T) {
	space := birthdaySpace(t)
	out := PoolTable(space, space.Candidates)

	for _, name := range space.Players {
		assert.Contains(t, out, name)
	}
	// One header line, then one line per candidate in each column.
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, len(space.Candidates)+1)
	assert.Contains(t, out, "August 17")
}

func TestPoolTableEmptyRemaining(t *testing.T) {
	space := birthdaySpace(t)
	out := PoolTable(space, nil)
	assert.Contains(t, out, "no candidates remain")
}

func TestTraceTableSectionTitles(t *testing.T) {
	space := birthdaySpace(t)
	tr := domain.Trace{
		space.Candidates,
		{{"July", "14"}, {"July", "16"}},
		{{"July", "16"}},
	}
	out := TraceTable(space, tr)
	assert.Contains(t, out, "Before filtering")
	assert.Contains(t, out, "After statement 1")
	assert.Contains(t, out, "After statement 2")
	assert.NotContains(t, out, "After statement 3")
}

func TestSortByCoordLeavesInputAlone(t *testing.T) {
	rem := []domain.Candidate{
		{"July", "16"}, {"May", "15"}, {"August", "14"},
	}
	byDay := sortByCoord(rem, 1)
	assert.Equal(t, []domain.Candidate{
		{"August", "14"}, {"May", "15"}, {"July", "16"},
	}, byDay)
	// Original slice keeps its order.
	assert.Equal(t, domain.Candidate{"July", "16"}, rem[0])
}

func TestMaxWidths(t *testing.T) {
	rem := []domain.Candidate{
		{"May", "15"}, {"August", "9"},
	}
	assert.Equal(t, []int{6, 2}, maxWidths(rem))
}

func TestFormatCandidatePadsColumns(t *testing.T) {
	got := formatCandidate(domain.Candidate{"May", "15"}, []int{6, 2})
	assert.Equal(t, "May    15", got)
}
